package stockbroker

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

// StockCodeSet holds the authoritative list of tradable stock codes. It is
// loaded once at startup and read-only thereafter; the Validator uses it as
// its sole source of truth for code legality.
type StockCodeSet struct {
	codes map[string]struct{}
}

// NewStockCodeSet returns a set holding the given codes. Intended for
// tests; production sets come from DecodeStockCodes.
func NewStockCodeSet(codes ...string) *StockCodeSet {
	s := &StockCodeSet{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		s.codes[c] = struct{}{}
	}
	return s
}

// DecodeStockCodes reads a line-oriented stream of stock codes, one code per
// line. Blank lines are skipped. A line that is not exactly 4 uppercase
// letters fails the whole load: a typo in the reference data should be fixed
// at the source, not silently dropped.
func DecodeStockCodes(r io.Reader) (*StockCodeSet, error) {
	s := &StockCodeSet{codes: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			continue
		}
		if !wellFormedCode(code) {
			return nil, fmt.Errorf("line %d: malformed stock code %q: must be 4 uppercase letters", n, code)
		}
		s.codes[code] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Has reports whether code belongs to the set.
func (s *StockCodeSet) Has(code string) bool {
	_, ok := s.codes[code]
	return ok
}

// Len returns the number of codes in the set.
func (s *StockCodeSet) Len() int { return len(s.codes) }

// All iterates over the codes in lexical order.
func (s *StockCodeSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		codes := slices.Collect(maps.Keys(s.codes))
		slices.Sort(codes)
		for _, code := range codes {
			if !yield(code) {
				return
			}
		}
	}
}

// wellFormedCode reports whether code is exactly 4 uppercase ASCII letters.
func wellFormedCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
