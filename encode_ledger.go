package stockbroker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// The orders file holds one trade book per line, comma-separated:
//
//	action,stockCode,price,volume
//
// with the price rendered with exactly 2 fractional digits.

// DecodeBooks reads trade books from CSV data and seeds them into a ledger
// using the given netting policy. Stored books whose keys collide are
// netted together during the load.
func DecodeBooks(r io.Reader, policy NettingPolicy) (*Ledger, error) {
	ledger := NewLedgerWith(policy)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("orders line %d: %w", line, err)
		}

		action, err := ParseAction(record[0])
		if err != nil {
			return nil, fmt.Errorf("orders line %d: %w", line, err)
		}
		price, err := ParsePrice(record[2])
		if err != nil {
			return nil, fmt.Errorf("orders line %d: bad price %q: %w", line, record[2], err)
		}
		volume, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("orders line %d: bad volume %q: %w", line, record[3], err)
		}

		ledger.Seed(&TradeBook{
			Action:    action,
			StockCode: record[1],
			Price:     price,
			Volume:    volume,
		})
	}
	return ledger, nil
}

// EncodeBooks writes the ledger's trade books as CSV, one book per line in
// the ledger's insertion order.
func EncodeBooks(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	for book := range ledger.Books() {
		record := []string{
			book.Action.String(),
			book.StockCode,
			book.Price.String(),
			strconv.FormatInt(book.Volume, 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
