package stockbroker

import (
	"fmt"
	"strings"
)

// Action identifies the side of a trade order.
type Action int

const (
	// Buy records shares bought by the investor.
	Buy Action = iota
	// Sell records shares sold by the investor.
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseAction parses a string into an Action. The comparison is
// case-insensitive so the parse boundary can canonicalize user input.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown action: %q", s)
	}
}
