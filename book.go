package stockbroker

import "fmt"

// TradeBook is the unit of persisted state: the cumulative volume traded
// for one (action, stock code, price) triple. At most one book exists per
// triple; further orders matching it adjust Volume instead of creating a
// second book.
type TradeBook struct {
	Action    Action
	StockCode string
	Price     Price
	Volume    int64
}

// BookKey identifies a unique trade book. The price is carried in its
// canonical 2-decimal string form so that key equality is exact decimal
// equality, never a float tolerance.
type BookKey struct {
	Action    Action
	StockCode string
	Price     string
}

// Key returns the book's identifying triple.
func (b *TradeBook) Key() BookKey {
	return BookKey{Action: b.Action, StockCode: b.StockCode, Price: b.Price.String()}
}

func (b *TradeBook) String() string {
	return fmt.Sprintf("%s %s %s x%d", b.Action, b.StockCode, b.Price, b.Volume)
}
