package stockbroker

import (
	"strconv"
	"strings"
)

// Order is a transient incoming order. It is never persisted directly:
// processing always resolves it into either a new trade book or a volume
// adjustment on an existing one.
//
// The action is kept as its canonical lowercase string until validation has
// vouched for it; the ledger resolves it to a typed Action afterwards.
type Order struct {
	Action    string
	StockCode string
	Price     Price
	Volume    int64
}

// ParseOrder parses one raw input line into an Order.
//
// The line carries 4 whitespace-separated fields: action, stock code, price
// and volume. The action is canonicalized to lowercase and the stock code to
// uppercase, so validation downstream only ever sees canonical values. A
// wrong field count or an unparsable number is a MalformedOrder rejection;
// semantic checks are left to the Validator.
func ParseOrder(line string) (Order, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Order{}, reject(MalformedOrder, msgMalformedFields)
	}

	price, err := ParsePrice(fields[2])
	if err != nil {
		return Order{}, reject(MalformedOrder, msgMalformedNumbers)
	}
	volume, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Order{}, reject(MalformedOrder, msgMalformedNumbers)
	}

	return Order{
		Action:    strings.ToLower(fields[0]),
		StockCode: strings.ToUpper(fields[1]),
		Price:     price,
		Volume:    volume,
	}, nil
}

// action resolves the canonical action string to its typed value. It is
// only meaningful after validation.
func (o Order) action() Action {
	a, _ := ParseAction(o.Action)
	return a
}
