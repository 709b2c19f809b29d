package stockbroker

import "github.com/shopspring/decimal"

// Price represents a quoted trade price.
//
// Prices are kept as exact decimals so that two orders quoting the same
// price always resolve to the same trade book, without any float tolerance.
type Price struct {
	value decimal.Decimal
}

// MinPrice is the lowest price accepted for an order.
var MinPrice = P(0.50)

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a decimal price string.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{value: d}, nil
}

func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool    { return p.value.LessThan(q.value) }
func (p Price) GreaterThan(q Price) bool { return p.value.GreaterThan(q.value) }
func (p Price) IsPositive() bool         { return p.value.IsPositive() }
func (p Price) IsZero() bool             { return p.value.IsZero() }

// HasCentPrecision reports whether the price carries at most two fractional
// digits. The check is value-level: "1000.0" and "1000" are cent-precise,
// "999.999" is not.
func (p Price) HasCentPrecision() bool {
	return p.value.Equal(p.value.Round(2))
}

// Mul returns the price multiplied by a share volume.
func (p Price) Mul(volume int64) decimal.Decimal {
	return p.value.Mul(decimal.NewFromInt(volume))
}

// String renders the price with exactly two fractional digits, the
// canonical form used in storage and in book keys.
func (p Price) String() string { return p.value.StringFixed(2) }
