package stockbroker

// Validator checks orders against the trading rules before they reach the
// ledger. It has no state beyond the stock-code set and never mutates
// anything: validating the same order twice gives the same answer.
type Validator struct {
	codes *StockCodeSet
}

// NewValidator returns a validator backed by the given stock-code set.
func NewValidator(codes *StockCodeSet) *Validator {
	return &Validator{codes: codes}
}

// Validate checks an order, failing fast on the first violated rule:
// action, stock code format, stock code membership, price, volume.
// It returns nil for an acceptable order or a *RejectionError naming the
// violated constraint.
func (v *Validator) Validate(o Order) error {
	if _, err := ParseAction(o.Action); err != nil {
		return reject(InvalidAction, msgInvalidAction)
	}
	if !wellFormedCode(o.StockCode) {
		return reject(InvalidStockCodeFormat, msgInvalidStockCode)
	}
	if !v.codes.Has(o.StockCode) {
		return reject(UnknownStockCode, msgUnknownStockCode)
	}
	if !o.Price.HasCentPrecision() || o.Price.LessThan(MinPrice) {
		return reject(InvalidPrice, msgInvalidPrice)
	}
	if o.Volume < 1 || o.Volume > MaxOrderVolume {
		return reject(InvalidVolume, msgInvalidVolume)
	}
	return nil
}

// MaxOrderVolume bounds the volume of a single incoming order. A book's
// cumulative volume may exceed it through netting; only the per-order input
// is range-checked.
const MaxOrderVolume = 1_000_000
