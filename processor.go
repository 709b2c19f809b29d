package stockbroker

// Processor receives raw order lines and coordinates parsing, validation,
// reconciliation and persistence. It owns nothing global: tests construct
// isolated processors over in-memory ledgers.
type Processor struct {
	validator *Validator
	ledger    *Ledger
	store     Store
}

// NewProcessor wires a processor over its collaborators. A nil store skips
// persistence, which is what in-memory tests want.
func NewProcessor(validator *Validator, ledger *Ledger, store Store) *Processor {
	return &Processor{validator: validator, ledger: ledger, store: store}
}

// Ledger exposes the processor's working set for reporting.
func (p *Processor) Ledger() *Ledger { return p.ledger }

// Process handles one raw order line end to end and returns the
// human-readable status line for it.
//
// A parse or validation failure rejects the single order: the rejection
// message is returned, the ledger is untouched and nothing is persisted.
// An accepted order is reconciled into the ledger and the full book set is
// written out before the confirmation is returned. The returned error is
// reserved for persistence failures; rejections are plain messages so the
// caller just prints them and moves to the next line.
func (p *Processor) Process(line string) (string, error) {
	order, err := ParseOrder(line)
	if err != nil {
		return err.Error(), nil
	}
	if err := p.validator.Validate(order); err != nil {
		return err.Error(), nil
	}

	result := p.ledger.Reconcile(order)

	if p.store != nil {
		if err := p.store.SaveBooks(p.ledger); err != nil {
			return "", err
		}
	}

	switch result.Outcome {
	case Created:
		return MsgBookAdded, nil
	default:
		return MsgBookUpdated, nil
	}
}
