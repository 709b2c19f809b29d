package stockbroker

import (
	"iter"
	"log"
)

// NettingPolicy decides which book an order nets against and how the
// matched book's volume is adjusted. The ledger's lookup and creation
// mechanics never inspect the policy beyond these three methods, so an
// alternative policy substitutes without touching the ledger.
type NettingPolicy interface {
	// OrderKey computes the book key an order resolves to.
	OrderKey(o Order) BookKey
	// BookKey computes the key an existing book is indexed under.
	BookKey(b *TradeBook) BookKey
	// Net applies an order's volume to the matched book.
	Net(b *TradeBook, o Order)
}

// SameActionNetting is the default policy: the book key includes the trade
// action, so a buy book only ever nets against further buy orders at that
// exact price, and netting always increases the matched book's volume.
type SameActionNetting struct{}

func (SameActionNetting) OrderKey(o Order) BookKey {
	return BookKey{Action: o.action(), StockCode: o.StockCode, Price: o.Price.String()}
}

func (SameActionNetting) BookKey(b *TradeBook) BookKey { return b.Key() }

func (SameActionNetting) Net(b *TradeBook, o Order) { b.Volume += o.Volume }

// CrossActionNetting is the alternative policy: buy and sell orders at the
// same code and price share one book. An order on the book's own side adds
// volume, the opposite side subtracts, and a book whose volume crosses zero
// flips to the incoming order's action.
type CrossActionNetting struct{}

func (CrossActionNetting) OrderKey(o Order) BookKey {
	// The key deliberately drops the action by pinning it.
	return BookKey{Action: Buy, StockCode: o.StockCode, Price: o.Price.String()}
}

func (CrossActionNetting) BookKey(b *TradeBook) BookKey {
	return BookKey{Action: Buy, StockCode: b.StockCode, Price: b.Price.String()}
}

func (CrossActionNetting) Net(b *TradeBook, o Order) {
	if o.action() == b.Action {
		b.Volume += o.Volume
		return
	}
	b.Volume -= o.Volume
	if b.Volume < 0 {
		b.Volume = -b.Volume
		b.Action = o.action()
	}
}

// Outcome tells how the ledger resolved an order.
type Outcome int

const (
	// Created means no book matched the order's key and a new one was made.
	Created Outcome = iota
	// Adjusted means an existing book's volume was netted.
	Adjusted
)

// Reconciliation is the result of recording one order: the outcome and the
// book the order ended up in, carrying its post-adjustment volume.
type Reconciliation struct {
	Outcome Outcome
	Book    *TradeBook
}

// Ledger is the in-memory working set of trade books, indexed by book key.
//
// Books keep their insertion order: persistence and listing replay books in
// the order they first appeared, matching the stored file's order across
// restarts. No book is ever deleted.
type Ledger struct {
	books   map[BookKey]*TradeBook
	order   []BookKey
	netting NettingPolicy
}

// NewLedger creates an empty ledger with the default same-action netting.
func NewLedger() *Ledger {
	return NewLedgerWith(SameActionNetting{})
}

// NewLedgerWith creates an empty ledger using the given netting policy.
func NewLedgerWith(policy NettingPolicy) *Ledger {
	return &Ledger{
		books:   make(map[BookKey]*TradeBook),
		netting: policy,
	}
}

// Reconcile records one validated order: it looks up the book matching the
// order's key, creating it with the order's volume if absent, or netting
// the order into it if present. The adjusted volume is intentionally not
// re-checked against the per-order volume bound; it reflects cumulative
// trade volume over time.
func (l *Ledger) Reconcile(o Order) Reconciliation {
	key := l.netting.OrderKey(o)
	if book, ok := l.books[key]; ok {
		l.netting.Net(book, o)
		return Reconciliation{Outcome: Adjusted, Book: book}
	}

	book := &TradeBook{
		Action:    o.action(),
		StockCode: o.StockCode,
		Price:     o.Price,
		Volume:    o.Volume,
	}
	l.books[key] = book
	l.order = append(l.order, key)
	return Reconciliation{Outcome: Created, Book: book}
}

// Seed inserts a book loaded from storage. Books whose keys collide under
// the ledger's netting policy are netted together, so a stored file with
// duplicate keys still loads into at most one book per key.
func (l *Ledger) Seed(b *TradeBook) {
	key := l.netting.BookKey(b)
	if existing, ok := l.books[key]; ok {
		log.Printf("netting duplicate stored book %v into %v", b, existing)
		l.netting.Net(existing, Order{
			Action:    b.Action.String(),
			StockCode: b.StockCode,
			Price:     b.Price,
			Volume:    b.Volume,
		})
		return
	}
	l.books[key] = b
	l.order = append(l.order, key)
}

// Lookup returns the book stored under key, or nil.
func (l *Ledger) Lookup(key BookKey) *TradeBook {
	return l.books[key]
}

// Len returns the number of books in the ledger.
func (l *Ledger) Len() int { return len(l.books) }

// Books iterates over the trade books in insertion order.
func (l *Ledger) Books() iter.Seq[*TradeBook] {
	return func(yield func(*TradeBook) bool) {
		for _, key := range l.order {
			if !yield(l.books[key]) {
				return
			}
		}
	}
}
