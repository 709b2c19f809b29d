package renderer

import (
	"strings"
	"testing"

	"github.com/faw/stockbroker"
)

func mustOrder(t *testing.T, line string) stockbroker.Order {
	t.Helper()
	o, err := stockbroker.ParseOrder(line)
	if err != nil {
		t.Fatalf("ParseOrder(%q) failed: %v", line, err)
	}
	return o
}

func TestBooks(t *testing.T) {
	ledger := stockbroker.NewLedger()
	ledger.Reconcile(mustOrder(t, "buy AAPL 150.00 100"))
	ledger.Reconcile(mustOrder(t, "sell GOOG 10.00 5"))

	md := Books(ledger, "USD")

	for _, want := range []string{
		"| buy | AAPL | 150.00 | 100 |",
		"| sell | GOOG | 10.00 | 5 |",
		"$15,000.00",
		"2 books",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Books() missing %q in:\n%s", want, md)
		}
	}
}

func TestBooks_Empty(t *testing.T) {
	md := Books(stockbroker.NewLedger(), "USD")
	if !strings.Contains(md, "No trade books") {
		t.Errorf("Books() on empty ledger = %q", md)
	}
}

func TestStockCodes(t *testing.T) {
	md := StockCodes(stockbroker.NewStockCodeSet("GOOG", "AAPL"))
	aapl := strings.Index(md, "AAPL")
	goog := strings.Index(md, "GOOG")
	if aapl < 0 || goog < 0 || aapl > goog {
		t.Errorf("StockCodes() should list codes in lexical order:\n%s", md)
	}
}
