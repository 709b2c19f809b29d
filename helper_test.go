package stockbroker

import "testing"

// testCodes is the stock-code set used across tests.
func testCodes() *StockCodeSet { return NewStockCodeSet("AAPL", "GOOG", "MSFT") }

// mustOrder is a helper for tests to build an order from its input line.
func mustOrder(t *testing.T, line string) Order {
	t.Helper()
	o, err := ParseOrder(line)
	if err != nil {
		t.Fatalf("ParseOrder(%q) failed: %v", line, err)
	}
	return o
}

// mustPrice is a helper for tests to build a price from const.
func mustPrice(t *testing.T, s string) Price {
	t.Helper()
	p, err := ParsePrice(s)
	if err != nil {
		t.Fatalf("ParsePrice(%q) failed: %v", s, err)
	}
	return p
}
