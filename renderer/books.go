// Package renderer builds markdown views of the ledger state, rendered to
// the terminal by the cmd package.
package renderer

import (
	"fmt"
	"strings"

	"github.com/faw/stockbroker"
)

// Books renders the ledger's trade books as a markdown table. Notional
// amounts (price times volume) are formatted in the given currency.
func Books(ledger *stockbroker.Ledger, currency string) string {
	if ledger.Len() == 0 {
		return "No trade books recorded.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Trade Books\n\n")
	fmt.Fprintf(&b, "| Action | Stock | Price | Volume | Notional |\n")
	fmt.Fprintf(&b, "|---|---|---:|---:|---:|\n")

	total := stockbroker.M(0, currency)
	for book := range ledger.Books() {
		notional := stockbroker.M(book.Price.Mul(book.Volume), currency)
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			book.Action, book.StockCode, book.Price, book.Volume, notional)
		total = total.Add(notional)
	}
	fmt.Fprintf(&b, "\nTotal notional: %s over %d books.\n", total, ledger.Len())
	return b.String()
}

// StockCodes renders the stock-code set as a markdown list.
func StockCodes(codes *stockbroker.StockCodeSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Stock Codes\n\n")
	for code := range codes.All() {
		fmt.Fprintf(&b, "- %s\n", code)
	}
	fmt.Fprintf(&b, "\n%d codes loaded.\n", codes.Len())
	return b.String()
}
