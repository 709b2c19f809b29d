package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/faw/stockbroker"
	"github.com/faw/stockbroker/renderer"
	"github.com/google/subcommands"
)

type booksCmd struct {
	currency string
}

func (*booksCmd) Name() string     { return "books" }
func (*booksCmd) Synopsis() string { return "list the current trade books" }
func (*booksCmd) Usage() string {
	return `stockbroker books [-c <currency>]

  Lists the trade books currently recorded in the orders file, with the
  notional amount (price times volume) of each book.

`
}

func (p *booksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "c", "USD", "Currency used to render notional amounts.")
}

func (p *booksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := stockbroker.LoadLedger(OrdersPath(), nettingPolicy())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Books(ledger, p.currency))
	return subcommands.ExitSuccess
}
