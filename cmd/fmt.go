package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/faw/stockbroker"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the orders file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `stockbroker fmt

  Reads all trade books from the orders file, nets books sharing a key
  together, and writes them back with canonical 2-decimal prices.

Usage Examples:
# Rewrites the default orders file in place.
$ stockbroker fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Loading nets duplicate keys together; saving renders canonical prices.
	ledger, err := stockbroker.LoadLedger(OrdersPath(), nettingPolicy())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store := &stockbroker.FileStore{Path: OrdersPath()}
	if err := store.SaveBooks(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving orders file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d trade books into %s.\n", ledger.Len(), OrdersPath())
	return subcommands.ExitSuccess
}
