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

type codesCmd struct{}

func (*codesCmd) Name() string     { return "codes" }
func (*codesCmd) Synopsis() string { return "list the known stock codes" }
func (*codesCmd) Usage() string {
	return `stockbroker codes

  Lists the stock codes loaded from the stock-code file. Only these codes
  are accepted in orders.

`
}

func (p *codesCmd) SetFlags(f *flag.FlagSet) {}

func (p *codesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	codes, err := stockbroker.LoadStockCodes(StockcodePath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StockCodes(codes))
	return subcommands.ExitSuccess
}
