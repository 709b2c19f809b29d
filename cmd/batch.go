package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type batchCmd struct{}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "process orders from a file" }
func (*batchCmd) Usage() string {
	return `stockbroker batch <file>
stockbroker <file>

  Reads the file line by line, processes each line as an order in the order
  of appearance, and prints one status line per order. A file that cannot
  be opened terminates with a failure exit code.

`
}

func (p *batchCmd) SetFlags(f *flag.FlagSet) {}

func (p *batchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: batch expects exactly one file argument.")
		return subcommands.ExitUsageError
	}

	proc, err := newProcessor()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open orders file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := processLines(proc, file, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
