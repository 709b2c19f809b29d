package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/faw/stockbroker"
	"github.com/google/subcommands"
)

type interactiveCmd struct{}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "record orders from an interactive prompt" }
func (*interactiveCmd) Usage() string {
	return `stockbroker [interactive]

  Prompts for orders on standard input, one per line, in the form

    [buy|sell] [STOCKCODE] [PRICE] [VOLUME]

  and prints one status line per order. Typing "exit" terminates.

Usage Examples:
$ stockbroker
$ buy AAPL 150.00 100
Trade book added.
$ exit

`
}

func (p *interactiveCmd) SetFlags(f *flag.FlagSet) {}

func (p *interactiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	proc, err := newProcessor()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := runPrompt(proc, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runPrompt reads orders from r until "exit" or end of input, printing the
// prompt and one status line per order on w.
func runPrompt(p *stockbroker.Processor, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "$ ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			return nil
		}
		if line == "" {
			continue
		}
		msg, err := p.Process(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, msg)
	}
	return scanner.Err()
}
