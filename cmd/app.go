// Package cmd implements the CLI application of the stockbroker.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/faw/stockbroker"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&interactiveCmd{}, "orders")
	c.Register(&batchCmd{}, "orders")

	c.Register(&booksCmd{}, "reports")
	c.Register(&codesCmd{}, "reports")

	c.Register(&fmtCmd{}, "storage")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stockcodeFile = flag.String("stockcode-file", "", "Path to the stock code file (defaults to $STOCKCODE_FILE or data/stockcode.csv)")
var ordersFile = flag.String("orders-file", "", "Path to the orders file (defaults to $ORDERS_FILE or data/orders.csv)")
var crossNetting = flag.Bool("cross-netting", false, "Net buy and sell orders at the same code and price against one shared book")

// StockcodePath resolves the stock-code file path: flag, then environment,
// then the default location.
func StockcodePath() string {
	if *stockcodeFile != "" {
		return *stockcodeFile
	}
	return envStr("STOCKCODE_FILE", "data/stockcode.csv")
}

// OrdersPath resolves the orders file path: flag, then environment, then
// the default location.
func OrdersPath() string {
	if *ordersFile != "" {
		return *ordersFile
	}
	return envStr("ORDERS_FILE", "data/orders.csv")
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func nettingPolicy() stockbroker.NettingPolicy {
	if *crossNetting {
		return stockbroker.CrossActionNetting{}
	}
	return stockbroker.SameActionNetting{}
}

// newProcessor loads the stock-code set and the persisted books, and wires
// a processor that rewrites the orders file after each accepted order.
// Startup storage failures come back as errors; callers report them and
// exit without entering either mode.
func newProcessor() (*stockbroker.Processor, error) {
	codes, err := stockbroker.LoadStockCodes(StockcodePath())
	if err != nil {
		return nil, err
	}
	ledger, err := stockbroker.LoadLedger(OrdersPath(), nettingPolicy())
	if err != nil {
		return nil, err
	}
	validator := stockbroker.NewValidator(codes)
	store := &stockbroker.FileStore{Path: OrdersPath()}
	return stockbroker.NewProcessor(validator, ledger, store), nil
}

// processLines feeds each non-blank line of r to the processor, printing
// exactly one status line per order on w. Rejected orders only produce
// their message; a persistence failure stops the run.
func processLines(p *stockbroker.Processor, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
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

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// commandNames are the registered subcommand names plus the ones the
// commander itself provides.
var commandNames = []string{
	"interactive", "batch", "books", "codes", "fmt",
	"help", "flags", "commands",
}

// Dispatch maps the bare CLI surface onto subcommands: no argument runs the
// interactive prompt, and a single argument that is not a known command is
// taken as a batch file path. Flags written as -flag=value pass through
// untouched. Explicit subcommand invocations are left as they are.
func Dispatch(args []string) []string {
	for i := 1; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			continue
		}
		if slices.Contains(commandNames, args[i]) {
			return args
		}
		return slices.Insert(slices.Clone(args), i, "batch")
	}
	return append(slices.Clone(args), "interactive")
}
