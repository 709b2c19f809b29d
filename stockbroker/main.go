package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/faw/stockbroker/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env file carrying STOCKCODE_FILE / ORDERS_FILE.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Preserve the bare surface: no argument prompts interactively, a lone
	// file argument runs in batch mode.
	os.Args = cmd.Dispatch(os.Args)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
