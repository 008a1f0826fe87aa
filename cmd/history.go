package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wtlin/networth"
	"github.com/wtlin/networth/renderer"
)

type historyCmd struct {
	window string
	date   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the net worth timeline" }
func (*historyCmd) Usage() string {
	return `nwt history [-w <window>] [-d <date>]

  Reconstructs the carried-forward value of every category on each
  recorded date, restricted to a trailing window ending at the given
  date.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "all", "trailing window (1m, 3m, 6m, 1y, 3y, all)")
	f.StringVar(&c.date, "d", "0d", "reference date closing the window (defaults to today)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := networth.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ref, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	assets, err := decodeAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r := networth.NewHistoryReport(assets, cfg.Currency, window, ref)
	printMarkdown(renderer.HistoryMarkdown(r))
	return subcommands.ExitSuccess
}
