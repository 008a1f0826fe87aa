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

type listCmd struct {
	window string
	date   string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded asset snapshots" }
func (*listCmd) Usage() string {
	return `nwt list [-w <window>] [-d <date>]

  Prints the raw asset records in chronological order, optionally
  restricted to a trailing window ending at the given date.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "all", "trailing window (1m, 3m, 6m, 1y, 3y, all)")
	f.StringVar(&c.date, "d", "0d", "reference date closing the window (defaults to today)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ledger, err := decodeAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := ledger.Records()
	if cutoff, ok := window.Cutoff(ref); ok {
		kept := records[:0]
		for _, r := range records {
			if !r.Date.Before(cutoff) && !ref.Before(r.Date) {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	printMarkdown(renderer.AssetRecords(records))
	return subcommands.ExitSuccess
}
