package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/wtlin/networth"
)

type contributeCmd struct {
	person string
	date   string
	amount string
	note   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a capital contribution" }
func (*contributeCmd) Usage() string {
	return `nwt contribute -p <person> -a <amount> [-d <date>] [-note <text>]

  Appends a capital contribution, in the home currency, to the
  contributions ledger. The person must be one of the configured
  contributors.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.person, "p", "", "contributor name")
	f.StringVar(&c.date, "d", "0d", "date of the contribution (defaults to today)")
	f.StringVar(&c.amount, "a", "", "contributed amount, in the home currency")
	f.StringVar(&c.note, "note", "", "free-form note attached to the record")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(cfg.Contributors) > 0 && !slices.Contains(cfg.Contributors, c.person) {
		fmt.Fprintf(os.Stderr, "unknown person %q, expected one of %s\n", c.person, strings.Join(cfg.Contributors, ", "))
		return subcommands.ExitUsageError
	}
	on, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	rec := networth.NewContributionRecord(c.person, on, amount, c.note)
	if err := rec.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return appendContributionRecord(rec)
}
