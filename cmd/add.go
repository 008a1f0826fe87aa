package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/wtlin/networth"
)

type addCmd struct {
	date     string
	category string
	amount   string
	fx       string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an asset snapshot" }
func (*addCmd) Usage() string {
	return `nwt add -c <category> -a <amount> [-d <date>] [-fx <rate>] [-note <text>]

  Appends an observed balance for one asset category to the assets ledger.
  Foreign categories take the amount in the foreign currency together with
  the conversion rate to the home currency.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "date of the observation (defaults to today)")
	f.StringVar(&c.category, "c", "", "asset category (local_equity, foreign_equity, local_cash, foreign_cash)")
	f.StringVar(&c.amount, "a", "", "observed balance, in the category currency")
	f.StringVar(&c.fx, "fx", "1", "conversion rate to the home currency")
	f.StringVar(&c.note, "note", "", "free-form note attached to the record")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := networth.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	fx, err := decimal.NewFromString(c.fx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing fx rate %q: %v\n", c.fx, err)
		return subcommands.ExitUsageError
	}

	rec := networth.NewAssetRecord(on, category, amount, fx, c.note)
	if err := rec.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return appendAssetRecord(rec)
}
