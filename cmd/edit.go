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

type editCmd struct {
	kind     string
	id       string
	date     string
	category string
	amount   string
	fx       string
	person   string
	note     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "correct a recorded entry in place" }
func (*editCmd) Usage() string {
	return `nwt edit -id <id> [-t asset|contribution] [flags]

  Replaces the fields of an existing record, keeping its id. Only the
  flags that are set are changed; the others keep their recorded value.
  The whole ledger file is rewritten in canonical form.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "asset", "ledger holding the record (asset or contribution)")
	f.StringVar(&c.id, "id", "", "id of the record to edit")
	f.StringVar(&c.date, "d", "", "new date")
	f.StringVar(&c.category, "c", "", "new asset category")
	f.StringVar(&c.amount, "a", "", "new amount")
	f.StringVar(&c.fx, "fx", "", "new conversion rate")
	f.StringVar(&c.person, "p", "", "new contributor name")
	f.StringVar(&c.note, "note", "", "new note")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	switch c.kind {
	case "asset":
		return c.editAsset()
	case "contribution":
		return c.editContribution()
	default:
		fmt.Fprintf(os.Stderr, "unknown ledger %q, expected asset or contribution\n", c.kind)
		return subcommands.ExitUsageError
	}
}

func (c *editCmd) editAsset() subcommands.ExitStatus {
	ledger, err := decodeAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rec, ok := ledger.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "no asset record with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if c.date != "" {
		if rec.Date, err = networth.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.category != "" {
		if rec.Category, err = networth.ParseCategory(c.category); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if c.amount != "" {
		if rec.Amount, err = decimal.NewFromString(c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
	}
	if c.fx != "" {
		if rec.FxRate, err = decimal.NewFromString(c.fx); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing fx rate %q: %v\n", c.fx, err)
			return subcommands.ExitUsageError
		}
	}
	if c.note != "" {
		rec.Note = c.note
	}

	if err := ledger.Update(c.id, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := networth.SaveAssetLedger(assetPath(), ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated asset record %s\n", c.id)
	return subcommands.ExitSuccess
}

func (c *editCmd) editContribution() subcommands.ExitStatus {
	ledger, err := decodeContributions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rec, ok := ledger.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "no contribution record with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if c.date != "" {
		if rec.Date, err = networth.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.person != "" {
		rec.Person = c.person
	}
	if c.amount != "" {
		if rec.Amount, err = decimal.NewFromString(c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
	}
	if c.note != "" {
		rec.Note = c.note
	}

	if err := ledger.Update(c.id, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := networth.SaveContributionLedger(contributionPath(), ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated contribution record %s\n", c.id)
	return subcommands.ExitSuccess
}
