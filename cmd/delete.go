package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wtlin/networth"
)

type deleteCmd struct {
	kind string
	id   string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a recorded entry" }
func (*deleteCmd) Usage() string {
	return `nwt delete -id <id> [-t asset|contribution]

  Removes the record with the given id and rewrites the ledger file in
  canonical form.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "asset", "ledger holding the record (asset or contribution)")
	f.StringVar(&c.id, "id", "", "id of the record to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	switch c.kind {
	case "asset":
		ledger, err := decodeAssets()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := ledger.Delete(c.id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := networth.SaveAssetLedger(assetPath(), ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "contribution":
		ledger, err := decodeContributions()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := ledger.Delete(c.id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := networth.SaveContributionLedger(contributionPath(), ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown ledger %q, expected asset or contribution\n", c.kind)
		return subcommands.ExitUsageError
	}
	fmt.Printf("Deleted record %s\n", c.id)
	return subcommands.ExitSuccess
}
