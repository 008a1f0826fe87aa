package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wtlin/networth"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `nwt fmt

  Reads both ledger files, validates every record, sorts them by date,
  and writes them back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := decodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load assets: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := networth.SaveAssetLedger(assetPath(), assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving assets: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d asset records.\n", assets.Len())

	contributions, err := decodeContributions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load contributions: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := networth.SaveContributionLedger(contributionPath(), contributions); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving contributions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d contribution records.\n", contributions.Len())

	return subcommands.ExitSuccess
}
