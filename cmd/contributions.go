package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wtlin/networth/renderer"
)

type contributionsCmd struct{}

func (*contributionsCmd) Name() string     { return "contributions" }
func (*contributionsCmd) Synopsis() string { return "list recorded capital contributions" }
func (*contributionsCmd) Usage() string {
	return `nwt contributions

  Prints the raw contribution records in chronological order.
`
}

func (*contributionsCmd) SetFlags(*flag.FlagSet) {}

func (*contributionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeContributions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ContributionRecords(ledger.Records()))
	return subcommands.ExitSuccess
}
