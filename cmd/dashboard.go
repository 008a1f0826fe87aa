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

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the current net worth dashboard" }
func (*dashboardCmd) Usage() string {
	return `nwt dashboard

  Shows the latest net worth, the allocation across categories, trailing
  growth over the standard windows, and per-person contributions.
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := decodeAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	contributions, err := decodeContributions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	d := networth.NewDashboard(assets, contributions, cfg.Currency)
	printMarkdown(renderer.DashboardMarkdown(d))
	return subcommands.ExitSuccess
}
