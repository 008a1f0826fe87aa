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

type yearlyCmd struct {
	metric string
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display year-over-year growth" }
func (*yearlyCmd) Usage() string {
	return `nwt yearly [-m total|investment]

  Shows, for every recorded year, the opening and closing value of the
  selected metric and the in-year growth rate.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metric, "m", "total", "metric to report on (total or investment)")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	metric, err := networth.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	assets, err := decodeAssets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r := networth.NewYearlyReport(assets, cfg.Currency, metric)
	printMarkdown(renderer.YearlyMarkdown(r, c.metric))
	return subcommands.ExitSuccess
}
