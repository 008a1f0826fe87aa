// Package cmd implements the CLI application to manage the household ledgers.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/wtlin/networth"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

// Config holds the environment configuration of the nwt tool.
type Config struct {
	// Dir is the directory holding the ledger files.
	Dir string `env:"NWT_DIR" envDefault:"."`
	// Currency is the home currency all values are reported in.
	Currency string `env:"NWT_CURRENCY" envDefault:"TWD"`
	// Contributors is the fixed set of people allowed on contributions.
	Contributors []string `env:"NWT_CONTRIBUTORS" envDefault:"A_Hui,A_Wei"`
}

var cfg, cfgErr = env.ParseAs[Config]()

func assetPath() string        { return filepath.Join(cfg.Dir, "assets.jsonl") }
func contributionPath() string { return filepath.Join(cfg.Dir, "contributions.jsonl") }

// decodeAssets loads the asset ledger; a missing file is an empty ledger.
func decodeAssets() (*networth.AssetLedger, error) {
	if cfgErr != nil {
		return nil, fmt.Errorf("invalid environment: %w", cfgErr)
	}
	return networth.LoadAssetLedger(assetPath())
}

// decodeContributions loads the contribution ledger restricted to the
// configured contributors.
func decodeContributions() (*networth.ContributionLedger, error) {
	if cfgErr != nil {
		return nil, fmt.Errorf("invalid environment: %w", cfgErr)
	}
	return networth.LoadContributionLedger(contributionPath(), cfg.Contributors...)
}

// appendAssetRecord appends a single validated record to the assets file.
func appendAssetRecord(rec networth.AssetRecord) subcommands.ExitStatus {
	f, err := os.OpenFile(assetPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening assets file %q: %v\n", assetPath(), err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := networth.EncodeAssetRecord(f, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to assets file %q: %v\n", assetPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s snapshot %s on %s\n", rec.Category, rec.ID, rec.Date)
	return subcommands.ExitSuccess
}

// appendContributionRecord appends a single validated record to the
// contributions file.
func appendContributionRecord(rec networth.ContributionRecord) subcommands.ExitStatus {
	f, err := os.OpenFile(contributionPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening contributions file %q: %v\n", contributionPath(), err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := networth.EncodeContributionRecord(f, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to contributions file %q: %v\n", contributionPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded contribution %s from %s on %s\n", rec.ID, rec.Person, rec.Date)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when no fancy renderer can be built.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(content); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(content)
}

// Commands lists all subcommands. A main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&contributeCmd{},
	&editCmd{},
	&deleteCmd{},
	&listCmd{},
	&contributionsCmd{},
	&dashboardCmd{},
	&historyCmd{},
	&yearlyCmd{},
	&fmtCmd{},
	&topicCmd{},
}
