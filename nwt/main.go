package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/wtlin/networth/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately when
// this run is a normal invocation.
func completion() {
	categories := predict.Set{"local_equity", "foreign_equity", "local_cash", "foreign_cash"}
	windows := predict.Set{"1m", "3m", "6m", "1y", "3y", "all"}
	ledgers := predict.Set{"asset", "contribution"}

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing, "c": categories, "a": predict.Nothing, "fx": predict.Nothing, "note": predict.Nothing,
			}},
			"contribute": {Flags: map[string]complete.Predictor{
				"p": predict.Nothing, "d": predict.Nothing, "a": predict.Nothing, "note": predict.Nothing,
			}},
			"edit": {Flags: map[string]complete.Predictor{
				"t": ledgers, "id": predict.Nothing, "d": predict.Nothing, "c": categories,
				"a": predict.Nothing, "fx": predict.Nothing, "p": predict.Nothing, "note": predict.Nothing,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"t": ledgers, "id": predict.Nothing,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"w": windows, "d": predict.Nothing,
			}},
			"contributions": {},
			"dashboard":     {},
			"history": {Flags: map[string]complete.Predictor{
				"w": windows, "d": predict.Nothing,
			}},
			"yearly": {Flags: map[string]complete.Predictor{
				"m": predict.Set{"total", "investment"},
			}},
			"fmt":   {},
			"topic": {Args: predict.Set{"readme", "ledger", "categories", "dashboard", "growth", "*"}},
		},
	}
	c.Complete("nwt")
}
