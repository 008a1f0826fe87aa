package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"

	"github.com/wtlin/networth"
)

// useTempDir points the global config at a throwaway ledger directory.
func useTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := cfg
	cfg = Config{Dir: dir, Currency: "TWD", Contributors: []string{"A_Hui", "A_Wei"}}
	t.Cleanup(func() { cfg = old })
	return dir
}

func TestConfigDefaults(t *testing.T) {
	if cfgErr != nil {
		t.Fatalf("env parsing failed: %v", cfgErr)
	}
	if cfg.Currency == "" || len(cfg.Contributors) == 0 {
		t.Errorf("config misses defaults: %+v", cfg)
	}
}

func TestAddThenDelete(t *testing.T) {
	useTempDir(t)

	add := &addCmd{date: "2025-01-05", category: "local_equity", amount: "107947", fx: "1"}
	if got := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("add Execute() = %v, want success", got)
	}

	ledger, err := decodeAssets()
	if err != nil {
		t.Fatalf("decodeAssets() error: %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d records, want 1", ledger.Len())
	}
	rec := ledger.Records()[0]

	del := &deleteCmd{kind: "asset", id: rec.ID}
	if got := del.Execute(context.Background(), flag.NewFlagSet("delete", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("delete Execute() = %v, want success", got)
	}
	ledger, err = decodeAssets()
	if err != nil {
		t.Fatalf("decodeAssets() error: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d records after delete, want 0", ledger.Len())
	}
}

func TestAddRejectsBadCategory(t *testing.T) {
	useTempDir(t)
	add := &addCmd{date: "2025-01-05", category: "crypto", amount: "1", fx: "1"}
	if got := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); got != subcommands.ExitUsageError {
		t.Errorf("add Execute() = %v, want usage error", got)
	}
}

func TestContributeRejectsStranger(t *testing.T) {
	useTempDir(t)
	c := &contributeCmd{person: "Stranger", date: "2025-01-05", amount: "100"}
	if got := c.Execute(context.Background(), flag.NewFlagSet("contribute", flag.ContinueOnError)); got != subcommands.ExitUsageError {
		t.Errorf("contribute Execute() = %v, want usage error", got)
	}
}

func TestEditRewritesAsset(t *testing.T) {
	useTempDir(t)

	add := &addCmd{date: "2025-01-05", category: "foreign_cash", amount: "1000", fx: "32.5"}
	if got := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("add Execute() = %v, want success", got)
	}
	ledger, _ := decodeAssets()
	id := ledger.Records()[0].ID

	edit := &editCmd{kind: "asset", id: id, amount: "2000"}
	if got := edit.Execute(context.Background(), flag.NewFlagSet("edit", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("edit Execute() = %v, want success", got)
	}

	ledger, _ = decodeAssets()
	rec, ok := ledger.Get(id)
	if !ok {
		t.Fatalf("record %s lost after edit", id)
	}
	if rec.Amount.String() != "2000" {
		t.Errorf("amount = %s after edit, want 2000", rec.Amount)
	}
	if rec.FxRate.String() != "32.5" {
		t.Errorf("fx = %s after edit, want untouched 32.5", rec.FxRate)
	}
}

func TestFmtCanonicalizesFile(t *testing.T) {
	dir := useTempDir(t)

	// two records out of chronological order, with a blank line
	raw := `{"id":"b","date":"2026-01-05","category":"local_equity","amount":147107,"fxRate":1}

{"id":"a","date":"2025-01-05","category":"local_equity","amount":107947,"fxRate":1}
`
	if err := os.WriteFile(filepath.Join(dir, "assets.jsonl"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &fmtCmd{}
	if got := cmd.Execute(context.Background(), flag.NewFlagSet("fmt", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("fmt Execute() = %v, want success", got)
	}

	out, err := os.ReadFile(filepath.Join(dir, "assets.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)
	if strings.Index(text, `"id":"a"`) > strings.Index(text, `"id":"b"`) {
		t.Errorf("fmt did not sort records chronologically:\n%s", text)
	}
	if strings.Contains(text, "\n\n") {
		t.Errorf("fmt left blank lines:\n%s", text)
	}

	// the canonical file decodes back to the same ledger
	if _, err := networth.LoadAssetLedger(filepath.Join(dir, "assets.jsonl")); err != nil {
		t.Errorf("canonical file does not decode: %v", err)
	}
}
