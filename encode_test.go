package networth

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleAssets = `{"id":"a1","date":"2025-01-05","category":"foreign_equity","amount":78130,"fxRate":32.5}

{"id":"a2","date":"2025-01-05","category":"local_equity","amount":107947,"fxRate":1,"note":"broker statement"}
{"id":"a3","date":"2026-01-05","category":"foreign_equity","amount":94937,"fxRate":32.5}
`

func TestDecodeAssetLedger(t *testing.T) {
	ledger, err := DecodeAssetLedger(strings.NewReader(sampleAssets))
	if err != nil {
		t.Fatalf("DecodeAssetLedger() error: %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("decoded %d records, want 3 (blank lines skipped)", ledger.Len())
	}

	rec, ok := ledger.Get("a2")
	if !ok {
		t.Fatalf("record a2 not found")
	}
	if rec.Category != LocalEquity || !rec.Amount.Equal(dec(107947)) || rec.Note != "broker statement" {
		t.Errorf("decoded record unexpected: %+v", rec)
	}
}

func TestDecodeAssetLedger_BadLine(t *testing.T) {
	_, err := DecodeAssetLedger(strings.NewReader("{not json}\n"))
	if err == nil || !strings.Contains(err.Error(), "{not json}") {
		t.Errorf("decode error should carry the offending line, got %v", err)
	}

	// malformed records are rejected at decode time too
	_, err = DecodeAssetLedger(strings.NewReader(`{"id":"x","date":"2025-01-05","category":"local_cash","amount":-5,"fxRate":1}` + "\n"))
	if err == nil {
		t.Errorf("decode should reject records that fail validation")
	}
}

func TestEncodeAssetLedger_RoundTrip(t *testing.T) {
	ledger, err := DecodeAssetLedger(strings.NewReader(sampleAssets))
	if err != nil {
		t.Fatalf("DecodeAssetLedger() error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeAssetLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeAssetLedger() error: %v", err)
	}

	back, err := DecodeAssetLedger(&buf)
	if err != nil {
		t.Fatalf("decode of encoded ledger failed: %v", err)
	}
	if !reflect.DeepEqual(ledger.Records(), back.Records()) {
		t.Errorf("round trip changed the records:\n%v\n%v", ledger.Records(), back.Records())
	}
}

func TestEncodeAssetLedger_Canonical(t *testing.T) {
	ledger := NewAssetLedger()
	err := ledger.Append(
		snapshot("a2", "2026-01-05", ForeignEquity, 94937, 32.5),
		snapshot("a1", "2025-01-05", LocalEquity, 107947, 1),
	)
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeAssetLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeAssetLedger() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("encoded %d lines, want 2", len(lines))
	}
	// chronological order, numbers without quotes
	if !strings.Contains(lines[0], `"a1"`) || !strings.Contains(lines[1], `"a2"`) {
		t.Errorf("encoded ledger is not in chronological order:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], `"fxRate":32.5`) {
		t.Errorf("decimals should encode without quotes, got %s", lines[1])
	}
}

func TestLoadSaveAssetLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.jsonl")

	// a missing file is an empty ledger, not an error
	ledger, err := LoadAssetLedger(path)
	if err != nil {
		t.Fatalf("LoadAssetLedger() on a missing file: %v", err)
	}
	if ledger.Len() != 0 {
		t.Fatalf("missing file should load as an empty ledger")
	}

	if err := ledger.Append(snapshot("a1", "2025-01-05", LocalCash, 10, 1)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := SaveAssetLedger(path, ledger); err != nil {
		t.Fatalf("SaveAssetLedger() error: %v", err)
	}

	back, err := LoadAssetLedger(path)
	if err != nil {
		t.Fatalf("LoadAssetLedger() error: %v", err)
	}
	if !reflect.DeepEqual(ledger.Records(), back.Records()) {
		t.Errorf("file round trip changed the records")
	}
}

func TestContributionLedger_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contributions.jsonl")

	ledger, err := LoadContributionLedger(path, "A_Hui", "A_Wei")
	if err != nil {
		t.Fatalf("LoadContributionLedger() on a missing file: %v", err)
	}
	if err := ledger.Append(NewContributionRecord("A_Hui", day("2026-12-31"), dec(350000), "year-end")); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := SaveContributionLedger(path, ledger); err != nil {
		t.Fatalf("SaveContributionLedger() error: %v", err)
	}

	back, err := LoadContributionLedger(path, "A_Hui", "A_Wei")
	if err != nil {
		t.Fatalf("LoadContributionLedger() error: %v", err)
	}
	if !reflect.DeepEqual(ledger.Records(), back.Records()) {
		t.Errorf("file round trip changed the records")
	}
}

func TestDecodeContributionLedger_RejectsUnknownPerson(t *testing.T) {
	line := `{"id":"c1","person":"Stranger","date":"2026-12-31","amount":1}` + "\n"
	if _, err := DecodeContributionLedger(strings.NewReader(line), "A_Hui", "A_Wei"); err == nil {
		t.Errorf("decode should reject contributors outside the configured set")
	}
}
