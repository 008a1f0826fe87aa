package networth

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
)

// Ledgers persist as JSONL: one record per line, human-readable and
// git-friendly. Decoding is line-by-line so a format error points at the
// offending line; encoding is canonical so a rewrite of an untouched ledger
// is a no-op diff.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeAssetLedger decodes asset records from a stream of JSONL data and
// returns a sorted ledger.
func DecodeAssetLedger(r io.Reader) (*AssetLedger, error) {
	ledger := NewAssetLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var rec AssetRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode asset record %q: %w", string(line), err)
		}
		if err := ledger.Append(rec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeAssetRecord marshals a single record and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeAssetRecord(w io.Writer, rec AssetRecord) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal asset record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write asset record: %w", err)
	}
	return nil
}

// EncodeAssetLedger persists the ledger to a writer in canonical JSONL form,
// in chronological order.
func EncodeAssetLedger(w io.Writer, ledger *AssetLedger) error {
	for _, rec := range ledger.Records() {
		if err := EncodeAssetRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// DecodeContributionLedger decodes contribution records from a stream of
// JSONL data and returns a sorted ledger restricted to the given people.
func DecodeContributionLedger(r io.Reader, people ...string) (*ContributionLedger, error) {
	ledger := NewContributionLedger(people...)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec ContributionRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode contribution %q: %w", string(line), err)
		}
		if err := ledger.Append(rec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeContributionRecord marshals a single record and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeContributionRecord(w io.Writer, rec ContributionRecord) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal contribution: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write contribution: %w", err)
	}
	return nil
}

// EncodeContributionLedger persists the ledger to a writer in canonical
// JSONL form, in chronological order.
func EncodeContributionLedger(w io.Writer, ledger *ContributionLedger) error {
	for _, rec := range ledger.Records() {
		if err := EncodeContributionRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// LoadAssetLedger reads an asset ledger from a file. A missing file yields
// an empty ledger, so a fresh directory works without setup.
func LoadAssetLedger(path string) (*AssetLedger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewAssetLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open asset ledger %q: %w", path, err)
	}
	defer f.Close()
	ledger, err := DecodeAssetLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode asset ledger %q: %w", path, err)
	}
	return ledger, nil
}

// SaveAssetLedger rewrites the ledger file in canonical form.
func SaveAssetLedger(path string, ledger *AssetLedger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create asset ledger %q: %w", path, err)
	}
	defer f.Close()
	return EncodeAssetLedger(f, ledger)
}

// LoadContributionLedger reads a contribution ledger from a file. A missing
// file yields an empty ledger.
func LoadContributionLedger(path string, people ...string) (*ContributionLedger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewContributionLedger(people...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open contribution ledger %q: %w", path, err)
	}
	defer f.Close()
	ledger, err := DecodeContributionLedger(f, people...)
	if err != nil {
		return nil, fmt.Errorf("could not decode contribution ledger %q: %w", path, err)
	}
	return ledger, nil
}

// SaveContributionLedger rewrites the ledger file in canonical form.
func SaveContributionLedger(path string, ledger *ContributionLedger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create contribution ledger %q: %w", path, err)
	}
	defer f.Close()
	return EncodeContributionLedger(f, ledger)
}
