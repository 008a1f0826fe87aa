package networth

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetRecord is a point-in-time snapshot of one asset category.
//
// Amount is denominated in the category's native currency; FxRate converts
// it to the home currency. Local categories always carry a rate of 1.
// A record is immutable once appended, except through
// [AssetLedger.Update] which replaces every field but the id.
type AssetRecord struct {
	ID       string          `json:"id"`
	Date     Date            `json:"date"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	FxRate   decimal.Decimal `json:"fxRate"`
	Note     string          `json:"note,omitempty"`
}

// NewAssetRecord creates a snapshot record with a fresh id.
func NewAssetRecord(on Date, category Category, amount, fxRate decimal.Decimal, note string) AssetRecord {
	return AssetRecord{
		ID:       uuid.NewString(),
		Date:     on,
		Category: category,
		Amount:   amount,
		FxRate:   fxRate,
		Note:     note,
	}
}

// Value returns the snapshot value converted to the home currency.
func (r AssetRecord) Value() decimal.Decimal { return r.Amount.Mul(r.FxRate) }

// Validate checks the record for correctness. Malformed records are rejected
// here, at write time; derivations assume validated input.
func (r AssetRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("asset record %q has no date", r.ID)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("asset record %q has negative amount %s", r.ID, r.Amount)
	}
	if !r.FxRate.IsPositive() {
		return fmt.Errorf("asset record %q has non-positive fx rate %s", r.ID, r.FxRate)
	}
	if !r.Category.IsForeign() && !r.FxRate.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("asset record %q is %s but has fx rate %s, want 1", r.ID, r.Category, r.FxRate)
	}
	return nil
}
