package networth

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContributionRecord is a capital contribution from one person, in the home
// currency.
type ContributionRecord struct {
	ID     string          `json:"id"`
	Person string          `json:"person"`
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// NewContributionRecord creates a contribution record with a fresh id.
func NewContributionRecord(person string, on Date, amount decimal.Decimal, note string) ContributionRecord {
	return ContributionRecord{
		ID:     uuid.NewString(),
		Person: person,
		Date:   on,
		Amount: amount,
		Note:   note,
	}
}

// Validate checks the record for correctness.
func (r ContributionRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("contribution %q has no date", r.ID)
	}
	if r.Person == "" {
		return fmt.Errorf("contribution %q has no person", r.ID)
	}
	return nil
}
