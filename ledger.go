package networth

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetLedger is the append-only list of asset snapshots.
//
// It is a plain store: it owns the records and their write-time validation,
// and nothing else. Derivations ([BuildTimeline], reports) read from it and
// never mutate it. Records are kept in chronological order; records sharing
// a day keep their append order.
type AssetLedger struct {
	records []AssetRecord
}

// NewAssetLedger creates an empty asset ledger.
func NewAssetLedger() *AssetLedger {
	return &AssetLedger{records: make([]AssetRecord, 0)}
}

// Append validates and adds records to the ledger. Records without an id are
// given a fresh one.
func (l *AssetLedger) Append(records ...AssetRecord) error {
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if err := r.Validate(); err != nil {
			return err
		}
		l.records = append(l.records, r)
	}
	l.stableSort()
	return nil
}

// Update replaces all fields of the record with the given id, keeping the id.
func (l *AssetLedger) Update(id string, r AssetRecord) error {
	i := slices.IndexFunc(l.records, func(x AssetRecord) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("no asset record with id %q", id)
	}
	r.ID = id
	if err := r.Validate(); err != nil {
		return err
	}
	l.records[i] = r
	l.stableSort()
	return nil
}

// Delete removes the record with the given id.
func (l *AssetLedger) Delete(id string) error {
	i := slices.IndexFunc(l.records, func(x AssetRecord) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("no asset record with id %q", id)
	}
	l.records = slices.Delete(l.records, i, i+1)
	return nil
}

// Get returns the record with the given id.
func (l *AssetLedger) Get(id string) (AssetRecord, bool) {
	i := slices.IndexFunc(l.records, func(x AssetRecord) bool { return x.ID == id })
	if i < 0 {
		return AssetRecord{}, false
	}
	return l.records[i], true
}

// Records returns the records in chronological order. The returned slice is
// a copy; mutating it does not touch the ledger.
func (l *AssetLedger) Records() []AssetRecord { return slices.Clone(l.records) }

// Len returns the number of records in the ledger.
func (l *AssetLedger) Len() int { return len(l.records) }

func (l *AssetLedger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}

// ContributionLedger is the append-only list of capital contributions.
//
// When constructed with a contributor set, records from anyone outside the
// set are rejected at write time.
type ContributionLedger struct {
	people  []string
	records []ContributionRecord
}

// NewContributionLedger creates an empty contribution ledger restricted to
// the given contributors. With no contributors given, any person is accepted.
func NewContributionLedger(people ...string) *ContributionLedger {
	return &ContributionLedger{people: people, records: make([]ContributionRecord, 0)}
}

// People returns the configured contributor set.
func (l *ContributionLedger) People() []string { return slices.Clone(l.people) }

func (l *ContributionLedger) validate(r ContributionRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if len(l.people) > 0 && !slices.Contains(l.people, r.Person) {
		return fmt.Errorf("unknown contributor %q, want one of %v", r.Person, l.people)
	}
	return nil
}

// Append validates and adds records to the ledger.
func (l *ContributionLedger) Append(records ...ContributionRecord) error {
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if err := l.validate(r); err != nil {
			return err
		}
		l.records = append(l.records, r)
	}
	l.stableSort()
	return nil
}

// Update replaces all fields of the record with the given id, keeping the id.
func (l *ContributionLedger) Update(id string, r ContributionRecord) error {
	i := slices.IndexFunc(l.records, func(x ContributionRecord) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("no contribution with id %q", id)
	}
	r.ID = id
	if err := l.validate(r); err != nil {
		return err
	}
	l.records[i] = r
	l.stableSort()
	return nil
}

// Delete removes the record with the given id.
func (l *ContributionLedger) Delete(id string) error {
	i := slices.IndexFunc(l.records, func(x ContributionRecord) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("no contribution with id %q", id)
	}
	l.records = slices.Delete(l.records, i, i+1)
	return nil
}

// Get returns the record with the given id.
func (l *ContributionLedger) Get(id string) (ContributionRecord, bool) {
	i := slices.IndexFunc(l.records, func(x ContributionRecord) bool { return x.ID == id })
	if i < 0 {
		return ContributionRecord{}, false
	}
	return l.records[i], true
}

// Records returns the records in chronological order, as a copy.
func (l *ContributionLedger) Records() []ContributionRecord { return slices.Clone(l.records) }

// Len returns the number of records in the ledger.
func (l *ContributionLedger) Len() int { return len(l.records) }

// TotalByPerson sums the contributions of one person. Summing over an empty
// set yields zero, not an error.
func (l *ContributionLedger) TotalByPerson(person string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.records {
		if r.Person == person {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Total sums all contributions.
func (l *ContributionLedger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.records {
		total = total.Add(r.Amount)
	}
	return total
}

func (l *ContributionLedger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}
