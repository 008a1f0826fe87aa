package networth

import (
	"encoding/json"
	"fmt"
)

// Category identifies one of the four asset buckets tracked by the ledger.
type Category int

const (
	// LocalEquity is stock held in the home currency.
	LocalEquity Category = iota
	// ForeignEquity is stock denominated in a foreign currency.
	ForeignEquity
	// LocalCash is cash held in the home currency.
	LocalCash
	// ForeignCash is cash denominated in a foreign currency.
	ForeignCash
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{LocalEquity, ForeignEquity, LocalCash, ForeignCash}
}

func (c Category) String() string {
	switch c {
	case LocalEquity:
		return "local_equity"
	case ForeignEquity:
		return "foreign_equity"
	case LocalCash:
		return "local_cash"
	case ForeignCash:
		return "foreign_cash"
	default:
		return "unknown"
	}
}

// Name returns a human readable name for the category.
func (c Category) Name() string {
	switch c {
	case LocalEquity:
		return "Local Equity"
	case ForeignEquity:
		return "Foreign Equity"
	case LocalCash:
		return "Local Cash"
	case ForeignCash:
		return "Foreign Cash"
	default:
		return "Unknown"
	}
}

// IsEquity reports whether the category counts toward the investment value.
func (c Category) IsEquity() bool { return c == LocalEquity || c == ForeignEquity }

// IsForeign reports whether amounts in this category are denominated in a
// foreign currency and carry a meaningful fx rate.
func (c Category) IsForeign() bool { return c == ForeignEquity || c == ForeignCash }

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "local_equity":
		return LocalEquity, nil
	case "foreign_equity":
		return ForeignEquity, nil
	case "local_cash":
		return LocalCash, nil
	case "foreign_cash":
		return ForeignCash, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
