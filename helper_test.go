package networth

import (
	"github.com/shopspring/decimal"
)

// test constructors to keep the tables below short.

// day is a helper for tests to build a date from a string.
func day(s string) Date { return MustParse(s) }

// dec is a helper for tests to build a decimal from a const.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// twd is a helper for tests to build home-currency money from a const.
func twd(v float64) Money { return M(v, "TWD") }

// snapshot is a helper for tests to build an asset record.
func snapshot(id, on string, c Category, amount, fx float64) AssetRecord {
	return AssetRecord{ID: id, Date: MustParse(on), Category: c, Amount: dec(amount), FxRate: dec(fx)}
}

// point is a helper for tests to build a timeline point directly.
func point(on string, total, investment float64) TimelinePoint {
	return TimelinePoint{Date: MustParse(on), Total: twd(total), Investment: twd(investment)}
}
