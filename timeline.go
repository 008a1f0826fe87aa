package networth

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TimelinePoint is the reconstructed valuation of the whole portfolio on one
// day. Points are derived, never persisted: the source ledger is small and
// mutation is rare, so every query recomputes from scratch.
type TimelinePoint struct {
	Date        Date
	Total       Money
	Investment  Money // equity categories only
	PerCategory map[Category]Money
}

// BuildTimeline reconstructs the valuation series from asset snapshots,
// one point per distinct snapshot date, ascending.
//
// Each category contributes the amount × fxRate of its most recent record
// dated on or before the point, or 0 when it has no record yet
// (last observation carried forward). When several records share a category
// and a date, the one with the greatest id wins, which keeps the result
// deterministic however the input is ordered.
//
// The input may be in any order. Pure function: an empty input yields an
// empty series, and the ledger is never touched.
func BuildTimeline(records []AssetRecord, currency string) []TimelinePoint {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[Date]struct{}, len(records))
	dates := make([]Date, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Date]; ok {
			continue
		}
		seen[r.Date] = struct{}{}
		dates = append(dates, r.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	points := make([]TimelinePoint, 0, len(dates))
	for _, on := range dates {
		point := TimelinePoint{Date: on, PerCategory: make(map[Category]Money, 4)}
		total, investment := decimal.Zero, decimal.Zero
		for _, c := range Categories() {
			var latest *AssetRecord
			for i := range records {
				r := &records[i]
				if r.Category != c || r.Date.After(on) {
					continue
				}
				if latest == nil || latest.Date.Before(r.Date) ||
					(latest.Date == r.Date && latest.ID < r.ID) {
					latest = r
				}
			}
			value := decimal.Zero
			if latest != nil {
				value = latest.Value()
			}
			point.PerCategory[c] = M(value, currency)
			total = total.Add(value)
			if c.IsEquity() {
				investment = investment.Add(value)
			}
		}
		point.Total = M(total, currency)
		point.Investment = M(investment, currency)
		points = append(points, point)
	}
	return points
}

// FilterByWindow returns the points dated on or after the window's cutoff
// relative to ref, preserving order. The all-time window returns the input
// unchanged.
func FilterByWindow(points []TimelinePoint, w Window, ref Date) []TimelinePoint {
	cutoff, ok := w.Cutoff(ref)
	if !ok {
		return points
	}
	var filtered []TimelinePoint
	for _, p := range points {
		if !p.Date.Before(cutoff) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
