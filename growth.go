package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Metric selects the value a growth rate is computed over.
type Metric func(TimelinePoint) Money

var (
	// TotalValue measures the whole portfolio.
	TotalValue Metric = func(p TimelinePoint) Money { return p.Total }
	// InvestmentValue measures the equity categories only.
	InvestmentValue Metric = func(p TimelinePoint) Money { return p.Investment }
)

// ParseMetric parses a string into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "total", "":
		return TotalValue, nil
	case "investment":
		return InvestmentValue, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (want total or investment)", s)
	}
}

// TrailingGrowth returns the percentage change between the latest point and
// the point nearest to monthsBack calendar months earlier. It reports false
// when the timeline has fewer than two points.
//
// The comparison point is the nearest neighbour by absolute day distance;
// on an exact tie the earlier point wins. A zero comparison value yields a
// growth of 0: there is no prior value to grow from, and no division by it.
func TrailingGrowth(points []TimelinePoint, monthsBack int, metric Metric) (Percent, bool) {
	if len(points) < 2 {
		return 0, false
	}
	last := points[len(points)-1]
	current := metric(last)
	target := last.Date.AddMonths(-monthsBack)

	comparison := points[0]
	bestDistance := DaysBetween(points[0].Date, target)
	for _, p := range points[1:] {
		if d := DaysBetween(p.Date, target); d < bestDistance {
			comparison, bestDistance = p, d
		}
	}

	base := metric(comparison)
	if base.IsZero() {
		return 0, true
	}
	rate := current.Decimal().Sub(base.Decimal()).Div(base.Decimal()).Mul(decimal.NewFromInt(100))
	return Percent(rate.InexactFloat64()), true
}

// Growth is the outcome of a calendar-year growth calculation. Start and End
// are reported even when the rate itself is undefined.
type Growth struct {
	Start   Money
	End     Money
	Rate    Percent
	Defined bool // false when there is not enough data to compute a rate
}

// AnnualGrowth returns the growth of a calendar year: the change from the
// prior year's carried-forward closing value to the year's own closing
// value. Without prior-year data the year's opening value serves as
// baseline; a year with a single point and no prior data has none.
// A zero baseline leaves the rate undefined but still reports the values.
func AnnualGrowth(points []TimelinePoint, year int, metric Metric) Growth {
	var inYear, before []TimelinePoint
	for _, p := range points {
		switch {
		case p.Date.Year() < year:
			before = append(before, p)
		case p.Date.Year() == year:
			inYear = append(inYear, p)
		}
	}
	if len(inYear) == 0 {
		return Growth{}
	}

	g := Growth{End: metric(inYear[len(inYear)-1])}
	switch {
	case len(before) > 0:
		g.Start = metric(before[len(before)-1])
	case len(inYear) == 1:
		return g // no baseline
	default:
		g.Start = metric(inYear[0])
	}
	if g.Start.IsZero() {
		return g // rate undefined, values still reported
	}
	rate := g.End.Decimal().Sub(g.Start.Decimal()).Div(g.Start.Decimal()).Mul(decimal.NewFromInt(100))
	g.Rate = Percent(rate.InexactFloat64())
	g.Defined = true
	return g
}

// Years returns the distinct calendar years present in the timeline,
// ascending.
func Years(points []TimelinePoint) []int {
	var years []int
	for _, p := range points {
		if len(years) == 0 || years[len(years)-1] != p.Date.Year() {
			years = append(years, p.Date.Year())
		}
	}
	return years
}
