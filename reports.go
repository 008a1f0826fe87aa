package networth

// Report constructors: stateless transformations from the ledgers to the
// shapes the renderer displays. They are re-derived in full on every call.

// AllocationRow is one category's share of the current portfolio.
type AllocationRow struct {
	Category Category
	Value    Money
	Weight   Percent
}

// TrailingRow is the growth over one trailing window, for both metrics.
type TrailingRow struct {
	Window            Window
	Total             Percent
	TotalDefined      bool
	Investment        Percent
	InvestmentDefined bool
}

// PersonTotal is the contribution total of one person.
type PersonTotal struct {
	Person string
	Total  Money
}

// Dashboard is the at-a-glance view: current allocation, trailing growth
// and contribution totals.
type Dashboard struct {
	Date          Date // date of the latest snapshot
	Currency      string
	Total         Money
	Investment    Money
	Allocation    []AllocationRow
	Trailing      []TrailingRow
	Contributions []PersonTotal
	Contributed   Money
}

// dashboardWindows are the trailing windows the dashboard reports on.
var dashboardWindows = []Window{Window1M, Window3M, Window6M, Window1Y, Window3Y}

// NewDashboard derives the dashboard from the current ledgers.
func NewDashboard(assets *AssetLedger, contributions *ContributionLedger, currency string) *Dashboard {
	points := BuildTimeline(assets.Records(), currency)

	d := &Dashboard{
		Currency:   currency,
		Total:      M(0, currency),
		Investment: M(0, currency),
	}
	if len(points) > 0 {
		last := points[len(points)-1]
		d.Date = last.Date
		d.Total = last.Total
		d.Investment = last.Investment
		for _, c := range Categories() {
			value := last.PerCategory[c]
			weight, _ := value.PercentOf(last.Total)
			d.Allocation = append(d.Allocation, AllocationRow{Category: c, Value: value, Weight: weight})
		}
	}

	for _, w := range dashboardWindows {
		months, _ := w.Months()
		row := TrailingRow{Window: w}
		row.Total, row.TotalDefined = TrailingGrowth(points, months, TotalValue)
		row.Investment, row.InvestmentDefined = TrailingGrowth(points, months, InvestmentValue)
		d.Trailing = append(d.Trailing, row)
	}

	people := contributions.People()
	if len(people) == 0 {
		// unrestricted ledger: report whoever appears, in first-seen order
		seen := make(map[string]struct{})
		for _, r := range contributions.Records() {
			if _, ok := seen[r.Person]; !ok {
				seen[r.Person] = struct{}{}
				people = append(people, r.Person)
			}
		}
	}
	for _, person := range people {
		d.Contributions = append(d.Contributions, PersonTotal{
			Person: person,
			Total:  M(contributions.TotalByPerson(person), currency),
		})
	}
	d.Contributed = M(contributions.Total(), currency)
	return d
}

// HistoryReport is the reconstructed timeline restricted to a display window.
type HistoryReport struct {
	Currency string
	Window   Window
	Entries  []TimelinePoint
}

// NewHistoryReport derives the timeline and filters it to the window ending
// at ref.
func NewHistoryReport(assets *AssetLedger, currency string, w Window, ref Date) *HistoryReport {
	points := BuildTimeline(assets.Records(), currency)
	return &HistoryReport{
		Currency: currency,
		Window:   w,
		Entries:  FilterByWindow(points, w, ref),
	}
}

// YearlyRow is the growth of one calendar year.
type YearlyRow struct {
	Year   int
	Growth Growth
}

// YearlyReport lists the growth of every calendar year present in the
// timeline.
type YearlyReport struct {
	Currency string
	Rows     []YearlyRow
}

// NewYearlyReport derives the year-over-year growth table.
func NewYearlyReport(assets *AssetLedger, currency string, metric Metric) *YearlyReport {
	points := BuildTimeline(assets.Records(), currency)
	report := &YearlyReport{Currency: currency}
	for _, year := range Years(points) {
		report.Rows = append(report.Rows, YearlyRow{
			Year:   year,
			Growth: AnnualGrowth(points, year, metric),
		})
	}
	return report
}
