package networth

import (
	"reflect"
	"testing"
)

// specRecords is the worked example from the household ledger: two yearly
// snapshots of local and foreign equity.
func specRecords() []AssetRecord {
	return []AssetRecord{
		snapshot("a1", "2025-01-05", ForeignEquity, 78130, 32.5),
		snapshot("a2", "2025-01-05", LocalEquity, 107947, 1),
		snapshot("a3", "2026-01-05", ForeignEquity, 94937, 32.5),
		snapshot("a4", "2026-01-05", LocalEquity, 147107, 1),
	}
}

func TestBuildTimeline(t *testing.T) {
	points := BuildTimeline(specRecords(), "TWD")

	if len(points) != 2 {
		t.Fatalf("BuildTimeline() returned %d points, want 2", len(points))
	}

	// 78130×32.5 + 107947
	if want := twd(2647172); !points[0].Total.Equal(want) {
		t.Errorf("2025 total = %s, want %s", points[0].Total, want)
	}
	// 94937×32.5 + 147107
	if want := twd(3232559.5); !points[1].Total.Equal(want) {
		t.Errorf("2026 total = %s, want %s", points[1].Total, want)
	}

	// all records are equity, so investment equals total
	for _, p := range points {
		if !p.Investment.Equal(p.Total) {
			t.Errorf("on %s investment = %s, want %s", p.Date, p.Investment, p.Total)
		}
	}
	if points[0].Date != day("2025-01-05") || points[1].Date != day("2026-01-05") {
		t.Errorf("dates = %s, %s; want ascending 2025-01-05, 2026-01-05", points[0].Date, points[1].Date)
	}
}

func TestBuildTimeline_EmptyInput(t *testing.T) {
	if points := BuildTimeline(nil, "TWD"); len(points) != 0 {
		t.Errorf("BuildTimeline(nil) returned %d points, want 0", len(points))
	}
}

func TestBuildTimeline_OnePointPerDistinctDate(t *testing.T) {
	records := []AssetRecord{
		snapshot("a1", "2025-01-05", LocalCash, 100, 1),
		snapshot("a2", "2025-01-05", LocalEquity, 200, 1),
		snapshot("a3", "2025-02-01", LocalCash, 150, 1),
		snapshot("a4", "2025-03-01", LocalCash, 180, 1),
		snapshot("a5", "2025-03-01", ForeignCash, 10, 30),
	}
	points := BuildTimeline(records, "TWD")
	if len(points) != 3 {
		t.Errorf("got %d points, want one per distinct date (3)", len(points))
	}
}

func TestBuildTimeline_CarriesValuesForward(t *testing.T) {
	records := []AssetRecord{
		snapshot("a1", "2025-01-05", LocalEquity, 1000, 1),
		snapshot("a2", "2025-03-01", LocalCash, 500, 1),
	}
	points := BuildTimeline(records, "TWD")
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}

	// before its first record, a category contributes 0
	if got := points[0].PerCategory[LocalCash]; !got.IsZero() {
		t.Errorf("local cash on %s = %s, want 0", points[0].Date, got)
	}
	// with no new observation, the equity value is carried forward
	if got, want := points[1].PerCategory[LocalEquity], twd(1000); !got.Equal(want) {
		t.Errorf("local equity on %s = %s, want carried-forward %s", points[1].Date, got, want)
	}
	if got, want := points[1].Total, twd(1500); !got.Equal(want) {
		t.Errorf("total on %s = %s, want %s", points[1].Date, got, want)
	}
}

func TestBuildTimeline_TotalIsInvestmentPlusCash(t *testing.T) {
	records := []AssetRecord{
		snapshot("a1", "2025-01-05", LocalEquity, 1000, 1),
		snapshot("a2", "2025-01-05", ForeignEquity, 10, 32.5),
		snapshot("a3", "2025-02-01", LocalCash, 500, 1),
		snapshot("a4", "2025-02-10", ForeignCash, 100, 30),
	}
	for _, p := range BuildTimeline(records, "TWD") {
		cash := p.PerCategory[LocalCash].Add(p.PerCategory[ForeignCash])
		if !p.Total.Equal(p.Investment.Add(cash)) {
			t.Errorf("on %s total %s != investment %s + cash %s", p.Date, p.Total, p.Investment, cash)
		}
	}
}

func TestBuildTimeline_OrderIndependent(t *testing.T) {
	records := specRecords()
	reversed := make([]AssetRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}

	a := BuildTimeline(records, "TWD")
	b := BuildTimeline(reversed, "TWD")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("BuildTimeline is not deterministic over a reordered input:\n%v\n%v", a, b)
	}
}

func TestBuildTimeline_SameDayCollision(t *testing.T) {
	// two snapshots of the same category on the same day: the greatest id
	// wins, whatever the input order.
	records := []AssetRecord{
		snapshot("b", "2025-01-05", LocalCash, 200, 1),
		snapshot("a", "2025-01-05", LocalCash, 100, 1),
	}
	for name, recs := range map[string][]AssetRecord{
		"as-is":    records,
		"reversed": {records[1], records[0]},
	} {
		points := BuildTimeline(recs, "TWD")
		if len(points) != 1 {
			t.Fatalf("%s: got %d points, want 1", name, len(points))
		}
		if got, want := points[0].Total, twd(200); !got.Equal(want) {
			t.Errorf("%s: total = %s, want %s (record with greatest id)", name, got, want)
		}
	}
}

func TestFilterByWindow(t *testing.T) {
	points := []TimelinePoint{
		point("2024-06-01", 1, 1),
		point("2025-03-10", 2, 2),
		point("2025-05-10", 3, 3),
		point("2025-06-10", 4, 4),
	}
	ref := day("2025-06-10")

	tests := []struct {
		window Window
		want   int
	}{
		{Window1M, 2}, // cutoff 2025-05-10, boundary included
		{Window3M, 3},
		{Window6M, 3},
		{Window1Y, 3},
		{Window3Y, 4},
		{WindowAll, 4},
	}
	for _, tt := range tests {
		got := FilterByWindow(points, tt.window, ref)
		if len(got) != tt.want {
			t.Errorf("FilterByWindow(%s) kept %d points, want %d", tt.window, len(got), tt.want)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Date.Before(got[i-1].Date) {
				t.Errorf("FilterByWindow(%s) does not preserve order", tt.window)
			}
		}
	}

	// all-time returns the input unchanged
	if all := FilterByWindow(points, WindowAll, ref); !reflect.DeepEqual(all, points) {
		t.Errorf("FilterByWindow(all) should return the input unchanged")
	}
}
