package networth

import (
	"fmt"
	"strings"
)

// Window is a trailing display window for timeline queries.
type Window int

const (
	Window1M Window = iota
	Window3M
	Window6M
	Window1Y
	Window3Y
	WindowAll
)

func (w Window) String() string {
	switch w {
	case Window1M:
		return "1m"
	case Window3M:
		return "3m"
	case Window6M:
		return "6m"
	case Window1Y:
		return "1y"
	case Window3Y:
		return "3y"
	default:
		return "all"
	}
}

// Name returns a human readable name for the window.
func (w Window) Name() string {
	switch w {
	case Window1M:
		return "1 Month"
	case Window3M:
		return "3 Months"
	case Window6M:
		return "6 Months"
	case Window1Y:
		return "1 Year"
	case Window3Y:
		return "3 Years"
	default:
		return "All Time"
	}
}

// Months returns the window length in calendar months, and false for the
// unbounded all-time window.
func (w Window) Months() (int, bool) {
	switch w {
	case Window1M:
		return 1, true
	case Window3M:
		return 3, true
	case Window6M:
		return 6, true
	case Window1Y:
		return 12, true
	case Window3Y:
		return 36, true
	default:
		return 0, false
	}
}

// Cutoff returns the first date included in the window ending at ref.
// The subtraction is calendar aware, not a fixed day count.
// It reports false for the all-time window, which has no cutoff.
func (w Window) Cutoff(ref Date) (Date, bool) {
	months, ok := w.Months()
	if !ok {
		return Date{}, false
	}
	return ref.AddMonths(-months), true
}

// ParseWindow parses a string into a Window.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1m":
		return Window1M, nil
	case "3m":
		return Window3M, nil
	case "6m":
		return Window6M, nil
	case "1y":
		return Window1Y, nil
	case "3y":
		return Window3Y, nil
	case "all", "":
		return WindowAll, nil
	default:
		return WindowAll, fmt.Errorf("unknown window %q (want 1m, 3m, 6m, 1y, 3y or all)", s)
	}
}
