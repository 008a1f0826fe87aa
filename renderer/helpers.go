// Package renderer turns reports into markdown for terminal display.
package renderer

import (
	"fmt"

	"github.com/wtlin/networth"
)

// rate formats a growth rate cell, with a placeholder when the underlying
// data was insufficient to compute one.
func rate(p networth.Percent, defined bool) string {
	if !defined {
		return "n/a"
	}
	return p.SignedString()
}

// value formats a money cell, with a placeholder for the zero value.
func value(m networth.Money) string {
	if m.Currency() == "" && m.IsZero() {
		return "n/a"
	}
	return m.String()
}

// title formats a report heading with its date.
func title(name string, on networth.Date) string {
	if on.IsZero() {
		return name
	}
	return fmt.Sprintf("%s on %s", name, on)
}
