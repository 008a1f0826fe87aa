package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/wtlin/networth"
)

// HistoryMarkdown renders the reconstructed timeline to a markdown string.
func HistoryMarkdown(r *networth.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History (%s)", r.Window.Name()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Local Equity", "Foreign Equity", "Local Cash", "Foreign Cash", "Investment", "Total"},
		Rows:   [][]string{},
	}
	for _, p := range r.Entries {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.PerCategory[networth.LocalEquity].String(),
			p.PerCategory[networth.ForeignEquity].String(),
			p.PerCategory[networth.LocalCash].String(),
			p.PerCategory[networth.ForeignCash].String(),
			p.Investment.String(),
			p.Total.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
