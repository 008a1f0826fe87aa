package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/wtlin/networth"
)

// YearlyMarkdown renders the year-over-year growth table to a markdown string.
func YearlyMarkdown(r *networth.YearlyReport, metric string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Yearly Growth (%s)", metric))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Start", "End", "Growth"},
		Rows:      [][]string{},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(row.Year),
			value(row.Growth.Start),
			value(row.Growth.End),
			rate(row.Growth.Rate, row.Growth.Defined),
		})
	}
	doc.Table(table)

	return doc.String()
}
