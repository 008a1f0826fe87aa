package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/wtlin/networth"
)

// DashboardMarkdown renders the dashboard report to a markdown string.
func DashboardMarkdown(d *networth.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title("Net Worth", d.Date))
	doc.PlainText(fmt.Sprintf("Total: %s, Investment: %s (%s)", d.Total, d.Investment, d.Currency))

	if len(d.Allocation) > 0 {
		doc.H2("Allocation")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Value", "Weight"},
			Rows:      [][]string{},
		}
		for _, row := range d.Allocation {
			table.Rows = append(table.Rows, []string{
				row.Category.Name(),
				row.Value.String(),
				row.Weight.String(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Growth")
	growth := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Window", "Total", "Investment"},
		Rows:      [][]string{},
	}
	for _, row := range d.Trailing {
		growth.Rows = append(growth.Rows, []string{
			row.Window.Name(),
			rate(row.Total, row.TotalDefined),
			rate(row.Investment, row.InvestmentDefined),
		})
	}
	doc.Table(growth)

	if len(d.Contributions) > 0 {
		doc.H2("Contributions")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Person", "Total"},
			Rows:      [][]string{},
		}
		for _, row := range d.Contributions {
			table.Rows = append(table.Rows, []string{row.Person, row.Total.String()})
		}
		table.Rows = append(table.Rows, []string{"Together", d.Contributed.String()})
		doc.Table(table)
	}

	return doc.String()
}
