package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/wtlin/networth"
)

// AssetRecords renders the raw snapshot records to a markdown string.
func AssetRecords(records []networth.AssetRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Asset Records")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"ID", "Date", "Category", "Amount", "Fx", "Note"},
		Rows:      [][]string{},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.ID,
			r.Date.String(),
			r.Category.String(),
			r.Amount.String(),
			r.FxRate.String(),
			r.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}

// ContributionRecords renders the raw contribution records to a markdown string.
func ContributionRecords(records []networth.ContributionRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Contributions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"ID", "Date", "Person", "Amount", "Note"},
		Rows:      [][]string{},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.ID,
			r.Date.String(),
			r.Person,
			r.Amount.String(),
			r.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}
