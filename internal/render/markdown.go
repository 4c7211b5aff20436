// Package render turns ledger records and reports into Markdown and prints
// it to a terminal.
package render

import (
	"fmt"
	"strings"

	"gastos/internal/core"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func cell(s string) string {
	return cellEscaper.Replace(s)
}

// Entries renders the records of a month as a table. Cells are shown as
// stored: an absent amount is an empty cell, not 0.
func Entries(m core.Month, records []core.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Expenses %s\n\n", m)
	if len(records) == 0 {
		b.WriteString("No entries recorded.\n")
		return b.String()
	}
	b.WriteString("| Date | Category | Amount (Colones) | Amount (Dollars) | Description |\n")
	b.WriteString("|---|---|--:|--:|---|\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(r.Date), cell(r.Category), cell(r.Colones), cell(r.Dollars), cell(r.Description))
	}
	fmt.Fprintf(&b, "\n%d entries\n", len(records))
	return b.String()
}

// Report renders a monthly summary.
func Report(r core.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Report %s\n\n", r.Month)
	fmt.Fprintf(&b, "- Entries: %d\n", r.Entries)
	fmt.Fprintf(&b, "- Total colones: %s\n", FormatMoney(r.TotalColones, Colones))
	fmt.Fprintf(&b, "- Total dollars: %s\n", FormatMoney(r.TotalDollars, Dollars))
	if len(r.ByCategory) == 0 {
		return b.String()
	}
	b.WriteString("\n## By category\n\n")
	b.WriteString("| Category | Colones | Dollars |\n")
	b.WriteString("|---|--:|--:|\n")
	for _, c := range r.ByCategory {
		name := c.Name
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			cell(name), FormatMoney(c.Colones, Colones), FormatMoney(c.Dollars, Dollars))
	}
	return b.String()
}

// Year renders the monthly totals of a year.
func Year(y core.YearOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Year %04d\n\n", y.Year)
	b.WriteString("| Month | Entries | Colones | Dollars |\n")
	b.WriteString("|---|--:|--:|--:|\n")
	for _, r := range y.Months {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			r.Month, r.Entries, FormatMoney(r.TotalColones, Colones), FormatMoney(r.TotalDollars, Dollars))
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | **%s** |\n",
		FormatMoney(y.TotalColones, Colones), FormatMoney(y.TotalDollars, Dollars))
	return b.String()
}
