package core

import "github.com/shopspring/decimal"

// CategoryTotal holds the subtotals of one category in both currencies.
type CategoryTotal struct {
	Name    string
	Colones decimal.Decimal
	Dollars decimal.Decimal
}

// Report is the summary of one monthly file.
type Report struct {
	Month        Month
	Entries      int
	TotalColones decimal.Decimal
	TotalDollars decimal.Decimal
	ByCategory   []CategoryTotal // first appearance order
}

// YearOverview gathers the reports of every month of a year that has data.
type YearOverview struct {
	Year         int
	Months       []Report
	TotalColones decimal.Decimal
	TotalDollars decimal.Decimal
}

// Summarize aggregates records. Amounts are coerced with ZeroDefault; the
// records themselves are not modified.
func Summarize(m Month, records []Record) Report {
	r := Report{
		Month:        m,
		Entries:      len(records),
		TotalColones: decimal.Zero,
		TotalDollars: decimal.Zero,
	}
	index := make(map[string]int)
	for _, rec := range records {
		colones := rec.ColonesValue()
		dollars := rec.DollarsValue()
		r.TotalColones = r.TotalColones.Add(colones)
		r.TotalDollars = r.TotalDollars.Add(dollars)

		i, ok := index[rec.Category]
		if !ok {
			i = len(r.ByCategory)
			index[rec.Category] = i
			r.ByCategory = append(r.ByCategory, CategoryTotal{
				Name:    rec.Category,
				Colones: decimal.Zero,
				Dollars: decimal.Zero,
			})
		}
		r.ByCategory[i].Colones = r.ByCategory[i].Colones.Add(colones)
		r.ByCategory[i].Dollars = r.ByCategory[i].Dollars.Add(dollars)
	}
	return r
}

// ColonesByCategory returns the colones subtotal keyed by category.
func (r Report) ColonesByCategory() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.ByCategory))
	for _, c := range r.ByCategory {
		out[c.Name] = c.Colones
	}
	return out
}

// DollarsByCategory returns the dollars subtotal keyed by category.
func (r Report) DollarsByCategory() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.ByCategory))
	for _, c := range r.ByCategory {
		out[c.Name] = c.Dollars
	}
	return out
}

// NewYearOverview totals monthly reports. Reports are expected in calendar order.
func NewYearOverview(year int, reports []Report) YearOverview {
	y := YearOverview{
		Year:         year,
		Months:       reports,
		TotalColones: decimal.Zero,
		TotalDollars: decimal.Zero,
	}
	for _, r := range reports {
		y.TotalColones = y.TotalColones.Add(r.TotalColones)
		y.TotalDollars = y.TotalDollars.Add(r.TotalDollars)
	}
	return y
}
