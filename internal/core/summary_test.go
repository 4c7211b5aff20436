package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarize(t *testing.T) {
	m := Month{Year: 2024, Month: 3}
	records := []Record{
		{Date: "2024-03-01", Category: "Food", Colones: "1000", Dollars: "0"},
		{Date: "2024-03-02", Category: "Food", Colones: "500", Dollars: "0"},
		{Date: "2024-03-03", Category: "Transport", Colones: "0", Dollars: "20"},
	}

	r := Summarize(m, records)

	if r.Entries != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Entries)
	}
	if !r.TotalColones.Equal(dec("1500")) {
		t.Fatalf("total colones = %s, want 1500", r.TotalColones)
	}
	if !r.TotalDollars.Equal(dec("20")) {
		t.Fatalf("total dollars = %s, want 20", r.TotalDollars)
	}

	colones := r.ColonesByCategory()
	dollars := r.DollarsByCategory()
	checks := []struct {
		got  decimal.Decimal
		want string
		name string
	}{
		{colones["Food"], "1500", "colones Food"},
		{colones["Transport"], "0", "colones Transport"},
		{dollars["Food"], "0", "dollars Food"},
		{dollars["Transport"], "20", "dollars Transport"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Fatalf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if len(r.ByCategory) != 2 || r.ByCategory[0].Name != "Food" {
		t.Fatalf("unexpected category order %+v", r.ByCategory)
	}
}

func TestSummarizeCoercesMissingAndBadAmounts(t *testing.T) {
	records := []Record{
		{Category: "Food", Colones: "", Dollars: "5.25"},
		{Category: "Food", Colones: "n/a", Dollars: ""},
		{Category: "food", Colones: "10", Dollars: ""},
	}
	r := Summarize(Month{Year: 2024, Month: 1}, records)

	if !r.TotalColones.Equal(dec("10")) || !r.TotalDollars.Equal(dec("5.25")) {
		t.Fatalf("unexpected totals %s / %s", r.TotalColones, r.TotalDollars)
	}
	if len(r.ByCategory) != 2 {
		t.Fatalf("categories group by exact string, got %+v", r.ByCategory)
	}
	if records[0].Colones != "" {
		t.Fatalf("records must not be modified")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize(Month{Year: 2024, Month: 1}, nil)
	if r.Entries != 0 || !r.TotalColones.IsZero() || len(r.ByCategory) != 0 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestNewYearOverview(t *testing.T) {
	reports := []Report{
		{Month: Month{2024, 1}, TotalColones: dec("100"), TotalDollars: dec("1")},
		{Month: Month{2024, 5}, TotalColones: dec("250.5"), TotalDollars: dec("0")},
	}
	y := NewYearOverview(2024, reports)
	if !y.TotalColones.Equal(dec("350.5")) || !y.TotalDollars.Equal(dec("1")) {
		t.Fatalf("unexpected totals %s / %s", y.TotalColones, y.TotalDollars)
	}
	if len(y.Months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(y.Months))
	}
}
