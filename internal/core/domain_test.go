package core

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-15", true},
		{"2024-02-29", true},
		{" 2025-12-31 ", true},
		{"2023-02-29", false},
		{"2024-3-15", false},
		{"15/03/2024", false},
		{"2024-13-01", false},
		{"", false},
		{"0001-01-01", false},
		{"0000-06-15", false},
		{"0001-01-02", true},
		{"9999-12-31", true},
	}
	for _, tc := range cases {
		_, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q expected ok, got %v", tc.in, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestDateValidate(t *testing.T) {
	if err := NewDate(2025, 1, 1).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Date{Time: time.Time{}}).Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}
	if err := NewDate(0, 6, 15).Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for year 0, got %v", err)
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	m, err := ParseMonth("", now)
	if err != nil || m != (Month{Year: 2026, Month: 10}) {
		t.Fatalf("empty selector should default to now, got %v (err=%v)", m, err)
	}
	m, err = ParseMonth("2024-03", now)
	if err != nil || m != (Month{Year: 2024, Month: 3}) {
		t.Fatalf("expected 2024-03, got %v (err=%v)", m, err)
	}
	for _, bad := range []string{"2024-3", "2024-13", "march", "2024-03-01", "0000-05"} {
		if _, err := ParseMonth(bad, now); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("%q expected ErrInvalidMonth, got %v", bad, err)
		}
	}
}

func TestMonthValidate(t *testing.T) {
	if _, err := NewMonth(2024, 12); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	for _, m := range []Month{{2024, 0}, {2024, 13}, {0, 1}, {10000, 1}} {
		if err := m.Validate(); err == nil {
			t.Fatalf("%v expected error", m)
		}
	}
	if got := (Month{Year: 2024, Month: 3}).String(); got != "2024-03" {
		t.Fatalf("unexpected month string %q", got)
	}
}

func TestEntryInputParse(t *testing.T) {
	good := EntryInput{
		Date:        "2024-03-15",
		Category:    " Food ",
		Colones:     "1500.50",
		Description: "Lunch",
	}
	e, err := good.Parse()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	want := Record{Date: "2024-03-15", Category: "Food", Colones: "1500.50", Dollars: "", Description: "Lunch"}
	if got := e.Record(); got != want {
		t.Fatalf("record mismatch: got %+v, want %+v", got, want)
	}
	if e.Date.Period() != (Month{Year: 2024, Month: 3}) {
		t.Fatalf("unexpected period %v", e.Date.Period())
	}
}

func TestEntryInputParseReportsEveryBadField(t *testing.T) {
	in := EntryInput{Date: "yesterday", Category: "Food", Colones: "abc", Dollars: "-3"}
	_, err := in.Parse()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T %v", err, err)
	}
	want := []string{FieldDate, FieldColones, FieldDollars}
	if got := verr.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	if !errors.Is(err, ErrInvalidDate) || !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected both sentinels to match, got %v", err)
	}
}

func TestEntryInputParseAmountOnly(t *testing.T) {
	_, err := EntryInput{Date: "2024-03-15", Colones: "abc"}.Parse()
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if errors.Is(err, ErrInvalidDate) {
		t.Fatalf("date was valid, should not be reported")
	}
}

func TestRecordFromCells(t *testing.T) {
	r := RecordFromCells([]string{"2024-03-15", "Food", "10"})
	if r.Dollars != "" || r.Description != "" || r.Colones != "10" {
		t.Fatalf("unexpected record %+v", r)
	}
	if got := r.Cells(); len(got) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(got))
	}
}

func TestEntryInputParseNormalizesLineBreaks(t *testing.T) {
	e, err := EntryInput{Date: "2024-03-15", Category: "Food\r\nout", Description: "line one\r\nline two\r\n"}.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if e.Description != "line one\nline two" || e.Category != "Food\nout" {
		t.Fatalf("unexpected text %q / %q", e.Category, e.Description)
	}
}
