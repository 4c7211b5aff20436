package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		text string
		ok   bool
	}{
		{"1", "1", true},
		{"1500.50", "1500.50", true},
		{"1,23", "1.23", true},
		{" 2.50 ", "2.50", true},
		{".5", "0.5", true},
		{"5.", "5", true},
		{"0", "0", true},
		{"", "", true},
		{"   ", "", true},
		{"-1", "", false},
		{"+1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"1e3", "", false},
		{"1 000", "", false},
		{".", "", false},
		{"92233720368547757.99", "92233720368547757.99", true},
		{"92233720368547758", "", false},
		{"100000000000000000000", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.String() != tc.text {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.text, got.String(), err)
			}
		} else if err != ErrInvalidAmount {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestAmountAbsentIsNotZero(t *testing.T) {
	absent, err := ParseAmount("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.IsSet() {
		t.Fatalf("empty amount should be absent")
	}
	if absent.String() != "" {
		t.Fatalf("absent amount should store empty, got %q", absent.String())
	}
	if !absent.Decimal().IsZero() {
		t.Fatalf("absent amount should read as zero")
	}

	zero, _ := ParseAmount("0")
	if !zero.IsSet() || zero.String() != "0" {
		t.Fatalf("explicit zero should be present, got %q", zero.String())
	}
}

func TestZeroDefault(t *testing.T) {
	cases := map[string]string{
		"":        "0",
		"abc":     "0",
		"12.5":    "12.5",
		"12,5":    "12.5",
		" 1000 ":  "1000",
		"1500.50": "1500.5",
	}
	for in, want := range cases {
		got := ZeroDefault(in)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ZeroDefault(%q) = %s, want %s", in, got, want)
		}
	}
}
