// Package core provides money parsing and handling utilities.
//
// Amounts are kept as decimals. A stored amount is optional: an empty cell
// means the amount was not given, which is different from zero. Reports use
// a separate zero-defaulted value that never flows back into storage.
package core

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// maxSafeAmount keeps amounts representable as int64 minor units (cents).
const maxSafeAmount = (1<<63 - 1) / 100

// Amount is an optional, non-negative decimal as stored in a ledger file.
// The zero value is the absent amount.
type Amount struct {
	value decimal.Decimal
	text  string
}

// ParseAmount parses a user supplied amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. An empty
// or blank string is the absent amount and is valid. Signs, exponents,
// thousands separators and any other character are rejected, as are values
// too large to count in cents.
//
// Examples:
//
//	ParseAmount("1500.50") -> 1500.50
//	ParseAmount("12,5")    -> 12.5
//	ParseAmount("")        -> absent
//	ParseAmount("abc")     -> ErrInvalidAmount
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, nil
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Amount{}, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return Amount{}, ErrInvalidAmount
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return Amount{}, ErrInvalidAmount
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	text := intPart
	if fracPart != "" {
		text += "." + fracPart
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	// Prevent overflow when converting to cents
	if d.GreaterThanOrEqual(decimal.NewFromInt(maxSafeAmount)) {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d, text: text}, nil
}

// NewAmount returns a present amount holding d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, text: d.String()}
}

// IsSet reports whether the amount was given.
func (a Amount) IsSet() bool {
	return a.text != ""
}

// Decimal returns the amount value, zero when absent.
func (a Amount) Decimal() decimal.Decimal {
	if !a.IsSet() {
		return decimal.Zero
	}
	return a.value
}

// String returns the stored representation: the normalized literal, or ""
// when absent.
func (a Amount) String() string {
	return a.text
}

// ZeroDefault converts a stored cell into a number for aggregation.
// Empty or non-numeric cells count as zero.
func ZeroDefault(cell string) decimal.Decimal {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", ".")
	if cell == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ColonesValue is the zero-defaulted colones amount of the record.
func (r Record) ColonesValue() decimal.Decimal {
	return ZeroDefault(r.Colones)
}

// DollarsValue is the zero-defaulted dollars amount of the record.
func (r Record) DollarsValue() decimal.Decimal {
	return ZeroDefault(r.Dollars)
}
