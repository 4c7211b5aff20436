package render

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	Colones = money.CRC
	Dollars = money.USD
)

// FormatMoney displays an amount with the symbol and separators of its
// currency, rounded to the currency's minor unit. Amounts whose minor units
// do not fit in an int64 are shown as plain decimals followed by the code.
func FormatMoney(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return d.StringFixed(2) + " " + code
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return d.StringFixed(int32(cur.Fraction)) + " " + code
	}
	return money.New(minor.IntPart(), code).Display()
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
