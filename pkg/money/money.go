// Package money converts between major units (dollars) and the minor units
// (cents) stored in the database, and renders amounts for display.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// MaxMinorUnits is the largest amount, in cents, the invoices table can hold.
const MaxMinorUnits = math.MaxInt32

// FitsMinorUnits reports whether amount, in dollars, rounds to at most MaxMinorUnits cents.
func FitsMinorUnits(amount decimal.Decimal) bool {
	return amount.Shift(2).Round(0).LessThanOrEqual(decimal.NewFromInt(MaxMinorUnits))
}

// ToMinorUnits converts an amount in dollars to cents, rounding half away from
// zero. Callers check FitsMinorUnits first.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// ToMajorUnits converts cents to dollars.
func ToMajorUnits(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// FormatCurrency renders cents as a US dollar string, e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", cents/100), cents%100)
}
