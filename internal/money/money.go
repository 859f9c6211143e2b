// Package money formats VND amounts for display. Prices are carried
// everywhere as int64 base units; only the presentation layer formats them.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UnitScale converts the coarse price-slider units (millions of VND) used by
// the catalog filter into base currency units.
const UnitScale int64 = 1_000_000

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount with vi-VN digit grouping, e.g. 15000000 ->
// "15.000.000 VND".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d", amount) + " VND"
}

// FromMillions converts a slider value in millions of VND to base units.
func FromMillions(units int64) int64 {
	return units * UnitScale
}
