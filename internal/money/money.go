// Package money provides rounding and display formatting for monetary
// amounts. Amounts travel through the API as plain JSON numbers; this
// package only concerns itself with how totals are presented.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round rounds an amount to two decimal places using half-up rounding.
func Round(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// FormatTotal renders a total the way the dashboard shows it: dollar sign,
// thousands separators, always two decimal places ("$65,179.00"). A negative
// total reads "-$1,500.00".
func FormatTotal(amount float64) string {
	s := group(decimal.NewFromFloat(amount).Round(2).StringFixed(2))
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// Format renders an amount for card rows: like FormatTotal, but a whole
// amount drops the trailing ".00" ("$1,500" rather than "$1,500.00").
func Format(amount float64) string {
	s := FormatTotal(amount)
	return strings.TrimSuffix(s, ".00")
}

// group inserts comma separators into the integer part of a fixed-point
// decimal string. The input is the output of StringFixed, so it contains at
// most one leading minus sign and exactly one decimal point.
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
