package tui

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// parseDecimal parses a user-typed number.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

// formatAmount renders a KRW amount with thousands separators, the way
// the mobile app formats every figure.
func formatAmount(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// formatWon renders an amount with the currency suffix.
func formatWon(d decimal.Decimal) string {
	return formatAmount(d) + "원"
}

// formatShortDate renders an ISO date as "M/D". Malformed input is
// returned untouched.
func formatShortDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("1/2")
}

// formatDotDate renders an ISO date as "2006.01.02".
func formatDotDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("2006.01.02")
}
