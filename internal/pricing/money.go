package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as "$1,234.57", rounding half away from zero to cents.
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	s := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(s) + len(whole)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(cents)

	return b.String()
}

// compactUSD keeps only significant digits: $20, $0.01.
func compactUSD(amount decimal.Decimal) string {
	return "$" + amount.String()
}
