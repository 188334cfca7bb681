package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes formatted amounts.
const CurrencySymbol = "€"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Whole rounds the amount to whole currency units, half to even (2.5 -> 2, 3.5 -> 4).
// Only display and export paths round; calculations keep full precision.
func (m Money) Whole() Money {
	return Money{m.Decimal.RoundBank(0)}
}

// String returns the amount in whole units without grouping, as used in exports
func (m Money) String() string {
	return m.Whole().Decimal.StringFixed(0)
}

// Format renders whole units with thousands separators, e.g. €1,036,145
func (m Money) Format() string {
	s := m.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + CurrencySymbol + groupThousands(s)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
