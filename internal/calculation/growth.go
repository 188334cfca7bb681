package calculation

import "github.com/shopspring/decimal"

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// GrowthFactor converts a percentage-per-year rate into a one-year multiplier (2.0 -> 1.02).
func GrowthFactor(annualGrowthPct decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(annualGrowthPct.Div(decimalHundred))
}

// ProjectGrowth compounds base by annualGrowthPct once per whole year.
// The same projection serves salaries and thresholds. Negative years are treated as zero;
// negative rates model decline.
func ProjectGrowth(base, annualGrowthPct decimal.Decimal, years int) decimal.Decimal {
	value := base
	factor := GrowthFactor(annualGrowthPct)
	for y := 0; y < years; y++ {
		value = value.Mul(factor)
	}
	return value
}
