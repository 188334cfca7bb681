package calculation

import "github.com/shopspring/decimal"

// ThresholdComparison is the capitalised value of the benefits set against the projected SFT.
type ThresholdComparison struct {
	Valuation     decimal.Decimal
	Threshold     decimal.Decimal
	OverThreshold bool
}

// CapitalisedValue values benefits for threshold purposes: pension x factor + lump sum.
func CapitalisedValue(annualPension, lumpSum, valuationFactor decimal.Decimal) decimal.Decimal {
	return annualPension.Mul(valuationFactor).Add(lumpSum)
}

// CompareToThreshold grows the current SFT to the retirement year and tests the valuation
// against it. A valuation equal to the threshold is within it.
func CompareToThreshold(annualPension, lumpSum, valuationFactor, sftNow, sftGrowthPct decimal.Decimal, years int) ThresholdComparison {
	valuation := CapitalisedValue(annualPension, lumpSum, valuationFactor)
	threshold := ProjectGrowth(sftNow, sftGrowthPct, years)
	return ThresholdComparison{
		Valuation:     valuation,
		Threshold:     threshold,
		OverThreshold: valuation.GreaterThan(threshold),
	}
}
