package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestProject_WorkedExample follows the documented example end to end.
func TestProject_WorkedExample(t *testing.T) {
	result := Project(exampleInputs().WithYears(10))

	assert.True(t, result.FinalSalary.Equal(decimal.RequireFromString("121899.441999475713024")), "final salary %s", result.FinalSalary)
	assert.True(t, result.ServiceAtRetirement.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "45712", result.AnnualPension.StringFixed(0))
	assert.Equal(t, "121899", result.LumpSum.StringFixed(0))
	assert.Equal(t, "1036145", result.Valuation.StringFixed(0))
	assert.True(t, result.Threshold.Equal(decimal.NewFromInt(2000000)))
	assert.False(t, result.OverThreshold)
}

func TestProject_ZeroYears(t *testing.T) {
	inputs := exampleInputs()
	result := Project(inputs)

	assert.True(t, result.FinalSalary.Equal(inputs.CurrentSalary))
	assert.True(t, result.ServiceAtRetirement.Equal(inputs.CurrentService))
	assert.True(t, result.Threshold.Equal(inputs.SFTNow))
}

func TestProject_NegativeYearsClamp(t *testing.T) {
	inputs := exampleInputs()
	inputs.YearsToRetirement = -5
	assert.Equal(t, Project(inputs.WithYears(0)), Project(inputs))
}

func TestProject_OverThreshold(t *testing.T) {
	inputs := exampleInputs()
	inputs.CurrentSalary = decimal.NewFromInt(250000)
	inputs.SFTGrowthPct = decimal.NewFromFloat(1.0)

	result := Project(inputs.WithYears(10))
	assert.True(t, result.OverThreshold, "valuation %s threshold %s", result.Valuation, result.Threshold)
	assert.True(t, result.Threshold.GreaterThan(inputs.SFTNow))
}

func TestProject_NonNegativeOutputs(t *testing.T) {
	inputs := exampleInputs()
	for years := 0; years <= 20; years++ {
		result := Project(inputs.WithYears(years))
		for _, v := range []decimal.Decimal{result.FinalSalary, result.AnnualPension, result.LumpSum, result.Valuation, result.Threshold} {
			assert.False(t, v.IsNegative(), "year %d produced negative value %s", years, v)
		}
	}
}
