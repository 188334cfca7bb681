package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionmodeler/pension-modeler/internal/calculation"
	"github.com/pensionmodeler/pension-modeler/internal/config"
	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

const fixture = "../testdata/example_config.yaml"

func loadFixtureReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(fixture)
	require.NoError(t, err)
	report, err := calculation.NewCalculationEngine().Evaluate(cfg)
	require.NoError(t, err)
	return report
}

func warningCodes(warnings []domain.Warning) []domain.WarningCode {
	codes := make([]domain.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestEndToEndCalculation(t *testing.T) {
	report := loadFixtureReport(t)

	assert.Equal(t, domain.TargetByYear, report.Target.Mode)
	assert.Equal(t, 2041, report.Target.RetirementYear)
	assert.Equal(t, 65, report.Target.RetirementAge)
	assert.Equal(t, 15, report.Target.YearsToRetirement)

	assert.Equal(t, "233695", report.Result.FinalSalary.StringFixed(0))
	assert.Equal(t, "40", report.Result.ServiceAtRetirement.String())
	assert.Equal(t, "116848", report.Result.AnnualPension.StringFixed(0))
	assert.Equal(t, "311593", report.Result.LumpSum.StringFixed(0))
	assert.Equal(t, "2648545", report.Result.Valuation.StringFixed(0))
	assert.True(t, report.Result.OverThreshold)

	assert.Contains(t, warningCodes(report.Warnings), domain.WarnServiceAtCap)
	assert.NotContains(t, warningCodes(report.Warnings), domain.WarnRetireThisYear)
	assert.NotContains(t, warningCodes(report.Warnings), domain.WarnAgeBeforeCurrent)
}

func TestScenarioSweep(t *testing.T) {
	report := loadFixtureReport(t)
	require.Len(t, report.Scenarios, 5)

	ages := make([]int, 0, len(report.Scenarios))
	for _, sc := range report.Scenarios {
		ages = append(ages, sc.RetirementAge)
		assert.Equal(t, 2026+sc.YearsToRetirement, sc.RetirementYear)
		assert.True(t, sc.ServiceAtRetirement.LessThanOrEqual(report.Inputs.MaxServiceCap))
	}
	assert.Equal(t, []int{60, 60, 64, 65, 66}, ages)

	// Age 60 sits just under the threshold; later ages are over it.
	assert.Equal(t, "1999076", report.Scenarios[0].Valuation.StringFixed(0))
	assert.False(t, report.Scenarios[0].OverThreshold)
	assert.True(t, report.Scenarios[2].OverThreshold)
	assert.Equal(t, report.Result, report.Scenarios[3].ProjectionResult)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(fixture)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Target.Year = cfg.Inputs.CurrentYear - 1
	assert.ErrorIs(t, parser.ValidateConfiguration(cfg), config.ErrInvalidConfiguration)
}
