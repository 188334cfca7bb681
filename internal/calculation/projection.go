package calculation

import "github.com/pensionmodeler/pension-modeler/internal/domain"

// Project runs the full pipeline for inputs.YearsToRetirement: salary and service
// projection, benefit derivation, then the threshold comparison.
func Project(inputs domain.ProjectionInputs) domain.ProjectionResult {
	years := inputs.YearsToRetirement
	if years < 0 {
		years = 0
	}

	finalSalary := ProjectGrowth(inputs.CurrentSalary, inputs.SalaryGrowthPct, years)
	service := ProjectService(inputs.CurrentService, inputs.ServiceAccrualPerYear, years, inputs.MaxServiceCap)
	pension, lumpSum := ClassicDBPension(finalSalary, service)
	cmp := CompareToThreshold(pension, lumpSum, inputs.ValuationFactor, inputs.SFTNow, inputs.SFTGrowthPct, years)

	return domain.ProjectionResult{
		FinalSalary:         finalSalary,
		ServiceAtRetirement: service,
		AnnualPension:       pension,
		LumpSum:             lumpSum,
		Valuation:           cmp.Valuation,
		Threshold:           cmp.Threshold,
		OverThreshold:       cmp.OverThreshold,
	}
}
