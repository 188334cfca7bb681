package calculation

import (
	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/shopspring/decimal"
)

// serviceCapTolerance is the distance from the cap at which service counts as capped.
var serviceCapTolerance = decimal.New(1, -9)

// Checks returns the advisory warnings for an evaluated target. None of them stop a projection.
func Checks(target domain.ResolvedTarget, inputs domain.ProjectionInputs, result domain.ProjectionResult) []domain.Warning {
	warnings := []domain.Warning{}
	if target.YearsToRetirement == 0 {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarnRetireThisYear,
			Message: "Retirement is this year (years to retirement = 0).",
		})
	}
	if ServiceAtCap(result.ServiceAtRetirement, inputs.MaxServiceCap) {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarnServiceAtCap,
			Message: "Service hit the cap. Consider raising the cap or revising accrual.",
		})
	}
	if target.RetirementAge < inputs.CurrentAge {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarnAgeBeforeCurrent,
			Message: "Retirement age is less than current age.",
		})
	}
	return warnings
}

// ServiceAtCap reports whether service sits on the cap within serviceCapTolerance.
func ServiceAtCap(service, maxService decimal.Decimal) bool {
	return service.Sub(maxService).Abs().LessThan(serviceCapTolerance)
}
