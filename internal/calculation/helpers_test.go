package calculation

import (
	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/shopspring/decimal"
)

// exampleInputs mirrors the worked example: age 55 in 2026, 100k salary at 2%, 20 years served.
func exampleInputs() domain.ProjectionInputs {
	return domain.ProjectionInputs{
		CurrentYear:           2026,
		CurrentAge:            55,
		CurrentSalary:         decimal.NewFromInt(100000),
		SalaryGrowthPct:       decimal.NewFromFloat(2.0),
		CurrentService:        decimal.NewFromInt(20),
		ServiceAccrualPerYear: decimal.NewFromFloat(1.0),
		MaxServiceCap:         decimal.NewFromInt(40),
		ValuationFactor:       decimal.NewFromInt(20),
		SFTNow:                decimal.NewFromInt(2000000),
		SFTGrowthPct:          decimal.Zero,
	}
}

func warningCodes(warnings []domain.Warning) []domain.WarningCode {
	codes := make([]domain.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}
