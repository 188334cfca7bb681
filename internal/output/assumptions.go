package output

import (
	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// DefaultAssumptions lists the fixed modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Pension accrual: 1/80th of final salary per year of reckonable service",
	"Lump sum: final salary x service / 30 (approximately 3/80ths)",
	"SFT valuation: annual pension x capitalisation factor + lump sum",
	"Salary and SFT compound once per whole year",
}

// AssumptionLines returns the snapshot of inputs followed by the fixed modeling rules.
func AssumptionLines(report *domain.Report) []string {
	lines := report.Assumptions
	if len(lines) == 0 {
		lines = report.Inputs.GenerateAssumptions()
	}
	out := make([]string, 0, len(lines)+len(DefaultAssumptions))
	out = append(out, lines...)
	return append(out, DefaultAssumptions...)
}
