package domain

import "fmt"

// GenerateAssumptions creates the assumptions snapshot from the actual input values
func (pi ProjectionInputs) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Current year: %d", pi.CurrentYear),
		fmt.Sprintf("Current age: %d", pi.CurrentAge),
		fmt.Sprintf("Current salary: %s", pi.CurrentSalary.StringFixed(0)),
		fmt.Sprintf("Salary growth: %s%% annually", pi.SalaryGrowthPct.StringFixed(1)),
		fmt.Sprintf("Current service: %s years", pi.CurrentService.StringFixed(2)),
		fmt.Sprintf("Service accrual: %s years per year", pi.ServiceAccrualPerYear.StringFixed(2)),
		fmt.Sprintf("Service cap: %s years", pi.MaxServiceCap.StringFixed(2)),
		fmt.Sprintf("Capitalisation factor: %s", pi.ValuationFactor.StringFixed(1)),
		fmt.Sprintf("Current SFT: %s", pi.SFTNow.StringFixed(0)),
		fmt.Sprintf("SFT growth: %s%% annually", pi.SFTGrowthPct.StringFixed(1)),
	}
}
