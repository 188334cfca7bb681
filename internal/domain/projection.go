package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionInputs holds the validated career parameters for a single evaluation.
// Percentages are expressed in percentage units (2.0 means 2% per year).
type ProjectionInputs struct {
	CurrentYear           int             `json:"current_year" yaml:"current_year"`
	CurrentAge            int             `json:"current_age" yaml:"current_age"`
	CurrentSalary         decimal.Decimal `json:"current_salary" yaml:"current_salary"`
	SalaryGrowthPct       decimal.Decimal `json:"salary_growth_pct" yaml:"salary_growth_pct"`
	CurrentService        decimal.Decimal `json:"current_service" yaml:"current_service"`
	ServiceAccrualPerYear decimal.Decimal `json:"service_accrual_per_year" yaml:"service_accrual_per_year"`
	MaxServiceCap         decimal.Decimal `json:"max_service_cap" yaml:"max_service_cap"`
	ValuationFactor       decimal.Decimal `json:"valuation_factor" yaml:"valuation_factor"`
	SFTNow                decimal.Decimal `json:"sft_now" yaml:"sft_now"`
	SFTGrowthPct          decimal.Decimal `json:"sft_growth_pct" yaml:"sft_growth_pct"`

	// YearsToRetirement is derived from the retirement target and never read from input files.
	YearsToRetirement int `json:"years_to_retirement" yaml:"-"`
}

// WithYears returns a copy of the inputs targeting the given number of years.
func (pi ProjectionInputs) WithYears(years int) ProjectionInputs {
	if years < 0 {
		years = 0
	}
	pi.YearsToRetirement = years
	return pi
}

// ProjectionResult is the outcome of one pass through the projection pipeline.
type ProjectionResult struct {
	FinalSalary         decimal.Decimal `json:"final_salary"`
	ServiceAtRetirement decimal.Decimal `json:"service_at_retirement"`
	AnnualPension       decimal.Decimal `json:"annual_pension"`
	LumpSum             decimal.Decimal `json:"lump_sum"`
	Valuation           decimal.Decimal `json:"valuation"`
	Threshold           decimal.Decimal `json:"threshold"`
	OverThreshold       bool            `json:"over_threshold"`
}

// ScenarioRow is one line of the retirement-age comparison table.
type ScenarioRow struct {
	RetirementAge     int `json:"retirement_age"`
	RetirementYear    int `json:"retirement_year"`
	YearsToRetirement int `json:"years_to_retirement"`
	ProjectionResult
}

// Report bundles everything a presentation layer needs for one evaluation.
type Report struct {
	Inputs      ProjectionInputs `json:"inputs"`
	Target      ResolvedTarget   `json:"target"`
	Result      ProjectionResult `json:"result"`
	Warnings    []Warning        `json:"warnings"`
	Scenarios   []ScenarioRow    `json:"scenarios"`
	Assumptions []string         `json:"assumptions,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}
