package domain

import "strings"

// TargetMode selects how the retirement date is specified.
type TargetMode string

const (
	TargetByAge  TargetMode = "age"
	TargetByYear TargetMode = "year"
)

// Normalize lowers and trims the mode, defaulting empty values to TargetByAge.
func (m TargetMode) Normalize() TargetMode {
	n := TargetMode(strings.ToLower(strings.TrimSpace(string(m))))
	if n == "" {
		return TargetByAge
	}
	return n
}

// RetirementTarget is the user's desired retirement point, by age or by calendar year.
// Only the field matching Mode is consulted.
type RetirementTarget struct {
	Mode TargetMode `json:"mode" yaml:"mode"`
	Age  int        `json:"age,omitempty" yaml:"age,omitempty"`
	Year int        `json:"year,omitempty" yaml:"year,omitempty"`
}

// ResolvedTarget is a RetirementTarget normalised to both an age and a year.
type ResolvedTarget struct {
	Mode              TargetMode `json:"mode"`
	RetirementAge     int        `json:"retirement_age"`
	RetirementYear    int        `json:"retirement_year"`
	YearsToRetirement int        `json:"years_to_retirement"`
}

// DefaultScenarioAges is the retirement-age sweep used when none is configured.
var DefaultScenarioAges = []int{60, 62, 65, 66}

// Configuration is the document accepted by the CLI and the HTTP service.
type Configuration struct {
	Inputs       ProjectionInputs `json:"inputs" yaml:"inputs"`
	Target       RetirementTarget `json:"target" yaml:"target"`
	ScenarioAges []int            `json:"scenario_ages" yaml:"scenario_ages"`
}
