package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/pensionmodeler/pension-modeler/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration wraps every validation failure so callers can tell bad input
// apart from I/O problems.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Input ranges accepted by the calculator.
const (
	MinCurrentAge         = 20
	MaxCurrentAge         = 75
	MinRetirementAge      = 55
	MaxRetirementAge      = 75
	MaxYearsAheadOfTarget = 40
)

// decimalRange bounds a decimal input inclusively.
type decimalRange struct {
	name string
	min  decimal.Decimal
	max  decimal.Decimal
}

var (
	salaryRange       = decimalRange{"current salary", decimal.Zero, decimal.NewFromInt(5_000_000)}
	salaryGrowthRange = decimalRange{"salary growth %", decimal.Zero, decimal.NewFromInt(10)}
	serviceRange      = decimalRange{"current service", decimal.Zero, decimal.NewFromInt(45)}
	accrualRange      = decimalRange{"service accrual per year", decimal.Zero, decimal.NewFromInt(2)}
	capRange          = decimalRange{"max service cap", decimal.NewFromInt(20), decimal.NewFromInt(50)}
	factorRange       = decimalRange{"valuation factor", decimal.NewFromInt(10), decimal.NewFromInt(50)}
	sftRange          = decimalRange{"current SFT", decimal.NewFromInt(500_000), decimal.NewFromInt(10_000_000)}
	sftGrowthRange    = decimalRange{"SFT growth %", decimal.Zero, decimal.NewFromInt(10)}
)

func (r decimalRange) check(v decimal.Decimal) error {
	if v.LessThan(r.min) || v.GreaterThan(r.max) {
		return fmt.Errorf("%s must be between %s and %s, got %s", r.name, r.min, r.max, v)
	}
	return nil
}

// InputParser handles parsing of input configuration files
type InputParser struct {
	now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{now: time.Now}
}

// WithClock overrides the clock used to default the current year.
func (ip *InputParser) WithClock(now func() time.Time) *InputParser {
	ip.now = now
	return ip
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates a configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills fields the user may omit: the current year, the target mode and the
// scenario sweep.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Inputs.CurrentYear == 0 {
		config.Inputs.CurrentYear = dateutil.CurrentYear(ip.now())
	}
	config.Target.Mode = config.Target.Mode.Normalize()
	if config.ScenarioAges == nil {
		config.ScenarioAges = append([]int(nil), domain.DefaultScenarioAges...)
	}
	config.Inputs.YearsToRetirement = 0
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateInputs(&config.Inputs); err != nil {
		return fmt.Errorf("%w: inputs: %w", ErrInvalidConfiguration, err)
	}
	if err := ip.validateTarget(&config.Inputs, &config.Target); err != nil {
		return fmt.Errorf("%w: target: %w", ErrInvalidConfiguration, err)
	}
	for i, age := range config.ScenarioAges {
		if age < MinRetirementAge || age > MaxRetirementAge {
			return fmt.Errorf("%w: scenario_ages[%d]: retirement age must be between %d and %d, got %d",
				ErrInvalidConfiguration, i, MinRetirementAge, MaxRetirementAge, age)
		}
	}
	return nil
}

// validateInputs validates the career parameters
func (ip *InputParser) validateInputs(inputs *domain.ProjectionInputs) error {
	if inputs.CurrentYear <= 0 {
		return fmt.Errorf("current year is required")
	}
	if inputs.CurrentAge < MinCurrentAge || inputs.CurrentAge > MaxCurrentAge {
		return fmt.Errorf("current age must be between %d and %d, got %d", MinCurrentAge, MaxCurrentAge, inputs.CurrentAge)
	}

	checks := []struct {
		r decimalRange
		v decimal.Decimal
	}{
		{salaryRange, inputs.CurrentSalary},
		{salaryGrowthRange, inputs.SalaryGrowthPct},
		{serviceRange, inputs.CurrentService},
		{accrualRange, inputs.ServiceAccrualPerYear},
		{capRange, inputs.MaxServiceCap},
		{factorRange, inputs.ValuationFactor},
		{sftRange, inputs.SFTNow},
		{sftGrowthRange, inputs.SFTGrowthPct},
	}
	for _, c := range checks {
		if err := c.r.check(c.v); err != nil {
			return err
		}
	}
	return nil
}

// validateTarget validates the retirement target against the inputs it will be resolved with
func (ip *InputParser) validateTarget(inputs *domain.ProjectionInputs, target *domain.RetirementTarget) error {
	switch target.Mode.Normalize() {
	case domain.TargetByAge:
		if target.Age < MinRetirementAge || target.Age > MaxRetirementAge {
			return fmt.Errorf("retirement age must be between %d and %d, got %d", MinRetirementAge, MaxRetirementAge, target.Age)
		}
	case domain.TargetByYear:
		latest := inputs.CurrentYear + MaxYearsAheadOfTarget
		if target.Year < inputs.CurrentYear || target.Year > latest {
			return fmt.Errorf("retirement year must be between %d and %d, got %d", inputs.CurrentYear, latest, target.Year)
		}
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", domain.TargetByAge, domain.TargetByYear, target.Mode)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration using the calculator's defaults
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Inputs: domain.ProjectionInputs{
			CurrentYear:           dateutil.CurrentYear(ip.now()),
			CurrentAge:            55,
			CurrentSalary:         decimal.NewFromInt(100000),
			SalaryGrowthPct:       decimal.NewFromFloat(2.0),
			CurrentService:        decimal.NewFromInt(20),
			ServiceAccrualPerYear: decimal.NewFromFloat(1.0),
			MaxServiceCap:         decimal.NewFromInt(40),
			ValuationFactor:       decimal.NewFromInt(20),
			SFTNow:                decimal.NewFromInt(2000000),
			SFTGrowthPct:          decimal.Zero,
		},
		Target: domain.RetirementTarget{
			Mode: domain.TargetByAge,
			Age:  65,
		},
		ScenarioAges: append([]int(nil), domain.DefaultScenarioAges...),
	}
}
