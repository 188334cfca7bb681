package calculation

import (
	"fmt"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// CalculationEngine orchestrates a single evaluation: target resolution, the current
// projection, advisory checks and the retirement-age sweep. It holds no per-request state
// and is safe for concurrent use once configured.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Evaluate runs the complete projection for a validated configuration.
func (ce *CalculationEngine) Evaluate(config *domain.Configuration) (*domain.Report, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	inputs := config.Inputs

	target, err := ResolveTarget(inputs, config.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve retirement target: %w", err)
	}
	inputs = inputs.WithYears(target.YearsToRetirement)
	ce.Logger.Debugf("Retirement target: mode=%s age=%d year=%d years=%d",
		target.Mode, target.RetirementAge, target.RetirementYear, target.YearsToRetirement)

	result := Project(inputs)
	ce.Logger.Debugf("  Final salary: %s", result.FinalSalary.StringFixed(2))
	ce.Logger.Debugf("  Service at retirement: %s", result.ServiceAtRetirement.StringFixed(2))
	ce.Logger.Debugf("  Annual pension: %s, lump sum: %s", result.AnnualPension.StringFixed(2), result.LumpSum.StringFixed(2))
	ce.Logger.Debugf("  SFT valuation: %s vs threshold %s (over=%t)",
		result.Valuation.StringFixed(2), result.Threshold.StringFixed(2), result.OverThreshold)

	warnings := Checks(target, inputs, result)
	for _, w := range warnings {
		ce.Logger.Warnf("%s: %s", w.Code, w.Message)
	}

	ages := config.ScenarioAges
	if ages == nil {
		ages = domain.DefaultScenarioAges
	}
	scenarios := Sweep(inputs, ages)
	ce.Logger.Infof("Evaluated retirement at %d (%d) with %d scenario rows", target.RetirementAge, target.RetirementYear, len(scenarios))

	return &domain.Report{
		Inputs:      inputs,
		Target:      target,
		Result:      result,
		Warnings:    warnings,
		Scenarios:   scenarios,
		Assumptions: inputs.GenerateAssumptions(),
		GeneratedAt: nowFunc(),
	}, nil
}
