package output

import (
	"fmt"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// Status messages shown beneath the benefit projection.
const (
	OverThresholdMessage   = "Over the SFT threshold based on current assumptions."
	WithinThresholdMessage = "Within SFT threshold under current assumptions."
)

// ThresholdStatus is the user-facing reading of a threshold comparison.
type ThresholdStatus struct {
	Over          bool
	Message       string
	ThresholdLine string
}

// AnalyzeThreshold turns the numeric comparison of a report into display text.
func AnalyzeThreshold(report *domain.Report) ThresholdStatus {
	status := ThresholdStatus{
		Over:          report.Result.OverThreshold,
		Message:       WithinThresholdMessage,
		ThresholdLine: fmt.Sprintf("Projected SFT threshold in %d: %s", report.Target.RetirementYear, FormatCurrency(report.Result.Threshold)),
	}
	if status.Over {
		status.Message = OverThresholdMessage
	}
	return status
}

// Headroom is threshold minus valuation; negative when over the threshold.
func Headroom(result domain.ProjectionResult) string {
	return FormatCurrency(result.Threshold.Sub(result.Valuation))
}
