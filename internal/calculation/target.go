package calculation

import (
	"errors"
	"fmt"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/pensionmodeler/pension-modeler/pkg/dateutil"
)

// ErrUnknownTargetMode is returned when a retirement target is neither by age nor by year.
var ErrUnknownTargetMode = errors.New("unknown retirement target mode")

// ResolveTarget normalises a retirement target to an age, a calendar year and the number of
// whole years until retirement. Targets in the past resolve to zero years.
func ResolveTarget(inputs domain.ProjectionInputs, target domain.RetirementTarget) (domain.ResolvedTarget, error) {
	mode := target.Mode.Normalize()
	switch mode {
	case domain.TargetByAge:
		years := dateutil.YearsUntilAge(inputs.CurrentAge, target.Age)
		return domain.ResolvedTarget{
			Mode:              mode,
			RetirementAge:     target.Age,
			RetirementYear:    dateutil.YearAtAge(inputs.CurrentAge, inputs.CurrentYear, target.Age),
			YearsToRetirement: years,
		}, nil
	case domain.TargetByYear:
		years := dateutil.YearsUntil(inputs.CurrentYear, target.Year)
		return domain.ResolvedTarget{
			Mode:              mode,
			RetirementAge:     dateutil.AgeInYear(inputs.CurrentAge, inputs.CurrentYear, inputs.CurrentYear+years),
			RetirementYear:    target.Year,
			YearsToRetirement: years,
		}, nil
	default:
		return domain.ResolvedTarget{}, fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownTargetMode, target.Mode, domain.TargetByAge, domain.TargetByYear)
	}
}
