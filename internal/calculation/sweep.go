package calculation

import (
	"sort"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/pensionmodeler/pension-modeler/pkg/dateutil"
)

// Sweep runs the projection once per candidate retirement age. Each row is computed
// independently from the template; YearsToRetirement on the template is ignored.
// Rows come back ordered by age, with duplicate ages kept as separate rows.
func Sweep(template domain.ProjectionInputs, ages []int) []domain.ScenarioRow {
	rows := make([]domain.ScenarioRow, 0, len(ages))
	for _, age := range ages {
		years := dateutil.YearsUntilAge(template.CurrentAge, age)
		rows = append(rows, domain.ScenarioRow{
			RetirementAge:     age,
			RetirementYear:    dateutil.YearAtAge(template.CurrentAge, template.CurrentYear, age),
			YearsToRetirement: years,
			ProjectionResult:  Project(template.WithYears(years)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].RetirementAge < rows[j].RetirementAge })
	return rows
}
