package output

import (
	"bytes"
	"encoding/csv"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// CSVDetailedExporter exports the current projection and every scenario at full precision,
// for users who want to redo the arithmetic.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Kind", "RetirementAge", "RetirementYear", "YearsToRetirement", "ServiceAtRetirement", "FinalSalary", "AnnualPension", "LumpSum", "Valuation", "Threshold", "OverThreshold"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	current := domain.ScenarioRow{
		RetirementAge:     report.Target.RetirementAge,
		RetirementYear:    report.Target.RetirementYear,
		YearsToRetirement: report.Target.YearsToRetirement,
		ProjectionResult:  report.Result,
	}
	if err := w.Write(detailedRow("current", current)); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		if err := w.Write(detailedRow("scenario", sc)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func detailedRow(kind string, sc domain.ScenarioRow) []string {
	return []string{
		kind,
		intToString(sc.RetirementAge),
		intToString(sc.RetirementYear),
		intToString(sc.YearsToRetirement),
		sc.ServiceAtRetirement.String(),
		sc.FinalSalary.String(),
		sc.AnnualPension.String(),
		sc.LumpSum.String(),
		sc.Valuation.String(),
		sc.Threshold.String(),
		boolToString(sc.OverThreshold),
	}
}
