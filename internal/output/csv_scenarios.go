package output

import (
	"bytes"
	"encoding/csv"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// ScenarioCSVFilename is the suggested download name for the scenario export.
const ScenarioCSVFilename = "pension_scenarios.csv"

// ScenarioCSVHeader is the column layout of the scenario export.
var ScenarioCSVHeader = []string{
	"Ret Age",
	"Ret Year",
	"Years to Ret",
	"Service (yrs)",
	"Final Salary (€)",
	"Annual Pension (€)",
	"Lump Sum (€)",
	"SFT Value (€)",
	"SFT Threshold (€)",
	"Over SFT?",
}

// ScenarioCSVExporter writes the retirement-age comparison table (one row per scenario).
// Money is rounded to whole units and service to 2 decimals; the report keeps full precision.
type ScenarioCSVExporter struct{}

func (c ScenarioCSVExporter) Name() string      { return "csv" }
func (c ScenarioCSVExporter) Extension() string { return "csv" }

func (c ScenarioCSVExporter) Format(report *domain.Report) ([]byte, error) {
	return WriteScenarioCSV(report.Scenarios)
}

// WriteScenarioCSV encodes scenario rows in the order given.
func WriteScenarioCSV(rows []domain.ScenarioRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(ScenarioCSVHeader); err != nil {
		return nil, err
	}
	for _, sc := range rows {
		row := []string{
			intToString(sc.RetirementAge),
			intToString(sc.RetirementYear),
			intToString(sc.YearsToRetirement),
			FormatService(sc.ServiceAtRetirement),
			FormatWhole(sc.FinalSalary),
			FormatWhole(sc.AnnualPension),
			FormatWhole(sc.LumpSum),
			FormatWhole(sc.Valuation),
			FormatWhole(sc.Threshold),
			yesNo(sc.OverThreshold),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
