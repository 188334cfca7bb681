package output

import (
	"bytes"
	"fmt"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// ConsoleFormatter provides a concise one-screen summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	status := AnalyzeThreshold(report)
	fmt.Fprintln(&buf, "PENSION PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Retire %d at age %d (%d years)\n", report.Target.RetirementYear, report.Target.RetirementAge, report.Target.YearsToRetirement)
	fmt.Fprintf(&buf, "Pension=%s LumpSum=%s Valuation=%s Threshold=%s\n",
		FormatCurrency(report.Result.AnnualPension),
		FormatCurrency(report.Result.LumpSum),
		FormatCurrency(report.Result.Valuation),
		FormatCurrency(report.Result.Threshold),
	)
	fmt.Fprintln(&buf, status.Message)
	for _, w := range report.Warnings {
		fmt.Fprintf(&buf, "Warning: %s\n", w.Message)
	}
	return buf.Bytes(), nil
}
