package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// ConsoleVerboseFormatter renders the full report: summary, benefits, threshold, checks,
// scenario table and assumptions.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 64)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "PENSION MODELER")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 7))
	fmt.Fprintf(&buf, "Retirement Year:             %d\n", report.Target.RetirementYear)
	fmt.Fprintf(&buf, "Retirement Age:              %d years\n", report.Target.RetirementAge)
	fmt.Fprintf(&buf, "Years to Retirement:         %d years\n", report.Target.YearsToRetirement)
	fmt.Fprintf(&buf, "Total Service at Retirement: %s years\n", FormatService(report.Result.ServiceAtRetirement))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "BENEFIT PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("-", 18))
	fmt.Fprintf(&buf, "Final Salary:            %s\n", FormatCurrency(report.Result.FinalSalary))
	fmt.Fprintf(&buf, "Annual Pension (1/80th): %s\n", FormatCurrency(report.Result.AnnualPension))
	fmt.Fprintf(&buf, "Lump Sum (~3/80ths):     %s\n", FormatCurrency(report.Result.LumpSum))
	fmt.Fprintf(&buf, "SFT Valuation:           %s\n", FormatCurrency(report.Result.Valuation))
	fmt.Fprintln(&buf)

	status := AnalyzeThreshold(report)
	fmt.Fprintln(&buf, status.ThresholdLine)
	fmt.Fprintf(&buf, "Headroom: %s\n", Headroom(report.Result))
	fmt.Fprintln(&buf, status.Message)
	fmt.Fprintln(&buf)

	if len(report.Warnings) > 0 {
		fmt.Fprintln(&buf, "CHECKS & WARNINGS")
		for _, w := range report.Warnings {
			fmt.Fprintf(&buf, "• %s\n", w.Message)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "SCENARIO TESTING BY RETIREMENT AGE")
	fmt.Fprintln(&buf, rule)
	if err := writeScenarioTable(&buf, report.Scenarios); err != nil {
		return nil, err
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ASSUMPTIONS SNAPSHOT")
	for _, a := range AssumptionLines(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeScenarioTable(buf *bytes.Buffer, rows []domain.ScenarioRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(buf, "(no retirement ages selected)")
		return nil
	}
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(ScenarioCSVHeader, "\t")+"\t")
	for _, sc := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			sc.RetirementAge,
			sc.RetirementYear,
			sc.YearsToRetirement,
			FormatService(sc.ServiceAtRetirement),
			FormatCurrency(sc.FinalSalary),
			FormatCurrency(sc.AnnualPension),
			FormatCurrency(sc.LumpSum),
			FormatCurrency(sc.Valuation),
			FormatCurrency(sc.Threshold),
			yesNo(sc.OverThreshold),
		)
	}
	return tw.Flush()
}
