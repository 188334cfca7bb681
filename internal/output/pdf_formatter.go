package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfText converts UTF-8 text to the cp1252 encoding expected by the standard PDF fonts.
// The euro sign is U+20AC in UTF-8 but 0x80 in cp1252.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "€", "\x80")
}

// PDFFormatter renders a one-page A4 report with the summary and scenario table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Pension Modeler", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, "Pension Modeler", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	half := contentWidth / 2
	summary := [][2]string{
		{"Retirement Year", intToString(report.Target.RetirementYear)},
		{"Retirement Age", fmt.Sprintf("%d years", report.Target.RetirementAge)},
		{"Years to Retirement", fmt.Sprintf("%d years", report.Target.YearsToRetirement)},
		{"Total Service at Retirement", FormatService(report.Result.ServiceAtRetirement) + " years"},
	}
	benefits := [][2]string{
		{"Final Salary", FormatCurrency(report.Result.FinalSalary)},
		{"Annual Pension (1/80th)", FormatCurrency(report.Result.AnnualPension)},
		{"Lump Sum (~3/80ths)", FormatCurrency(report.Result.LumpSum)},
		{"SFT Valuation", FormatCurrency(report.Result.Valuation)},
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(half, 8, "Summary", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 8, "Benefit Projection", "", 1, "L", false, 0, "")
	pdf.SetTextColor(50, 50, 50)
	for i := range summary {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(half*0.6, 6, summary[i][0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(half*0.4, 6, pdfText(summary[i][1]), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(half*0.6, 6, benefits[i][0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(half*0.4, 6, pdfText(benefits[i][1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	status := AnalyzeThreshold(report)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentWidth, 6, pdfText(status.ThresholdLine), "", 1, "L", false, 0, "")
	if status.Over {
		pdf.SetFillColor(253, 236, 234)
		pdf.SetTextColor(138, 28, 18)
	} else {
		pdf.SetFillColor(232, 245, 233)
		pdf.SetTextColor(27, 94, 32)
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(contentWidth, 8, status.Message, "", 1, "L", true, 0, "")
	pdf.SetTextColor(50, 50, 50)

	if len(report.Warnings) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(contentWidth, 7, "Checks & Warnings", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, w := range report.Warnings {
			pdf.CellFormat(contentWidth, 5, "- "+w.Message, "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 7, "Scenario Testing by Retirement Age", "", 1, "L", false, 0, "")
	writePDFScenarioTable(pdf, report.Scenarios)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFScenarioTable(pdf *fpdf.Fpdf, rows []domain.ScenarioRow) {
	widths := []float64{14, 16, 16, 18, 20, 20, 20, 20, 20, 16}
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetTextColor(50, 50, 50)
	for i, h := range ScenarioCSVHeader {
		pdf.CellFormat(widths[i], 6, pdfText(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, sc := range rows {
		cells := []string{
			intToString(sc.RetirementAge),
			intToString(sc.RetirementYear),
			intToString(sc.YearsToRetirement),
			FormatService(sc.ServiceAtRetirement),
			FormatCurrency(sc.FinalSalary),
			FormatCurrency(sc.AnnualPension),
			FormatCurrency(sc.LumpSum),
			FormatCurrency(sc.Valuation),
			FormatCurrency(sc.Threshold),
			yesNo(sc.OverThreshold),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, pdfText(c), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
