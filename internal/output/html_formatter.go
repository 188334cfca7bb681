package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// HTMLFormatter produces a self-contained HTML page of the report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"service": FormatService,
	"yesno":   yesNo,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Status      ThresholdStatus
		Headroom    string
		Header      []string
		Assumptions []string
	}{report, AnalyzeThreshold(report), Headroom(report.Result), ScenarioCSVHeader, AssumptionLines(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
