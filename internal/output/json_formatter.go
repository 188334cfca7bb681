package output

import (
	json "github.com/goccy/go-json"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// JSONFormatter serializes the full report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
