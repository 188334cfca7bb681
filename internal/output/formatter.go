package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
// The formatter name is part of the file name so formats sharing an extension don't collide.
func WriteFormatted(f Formatter, report *domain.Report, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("pension_report_%s_%s.%s", f.Name(), time.Now().Format("20060102_150405"), f.Extension())
	if dir != "" {
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	ScenarioCSVExporter{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"summary":         "console-lite",
	"scenarios":       "csv",
	"csv-scenarios":   "csv",
	"csv-detailed":    "detailed-csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
