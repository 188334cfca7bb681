package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats a report in memory using the named formatter.
func Render(report *domain.Report, format string) ([]byte, Formatter, error) {
	f, err := lookup(format)
	if err != nil {
		return nil, nil, err
	}
	data, err := f.Format(report)
	if err != nil {
		return nil, nil, fmt.Errorf("format %s: %w", f.Name(), err)
	}
	return data, f, nil
}

// GenerateReport writes the report in the named format to a timestamped file in dir and
// returns the file name. "all" writes every registered format.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, report, dir)
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	}
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a configuration as YAML, suitable for LoadFromFile.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
