package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionmodeler/pension-modeler/internal/calculation"
	"github.com/pensionmodeler/pension-modeler/internal/config"
	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/pensionmodeler/pension-modeler/internal/output"
)

func fixedClock() time.Time { return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC) }

func exampleReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg := config.NewInputParser().WithClock(fixedClock).CreateExampleConfiguration()
	report, err := calculation.NewCalculationEngine().Evaluate(cfg)
	require.NoError(t, err)
	return report
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser().WithClock(fixedClock)
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, output.SaveConfiguration(cfg, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Target, loaded.Target)
	assert.Equal(t, cfg.ScenarioAges, loaded.ScenarioAges)
	assert.True(t, cfg.Inputs.CurrentSalary.Equal(loaded.Inputs.CurrentSalary))
	assert.True(t, cfg.Inputs.SalaryGrowthPct.Equal(loaded.Inputs.SalaryGrowthPct))
	assert.True(t, cfg.Inputs.SFTNow.Equal(loaded.Inputs.SFTNow))
	assert.Equal(t, cfg.Inputs.CurrentYear, loaded.Inputs.CurrentYear)
}

func TestGenerateReport_SingleFormat(t *testing.T) {
	dir := t.TempDir()
	files, err := output.GenerateReport(exampleReport(t), "scenarios", dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasPrefix(filepath.Base(files[0]), "pension_report_"))
	assert.Equal(t, ".csv", filepath.Ext(files[0]))

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), strings.Join(output.ScenarioCSVHeader, ",")))
}

func TestGenerateReport_All(t *testing.T) {
	dir := t.TempDir()
	files, err := output.GenerateReport(exampleReport(t), "all", dir)
	require.NoError(t, err)
	assert.Len(t, files, len(output.AvailableFormatterNames()))
	for _, f := range files {
		_, statErr := os.Stat(f)
		assert.NoError(t, statErr, f)
	}
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	_, err := output.GenerateReport(exampleReport(t), "xml", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestRender(t *testing.T) {
	data, f, err := output.Render(exampleReport(t), "csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", f.Name())
	// Default sweep of four ages plus the header.
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 5)

	_, _, err = output.Render(exampleReport(t), "")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}
