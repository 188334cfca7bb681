package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionmodeler/pension-modeler/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	report := loadFixtureReport(t)
	dir := t.TempDir()

	for _, format := range []string{"console", "json", "csv", "html", "pdf"} {
		files, err := output.GenerateReport(report, format, dir)
		require.NoError(t, err, format)
		require.Len(t, files, 1)
		info, err := os.Stat(files[0])
		require.NoError(t, err)
		assert.Positive(t, info.Size(), format)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestScenarioExportMatchesFixture(t *testing.T) {
	report := loadFixtureReport(t)
	data, err := output.WriteScenarioCSV(report.Scenarios)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "60,2036,10,35.00,201587,88195,235185,1999076,2000000,No", lines[1])
	assert.Equal(t, lines[1], lines[2])
	assert.Equal(t, "65,2041,15,40.00,233695,116848,311593,2648545,2000000,Yes", lines[4])
	assert.True(t, strings.HasSuffix(lines[5], ",Yes"))
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	report := loadFixtureReport(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg, err := loadFixtureConfig()
	require.NoError(t, err)
	require.NoError(t, output.SaveConfiguration(cfg, path))

	saved, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Target, saved.Target)
	assert.Equal(t, report.Inputs.CurrentAge, saved.Inputs.CurrentAge)
	assert.True(t, cfg.Inputs.SalaryGrowthPct.Equal(saved.Inputs.SalaryGrowthPct))
}
