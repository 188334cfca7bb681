package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionmodeler/pension-modeler/internal/config"
	"github.com/pensionmodeler/pension-modeler/internal/output"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, _, err := execute(t, "example-config", "--out", path)
	require.NoError(t, err)
	return path
}

func TestExampleConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	stdout, _, err := execute(t, "example-config", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scenario_ages:")
	assert.Contains(t, string(data), "mode: age")
}

func TestProjectCommand_Stdout(t *testing.T) {
	path := writeExampleConfig(t)
	stdout, _, err := execute(t, "project", "--config", path, "--format", "console", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SCENARIO TESTING BY RETIREMENT AGE")
	assert.Contains(t, stdout, "Annual Pension (1/80th): €45,712")
}

func TestProjectCommand_WritesFile(t *testing.T) {
	path := writeExampleConfig(t)
	dir := t.TempDir()
	stdout, stderr, err := execute(t, "--log-level", "debug", "project", "-c", path, "-f", "json", "-o", dir)
	require.NoError(t, err)

	written := strings.TrimSpace(stdout)
	assert.Equal(t, dir, filepath.Dir(written))
	assert.Equal(t, ".json", filepath.Ext(written))
	assert.Contains(t, stderr, "Report written to")
	assert.Contains(t, stderr, "Final salary")
}

func TestProjectCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "project")
	assert.Error(t, err)

	_, _, err = execute(t, "project", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	path := writeExampleConfig(t)
	_, _, err = execute(t, "project", "--config", path, "--format", "xml", "--stdout")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, _, err = execute(t, "--log-format", "xml", "project", "--config", path)
	assert.Error(t, err)
}

func TestScenariosCommand(t *testing.T) {
	path := writeExampleConfig(t)
	stdout, _, err := execute(t, "scenarios", "--config", path, "--ages", "65,60,65", "--out", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(output.ScenarioCSVHeader, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "60,"))
	assert.True(t, strings.HasPrefix(lines[2], "65,"))
	assert.True(t, strings.HasPrefix(lines[3], "65,"))
}

func TestScenariosCommand_File(t *testing.T) {
	path := writeExampleConfig(t)
	out := filepath.Join(t.TempDir(), output.ScenarioCSVFilename)
	_, _, err := execute(t, "scenarios", "--config", path, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// Default sweep of four ages.
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 5)
}

func TestScenariosCommand_InvalidAge(t *testing.T) {
	path := writeExampleConfig(t)
	_, _, err := execute(t, "scenarios", "--config", path, "--ages", "50", "--out", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario_ages[0]")
}

func TestScenariosCommand_EmptySweepFromConfig(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	cfg.ScenarioAges = []int{}
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	stdout, _, err := execute(t, "scenarios", "--config", path, "--out", "-")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(output.ScenarioCSVHeader, ","), strings.TrimSpace(stdout))

	scenarios, _, err := newRootCmd().Find([]string{"scenarios"})
	require.NoError(t, err)
	assert.Contains(t, scenarios.Flags().Lookup("ages").Usage, "scenario_ages: []")
}
