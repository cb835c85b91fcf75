package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
)

const sampleDefinition = `options:
  type: bar
  title: Quarterly Sales
  theme: vibrant
  aspect_ratio: "4:3"
rows:
  - {label: Q1, value: "10"}
  - {label: Q2, value: "20", color: "#ff0000"}
`

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderHTML(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "chart.yaml", sampleDefinition)
	out := filepath.Join(dir, "chart.html")

	stdout, stderr, err := executeCommand(newRootCmd(), "render", "--config", cfg, "--out", out, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, out)
	assert.Contains(t, stderr, "Chart updated successfully!")

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Quarterly Sales")
	assert.Contains(t, string(html), "Q2")
}

func TestRenderPNGWithDataFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "chart.yaml", sampleDefinition)
	data := writeFile(t, dir, "data.csv", "Label,Value\nA,1\nB,2\n")
	out := filepath.Join(dir, "chart.png")

	_, _, err := executeCommand(newRootCmd(), "render", "-c", cfg, "-d", data, "-o", out)
	require.NoError(t, err)

	png, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderRejectsPartialData(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.csv", "A,1\nB\n")

	_, stderr, err := executeCommand(newRootCmd(), "render", "--data", data, "--out", filepath.Join(dir, "x.png"))
	require.Error(t, err)
	assert.True(t, chart.IsCode(err, chart.ErrCodePartialEntry))
	assert.Contains(t, stderr, "Please complete all data entries")
}

func TestRenderRejectsUnknownExtension(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "render", "--out", "chart.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")
}

func TestRenderMissingDataFile(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "render", "--data", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, chart.IsCode(err, chart.ErrCodeRead))
}

func TestExportCSVToStdout(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "chart.yaml", sampleDefinition)

	stdout, _, err := executeCommand(newRootCmd(), "export-csv", "--config", cfg, "--out", "-")
	require.NoError(t, err)
	assert.Equal(t, "Label,Value\nQ1,10\nQ2,20\n", stdout)
}

func TestExportCSVToFile(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.csv", "A,1.5\n,3\n")
	out := filepath.Join(dir, "out.csv")

	_, _, err := executeCommand(newRootCmd(), "export-csv", "--data", data, "--out", out)
	require.NoError(t, err)

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Label,Value\nA,1.5\n", string(doc))
}

func TestInvalidConfigIsRejected(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bad.yaml", "options:\n  type: radar\n")

	_, _, err := executeCommand(newRootCmd(), "export-csv", "--config", cfg, "--out", "-")
	require.Error(t, err)
}

func TestUnknownLogFormat(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "version", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestVerboseLogsAreJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "chart.yaml", sampleDefinition)

	_, stderr, err := executeCommand(newRootCmd(), "export-csv", "-c", cfg, "-o", "-", "-v", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"command.export_csv"`)
	assert.Contains(t, stderr, `"correlation_id"`)
}

func TestExportCSVDiff(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "chart.yaml", sampleDefinition)
	out := writeFile(t, dir, "out.csv", "Label,Value\nQ1,10\nQ2,15\n")

	stdout, _, err := executeCommand(newRootCmd(), "export-csv", "-c", cfg, "-o", out, "--diff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "-Q2,15")
	assert.Contains(t, stdout, "+Q2,20")
	assert.Contains(t, stdout, "1 added, 1 removed")

	stdout, _, err = executeCommand(newRootCmd(), "export-csv", "-c", cfg, "-o", out, "--diff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no changes")
}
