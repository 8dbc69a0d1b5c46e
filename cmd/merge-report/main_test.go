package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergebench/internal/chart"
	"mergebench/internal/config"
	apperrors "mergebench/internal/errors"
	"mergebench/internal/infrastructure"
	"mergebench/internal/shared/testutil"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default().Report
	applyOverrides(&cfg, "in.csv", "charts", 72, "")

	assert.Equal(t, "in.csv", cfg.InputFile)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, 72, cfg.DPI)
	assert.Empty(t, cfg.WorkbookFile)

	applyOverrides(&cfg, "", "", 0, "report.xlsx")
	assert.Equal(t, "in.csv", cfg.InputFile)
	assert.Equal(t, 72, cfg.DPI)
	assert.Equal(t, "report.xlsx", cfg.WorkbookFile)
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-version"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "merge-report v"))
}

func TestRunGeneratesReport(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := t.TempDir()
	input := testutil.WriteResultsCSV(t, dir, "merge_sort_results.csv", testutil.SampleRows())
	outDir := filepath.Join(dir, "charts")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-in", input, "-out", outDir, "-dpi", "20"}, &out)
	require.NoError(t, err)

	for _, file := range chart.Files() {
		assert.FileExists(t, filepath.Join(outDir, file))
	}
	assert.Contains(t, out.String(), "All graphs generated successfully!")
}

func TestRunMissingInput(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := t.TempDir()
	var out bytes.Buffer
	err := run(context.Background(), []string{"-in", filepath.Join(dir, "nope.csv"), "-out", dir}, &out)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInputNotFound, apperrors.GetCode(err))

	// the generator logged it already, so main must not log it again
	var logged generatorError
	assert.True(t, errors.As(err, &logged))
}

func TestRunConfigErrorIsNotMarkedLogged(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out)

	require.Error(t, err)
	var logged generatorError
	assert.False(t, errors.As(err, &logged))
}
