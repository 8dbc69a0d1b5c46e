package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergebench/internal/analysis"
	apperrors "mergebench/internal/errors"
	"mergebench/internal/measurement"
	"mergebench/internal/shared/testutil"
)

// testDPI keeps rendering fast while still producing real images
const testDPI = 20

func inputFor(t *testing.T, rows []measurement.Row) Input {
	t.Helper()
	table := measurement.Table{Rows: rows}
	summary, err := analysis.Analyze(table)
	require.NoError(t, err)
	return Input{Table: table, Summary: summary, DatasetLabel: "RSUD Sukoharjo"}
}

func renderAll(t *testing.T, in Input) []string {
	t.Helper()
	dir := t.TempDir()
	r := NewRenderer(dir, testDPI, nil)

	var paths []string
	for _, spec := range Specs() {
		path, err := r.Render(spec, in)
		require.NoError(t, err, spec.File)
		paths = append(paths, path)
	}
	return paths
}

func TestSpecsOrderAndNames(t *testing.T) {
	assert.Equal(t, []string{
		"merge_time_comparison.png",
		"merge_overhead_analysis.png",
		"merge_comparisons_count.png",
		"merge_final_comparison.png",
		"merge_growth_pattern.png",
	}, Files())
}

func TestRenderAllCharts(t *testing.T) {
	paths := renderAll(t, inputFor(t, testutil.SampleRows()))
	require.Len(t, paths, 5)

	for i, path := range paths {
		f, err := os.Open(path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err, path)

		spec := Specs()[i]
		assert.Equal(t, int(spec.Width.Dots(testDPI)+0.5), cfg.Width, path)
		assert.Equal(t, int(spec.Height.Dots(testDPI)+0.5), cfg.Height, path)
	}
}

func TestRenderSingleRow(t *testing.T) {
	in := inputFor(t, []measurement.Row{{
		N: 1000, RecursiveMs: 5.0, IterativeMs: 5.0,
		RecursiveComparisons: 10000, IterativeComparisons: 10000,
		OverheadPercent: 0, Winner: measurement.WinnerRecursive,
	}})
	require.False(t, in.Summary.HasCurves())

	paths := renderAll(t, in)
	assert.Len(t, paths, 5)
}

func TestRenderZeroTimesOnLogAxes(t *testing.T) {
	rows := testutil.SampleRows()
	rows[0].RecursiveMs = 0
	rows[0].IterativeMs = 0
	rows[1].IterativeMs = 0

	paths := renderAll(t, inputFor(t, rows))
	assert.Len(t, paths, 5)
}

func TestRenderOverwrites(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testDPI, nil)
	spec := Specs()[0]

	stale := filepath.Join(dir, spec.File)
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	path, err := r.Render(spec, inputFor(t, testutil.SampleRows()))
	require.NoError(t, err)
	assert.Equal(t, stale, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(content[:4]))
}

func TestRenderErrors(t *testing.T) {
	spec := Specs()[0]

	_, err := NewRenderer(t.TempDir(), testDPI, nil).Render(spec, Input{})
	assert.Equal(t, apperrors.CodeRenderFailed, apperrors.GetCode(err))

	missing := filepath.Join(t.TempDir(), "missing")
	_, err = NewRenderer(missing, testDPI, nil).Render(spec, inputFor(t, testutil.SampleRows()))
	assert.Equal(t, apperrors.CodeOutputFailed, apperrors.GetCode(err))
}

func TestSplitOverheads(t *testing.T) {
	rows := testutil.SampleRows()
	slower, faster := splitOverheads(measurement.Table{Rows: rows})
	assert.Len(t, slower, 5)
	assert.Len(t, faster, 2)

	for i := range rows {
		rows[i].OverheadPercent = 0
	}
	slower, faster = splitOverheads(measurement.Table{Rows: rows})
	assert.Len(t, slower, len(rows), "zero overhead belongs to the non-negative class")
	assert.Empty(t, faster)
}

func TestPositiveOnly(t *testing.T) {
	pts := positiveOnly(xys([]float64{0, 1, 2, 3}, []float64{1, 0, -1, 4}))
	require.Len(t, pts, 1)
	assert.Equal(t, 3.0, pts[0].X)
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer("", 0, nil)
	assert.Equal(t, DefaultDPI, r.dpi)
	assert.Equal(t, TimeComparisonFile, r.Path(Specs()[0]))
}
