package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mergebench/internal/analysis"
)

func TestWriteWorkbook(t *testing.T) {
	table := sampleTable()
	summary, err := analysis.Analyze(table)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "merge_report.xlsx")
	require.NoError(t, WriteWorkbook(path, table, summary))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{MeasurementsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(MeasurementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"N", "Recursive_ms", "Iterative_ms", "Recursive_comparisons", "Iterative_comparisons", "Overhead_Percent", "Winner"}, rows[0])
	assert.Equal(t, "10", rows[2][0])
	assert.Equal(t, "Recursive", rows[2][6])

	value, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", value)

	summaryRows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	last := summaryRows[len(summaryRows)-1]
	assert.Equal(t, []string{"Tie wins", "1"}, last)
}
