package measurement

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mergebench/internal/errors"
)

func TestLoadResults(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "results.csv"))
	require.NoError(t, err)

	require.Equal(t, 7, table.Len())
	assert.Equal(t, []float64{1, 10, 50, 100, 250, 500, 1000}, table.Ns())

	last, ok := table.Last()
	require.True(t, ok)
	assert.Equal(t, Row{
		N:                    1000,
		RecursiveMs:          0.1730,
		IterativeMs:          0.1745,
		RecursiveComparisons: 8708,
		IterativeComparisons: 8885,
		OverheadPercent:      -0.8596,
		Winner:               WinnerRecursive,
	}, last)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		code apperrors.Code
	}{
		{"missing file", "does_not_exist.csv", apperrors.CodeInputNotFound},
		{"missing column", "missing_column.csv", apperrors.CodeMissingColumn},
		{"header only", "header_only.csv", apperrors.CodeEmptyTable},
		{"zero size", "zero_n.csv", apperrors.CodeInvalidRow},
		{"unsorted", "unsorted.csv", apperrors.CodeUnsortedTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
		})
	}
}

func TestLoadAttachesPath(t *testing.T) {
	path := filepath.Join("testdata", "unsorted.csv")
	_, err := Load(path)

	var rErr *apperrors.ReportError
	require.True(t, errors.As(err, &rErr))
	assert.Equal(t, path, rErr.Context["path"])
	assert.Equal(t, 3, rErr.Context["line"])
}

func TestMissingColumnsAreListed(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing_column.csv"))

	var rErr *apperrors.ReportError
	require.True(t, errors.As(err, &rErr))
	assert.Equal(t, []string{ColIterativeComparisons, ColWinner}, rErr.Context["columns"])
}

func TestLoadReorderedColumnsWithTie(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "reordered.csv"))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, WinnerTie, table.Rows[0].Winner)
	assert.Equal(t, 0.0, table.Rows[0].OverheadPercent)
	assert.Equal(t, int64(540), table.Rows[1].RecursiveComparisons)
	assert.Equal(t, 6.8702, table.Rows[1].OverheadPercent)
}

func TestLoadSingleRow(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "single_row.csv"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 1000, table.Rows[0].N)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	header := strings.Join(Header(), ",") + "\n"

	tests := []struct {
		name string
		row  string
	}{
		{"negative time", "10,-1,0.1,1,1,0,Recursive"},
		{"nan time", "10,NaN,0.1,1,1,0,Recursive"},
		{"infinite overhead", "10,0.1,0.1,1,1,+Inf,Recursive"},
		{"negative comparisons", "10,0.1,0.1,-4,1,0,Recursive"},
		{"fractional comparisons", "10,0.1,0.1,4.5,1,0,Recursive"},
		{"fractional size", "10.5,0.1,0.1,4,1,0,Recursive"},
		{"unknown winner", "10,0.1,0.1,4,1,0,Both"},
		{"text size", "ten,0.1,0.1,4,1,0,Recursive"},
		{"short row", "10,0.1,0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidRow), err.Error())
		})
	}
}

func TestRowValidatorRegistersFinite(t *testing.T) {
	var v interface{ Var(field interface{}, tag string) error }
	require.NotPanics(t, func() { v = newRowValidator() })

	assert.NoError(t, v.Var(1.5, "finite"))
	assert.Error(t, v.Var(math.NaN(), "finite"))
	assert.Error(t, v.Var(math.Inf(-1), "finite"))
}

func TestParseHandlesBOMAndSpaces(t *testing.T) {
	data := "\uFEFFN, Recursive_ms, Iterative_ms, Recursive_comparisons, Iterative_comparisons, Overhead_Percent, Winner\n" +
		"5, 0.5, 0.25, 7, 8, 100, Iterative\n"

	table, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, WinnerIterative, table.Rows[0].Winner)
	assert.Equal(t, 0.25, table.Rows[0].IterativeMs)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.True(t, errors.Is(err, apperrors.ErrMissingColumn))
}

func TestParseAllowsEqualSizes(t *testing.T) {
	data := strings.Join(Header(), ",") + "\n" +
		"10,0.1,0.1,1,1,0,Tie\n" +
		"10,0.2,0.1,1,1,100,Iterative\n"

	table, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestRecordRoundTripsThroughParse(t *testing.T) {
	row := Row{N: 42, RecursiveMs: 1.25, IterativeMs: 1.5, RecursiveComparisons: 100, IterativeComparisons: 120, OverheadPercent: -16.6667, Winner: WinnerRecursive}

	data := strings.Join(Header(), ",") + "\n" + strings.Join(row.Record(), ",") + "\n"
	table, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, row, table.Rows[0])
}
