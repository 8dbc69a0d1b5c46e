package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mergebench/internal/measurement"
)

// SampleRows is a plausible seven-size benchmark run
func SampleRows() []measurement.Row {
	return []measurement.Row{
		{N: 1, RecursiveMs: 0.0002, IterativeMs: 0.0001, RecursiveComparisons: 0, IterativeComparisons: 0, OverheadPercent: 100, Winner: measurement.WinnerIterative},
		{N: 10, RecursiveMs: 0.0011, IterativeMs: 0.0012, RecursiveComparisons: 22, IterativeComparisons: 25, OverheadPercent: -8.3333, Winner: measurement.WinnerRecursive},
		{N: 50, RecursiveMs: 0.0063, IterativeMs: 0.0058, RecursiveComparisons: 221, IterativeComparisons: 235, OverheadPercent: 8.6207, Winner: measurement.WinnerIterative},
		{N: 100, RecursiveMs: 0.014, IterativeMs: 0.0131, RecursiveComparisons: 540, IterativeComparisons: 573, OverheadPercent: 6.8702, Winner: measurement.WinnerIterative},
		{N: 250, RecursiveMs: 0.0391, IterativeMs: 0.0372, RecursiveComparisons: 1703, IterativeComparisons: 1765, OverheadPercent: 5.1075, Winner: measurement.WinnerIterative},
		{N: 500, RecursiveMs: 0.0822, IterativeMs: 0.0809, RecursiveComparisons: 3908, IterativeComparisons: 4005, OverheadPercent: 1.6069, Winner: measurement.WinnerIterative},
		{N: 1000, RecursiveMs: 0.173, IterativeMs: 0.1745, RecursiveComparisons: 8708, IterativeComparisons: 8885, OverheadPercent: -0.8596, Winner: measurement.WinnerRecursive},
	}
}

// WriteResultsCSV writes rows as a results CSV named name inside dir and
// returns its path
func WriteResultsCSV(t testing.TB, dir, name string, rows []measurement.Row) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(measurement.Header(), ","))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r.Record(), ","))
		b.WriteString("\n")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
