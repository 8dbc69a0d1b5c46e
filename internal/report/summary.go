package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"mergebench/internal/analysis"
)

var banner = strings.Repeat("=", 70)

// PrintHeader writes the title banner and the dataset overview
func PrintHeader(w io.Writer, label string, s *analysis.Summary) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "MERGE SORT: RECURSIVE vs ITERATIVE ANALYSIS")
	fmt.Fprintln(w, banner)
	if label != "" {
		fmt.Fprintf(w, "\nDataset: %s - %d test sizes\n", label, s.Rows)
	} else {
		fmt.Fprintf(w, "\nDataset: %d test sizes\n", s.Rows)
	}
	fmt.Fprintf(w, "Size range: %d to %d records\n\n", s.MinN, s.MaxN)
}

// PrintChartSaved writes the confirmation line of the index-th chart (1-based)
func PrintChartSaved(w io.Writer, index int, file string) {
	fmt.Fprintf(w, "✓ Graph %d saved: %s\n", index, file)
}

// PrintSummary writes winner, overhead, full dataset and comparison statistics
func PrintSummary(w io.Writer, s *analysis.Summary) {
	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "STATISTICAL SUMMARY")
	fmt.Fprintln(w, banner)

	fmt.Fprintln(w, "\n--- WINNER STATISTICS ---")
	for _, win := range s.Wins {
		fmt.Fprintf(w, "%s: %d wins (%.1f%%)\n", win.Winner, win.Count, win.Percent)
	}

	o := s.Overhead
	fmt.Fprintln(w, "\n--- OVERHEAD ANALYSIS ---")
	fmt.Fprintf(w, "Average overhead:    %.2f%%\n", o.Mean)
	fmt.Fprintf(w, "Median overhead:     %.2f%%\n", o.Median)
	fmt.Fprintf(w, "Std deviation:       %.2f%%\n", o.StdDev)
	fmt.Fprintf(w, "Min overhead:        %.2f%%\n", o.Min)
	fmt.Fprintf(w, "Max overhead:        %.2f%%\n", o.Max)
	fmt.Fprintf(w, "Range:               %.2f%%\n", o.Range)

	f := s.Final
	fmt.Fprintf(w, "\n--- FULL DATASET ANALYSIS (n=%d) ---\n", f.N)
	fmt.Fprintf(w, "Recursive time:      %.4f ms\n", f.RecursiveMs)
	fmt.Fprintf(w, "Iterative time:      %.4f ms\n", f.IterativeMs)
	fmt.Fprintf(w, "Time difference:     %.4f ms\n", s.TimeDiffMs)
	fmt.Fprintf(w, "Overhead:            %.2f%%\n", f.OverheadPercent)

	fmt.Fprintln(w, "\n--- COMPARISON COUNTS (Full Dataset) ---")
	fmt.Fprintf(w, "Recursive:           %s\n", humanize.Comma(f.RecursiveComparisons))
	fmt.Fprintf(w, "Iterative:           %s\n", humanize.Comma(f.IterativeComparisons))
	fmt.Fprintf(w, "Difference:          %s (%.2f%%)\n", humanize.Comma(s.ComparisonDiff), s.ComparisonDiffPercent)
}

// PrintFindings writes the key findings narrative filled with the summary figures
func PrintFindings(w io.Writer, s *analysis.Summary) {
	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "KEY FINDINGS")
	fmt.Fprintln(w, banner)

	abs := s.MeanAbsOverhead
	fmt.Fprintf(w, `
1. PERFORMANCE ESSENTIALLY EQUIVALENT
   → Average overhead: %.2f%%
   → Average |overhead|: %.2f%%
   → Both implementations are equally efficient

2. COMPARISON COUNTS VERY SIMILAR
   → Difference < %.1f%%
   → Both follow O(n log n) complexity

3. WINNER ALTERNATES
   → No consistent pattern
   → Differences within measurement noise (±%.1f%%)

4. WHY SO SIMILAR?
   → Shallow recursion depth (log n ≈ %.0f levels)
   → Effective compiler optimization
   → Same divide-and-conquer strategy
   → Modern CPU optimization (branch prediction, cache)

5. PRACTICAL IMPLICATIONS
   → For Merge Sort: implementation choice is FLEXIBLE
   → Choose based on: code readability, team preference
   → Performance difference NEGLIGIBLE (<%.0f%%)

6. CONTRAST WITH LINEAR RECURSION
   → Merge Sort (log n depth): ~%.0f%% overhead
   → Selection Sort (n depth): ~30%% overhead (theoretical)
   → Recursion overhead ∝ recursion depth!

`, s.Overhead.Mean, abs, s.ComparisonDiffVsRecursive, abs, s.RecursionDepth, abs, abs)
}

// PrintFooter writes the completion banner and the list of generated files
func PrintFooter(w io.Writer, files []string) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "All graphs generated successfully!")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "\nGenerated files:")
	for i, f := range files {
		fmt.Fprintf(w, "  %d. %s\n", i+1, f)
	}
	fmt.Fprintln(w, "\n"+banner)
}
