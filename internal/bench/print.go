package bench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"mergebench/internal/measurement"
)

const ruleWidth = 84

// PrintHeader writes the run banner
func PrintHeader(w io.Writer, datasetPath string, records int) {
	fmt.Fprintf(w, "Dataset file: %s\n", datasetPath)
	fmt.Fprintf(w, "Records read: %s\n\n", humanize.Comma(int64(records)))
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w, "       MERGE SORT ANALYSIS: RECURSIVE vs ITERATIVE")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w)
}

// PrintTable writes one line per measured size
func PrintTable(w io.Writer, table measurement.Table) {
	rule := strings.Repeat("-", ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-8s%-16s%-16s%-14s%-14s%-12s%s\n",
		"N", "Recursive(ms)", "Iterative(ms)", "Rec_Cmp", "Iter_Cmp", "Winner", "Overhead%")
	fmt.Fprintln(w, rule)
	for _, r := range table.Rows {
		fmt.Fprintf(w, "%-8d%-16.4f%-16.4f%-14d%-14d%-12s%.1f%%\n",
			r.N, r.RecursiveMs, r.IterativeMs,
			r.RecursiveComparisons, r.IterativeComparisons,
			r.Winner, r.OverheadPercent)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// PrintSummary writes win counts and the full-dataset comparison
func PrintSummary(w io.Writer, table measurement.Table) {
	if table.Len() == 0 {
		return
	}

	var recWins, iterWins, ties int
	for _, r := range table.Rows {
		switch r.Winner {
		case measurement.WinnerRecursive:
			recWins++
		case measurement.WinnerIterative:
			iterWins++
		default:
			ties++
		}
	}
	m := float64(table.Len())

	rule := strings.Repeat("-", 62)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w, "                  RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "WINNER STATISTICS:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Recursive wins     : %d (%.1f%%)\n", recWins, float64(recWins)*100/m)
	fmt.Fprintf(w, "Iterative wins     : %d (%.1f%%)\n", iterWins, float64(iterWins)*100/m)
	fmt.Fprintf(w, "Ties               : %d (%.1f%%)\n\n", ties, float64(ties)*100/m)

	last, _ := table.Last()
	fmt.Fprintf(w, "FULL DATASET ANALYSIS (n=%d):\n", last.N)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Recursive time     : %.4f ms\n", last.RecursiveMs)
	fmt.Fprintf(w, "Iterative time     : %.4f ms\n", last.IterativeMs)
	fmt.Fprintf(w, "Time difference    : %.4f ms\n", math.Abs(last.RecursiveMs-last.IterativeMs))
	fmt.Fprintf(w, "Overhead           : %.2f%%\n\n", last.OverheadPercent)

	fmt.Fprintf(w, "Recursive comps    : %s operations\n", humanize.Comma(last.RecursiveComparisons))
	fmt.Fprintf(w, "Iterative comps    : %s operations\n", humanize.Comma(last.IterativeComparisons))

	diff := last.RecursiveComparisons - last.IterativeComparisons
	if diff < 0 {
		diff = -diff
	}
	var diffPercent float64
	if last.IterativeComparisons > 0 {
		diffPercent = float64(diff) * 100 / float64(last.IterativeComparisons)
	}
	fmt.Fprintf(w, "Comparison diff    : %s (%.2f%%)\n\n", humanize.Comma(diff), diffPercent)
}
