package measurement

import "strconv"

// Column names of the results CSV
const (
	ColN                    = "N"
	ColRecursiveMs          = "Recursive_ms"
	ColIterativeMs          = "Iterative_ms"
	ColRecursiveComparisons = "Recursive_comparisons"
	ColIterativeComparisons = "Iterative_comparisons"
	ColOverheadPercent      = "Overhead_Percent"
	ColWinner               = "Winner"
)

// Winner categories
const (
	WinnerRecursive = "Recursive"
	WinnerIterative = "Iterative"
	WinnerTie       = "Tie"
)

// Header returns the canonical column order
func Header() []string {
	return []string{
		ColN,
		ColRecursiveMs,
		ColIterativeMs,
		ColRecursiveComparisons,
		ColIterativeComparisons,
		ColOverheadPercent,
		ColWinner,
	}
}

// Row is one benchmark measurement at a given input size
type Row struct {
	N                    int     `validate:"gt=0"`
	RecursiveMs          float64 `validate:"finite,gte=0"`
	IterativeMs          float64 `validate:"finite,gte=0"`
	RecursiveComparisons int64   `validate:"gte=0"`
	IterativeComparisons int64   `validate:"gte=0"`
	OverheadPercent      float64 `validate:"finite"`
	Winner               string  `validate:"oneof=Recursive Iterative Tie"`
}

// Record formats the row in canonical column order
func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.N),
		strconv.FormatFloat(r.RecursiveMs, 'f', 4, 64),
		strconv.FormatFloat(r.IterativeMs, 'f', 4, 64),
		strconv.FormatInt(r.RecursiveComparisons, 10),
		strconv.FormatInt(r.IterativeComparisons, 10),
		strconv.FormatFloat(r.OverheadPercent, 'f', 4, 64),
		r.Winner,
	}
}

// Table is the ordered measurement table, ascending by N
type Table struct {
	Rows []Row
}

// Len returns the number of rows
func (t Table) Len() int { return len(t.Rows) }

// Last returns the row with the largest N. ok is false for an empty table.
func (t Table) Last() (row Row, ok bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// Records formats every row in canonical column order
func (t Table) Records() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Record()
	}
	return out
}

// Ns returns the N column as float64 for plotting and statistics
func (t Table) Ns() []float64 {
	return t.column(func(r Row) float64 { return float64(r.N) })
}

// RecursiveMs returns the recursive time column
func (t Table) RecursiveMs() []float64 {
	return t.column(func(r Row) float64 { return r.RecursiveMs })
}

// IterativeMs returns the iterative time column
func (t Table) IterativeMs() []float64 {
	return t.column(func(r Row) float64 { return r.IterativeMs })
}

// RecursiveComparisons returns the recursive comparison column
func (t Table) RecursiveComparisons() []float64 {
	return t.column(func(r Row) float64 { return float64(r.RecursiveComparisons) })
}

// IterativeComparisons returns the iterative comparison column
func (t Table) IterativeComparisons() []float64 {
	return t.column(func(r Row) float64 { return float64(r.IterativeComparisons) })
}

// Overheads returns the overhead percentage column
func (t Table) Overheads() []float64 {
	return t.column(func(r Row) float64 { return r.OverheadPercent })
}

func (t Table) column(f func(Row) float64) []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = f(r)
	}
	return out
}
