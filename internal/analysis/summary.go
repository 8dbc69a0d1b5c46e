package analysis

import (
	"math"
	"sort"

	apperrors "mergebench/internal/errors"
	"mergebench/internal/measurement"
)

// MinRowsForCurves is the row count a table must exceed before theoretical
// curves are fitted.
const MinRowsForCurves = 2

// WinCount is the tally of one Winner category
type WinCount struct {
	Winner  string
	Count   int
	Percent float64
}

// Summary is every derived quantity the charts and console report use
type Summary struct {
	Rows int
	MinN int
	MaxN int

	// Wins is ordered by count descending, then by name
	Wins []WinCount

	Overhead        Stats
	MeanAbsOverhead float64

	// Final is the row with the largest N
	Final measurement.Row

	TimeDiffMs     float64
	ComparisonDiff int64
	// ComparisonDiffPercent is relative to the larger of the two final counts
	ComparisonDiffPercent float64
	// ComparisonDiffVsRecursive is relative to the final recursive count
	ComparisonDiffVsRecursive float64
	// RecursionDepth is log2 of the final N
	RecursionDepth float64

	// ComparisonCurve and TimeCurve are nil unless Rows > MinRowsForCurves
	ComparisonCurve *Curve
	TimeCurve       *Curve
}

// HasCurves reports whether theoretical curves were fitted
func (s *Summary) HasCurves() bool {
	return s.ComparisonCurve != nil && s.TimeCurve != nil
}

// Analyze derives the report statistics from table.
// It fails on an empty table and on zero divisors in the final-row ratios.
func Analyze(table measurement.Table) (*Summary, error) {
	final, ok := table.Last()
	if !ok {
		return nil, apperrors.EmptyTable()
	}

	overheads := table.Overheads()
	abs := make([]float64, len(overheads))
	for i, v := range overheads {
		abs[i] = math.Abs(v)
	}

	s := &Summary{
		Rows:            table.Len(),
		MinN:            table.Rows[0].N,
		MaxN:            final.N,
		Wins:            countWins(table),
		Overhead:        calculateStatistics(overheads),
		MeanAbsOverhead: calculateStatistics(abs).Mean,
		Final:           final,
		TimeDiffMs:      math.Abs(final.RecursiveMs - final.IterativeMs),
		ComparisonDiff:  absInt64(final.RecursiveComparisons - final.IterativeComparisons),
		RecursionDepth:  math.Log2(float64(final.N)),
	}

	larger := final.RecursiveComparisons
	if final.IterativeComparisons > larger {
		larger = final.IterativeComparisons
	}
	if larger == 0 {
		return nil, apperrors.ZeroDivisor("final comparison count")
	}
	s.ComparisonDiffPercent = float64(s.ComparisonDiff) / float64(larger) * 100

	if final.RecursiveComparisons == 0 {
		return nil, apperrors.ZeroDivisor("final recursive comparison count")
	}
	s.ComparisonDiffVsRecursive = float64(s.ComparisonDiff) / float64(final.RecursiveComparisons) * 100

	if s.Rows > MinRowsForCurves {
		comparisons, err := Calibrate(float64(final.N), float64(final.RecursiveComparisons))
		if err != nil {
			return nil, err
		}
		times, err := Calibrate(float64(final.N), final.RecursiveMs)
		if err != nil {
			return nil, err
		}
		s.ComparisonCurve = &comparisons
		s.TimeCurve = &times
	}

	return s, nil
}

func countWins(table measurement.Table) []WinCount {
	counts := make(map[string]int)
	for _, r := range table.Rows {
		counts[r.Winner]++
	}

	wins := make([]WinCount, 0, len(counts))
	for winner, count := range counts {
		wins = append(wins, WinCount{
			Winner:  winner,
			Count:   count,
			Percent: float64(count) / float64(table.Len()) * 100,
		})
	}
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Count != wins[j].Count {
			return wins[i].Count > wins[j].Count
		}
		return wins[i].Winner < wins[j].Winner
	})
	return wins
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
