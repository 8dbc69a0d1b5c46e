package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds descriptive statistics of a sample
type Stats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Range  float64
}

// calculateStatistics summarises samples. StdDev is the sample (n-1)
// standard deviation and is 0 when fewer than two samples exist.
func calculateStatistics(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	s := append([]float64(nil), samples...)
	sort.Float64s(s)
	n := len(s)

	var median float64
	if n%2 == 1 {
		median = s[n/2]
	} else {
		median = (s[n/2-1] + s[n/2]) / 2.0
	}

	var stddev float64
	if n > 1 {
		stddev = stat.StdDev(s, nil)
	}

	min, max := floats.Min(s), floats.Max(s)
	return Stats{
		Mean:   stat.Mean(s, nil),
		Median: median,
		StdDev: stddev,
		Min:    min,
		Max:    max,
		Range:  max - min,
	}
}
