package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	apperrors "mergebench/internal/errors"
)

// Curve is an n·log2(n) reference curve scaled through one observed point
type Curve struct {
	// AnchorN and AnchorY are the observed point the curve passes through
	AnchorN float64
	AnchorY float64

	// Constant is AnchorY / (AnchorN · log2 AnchorN)
	Constant float64
}

// Calibrate fits Constant so the curve meets observed at size n
func Calibrate(n, observed float64) (Curve, error) {
	if n <= 0 || math.IsNaN(n) {
		return Curve{}, apperrors.NonPositiveSize(n)
	}
	divisor := nLogN(n)
	if divisor == 0 {
		return Curve{}, apperrors.ZeroDivisor("n·log2(n) at the calibration size")
	}

	return Curve{
		AnchorN:  n,
		AnchorY:  observed,
		Constant: observed / divisor,
	}, nil
}

// At evaluates the curve at n. At(AnchorN) returns AnchorY exactly.
func (c Curve) At(n float64) float64 {
	if n == c.AnchorN {
		return c.AnchorY
	}
	return c.AnchorY * (nLogN(n) / nLogN(c.AnchorN))
}

// Sample evaluates the curve over xs
func (c Curve) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = c.At(x)
	}
	return ys
}

func nLogN(n float64) float64 {
	return n * math.Log2(n)
}

// Linspace returns count evenly spaced values from lo to hi inclusive
func Linspace(lo, hi float64, count int) []float64 {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []float64{lo}
	}
	out := floats.Span(make([]float64, count), lo, hi)
	out[count-1] = hi
	return out
}

// Logspace returns count values from lo to hi inclusive, evenly spaced on a
// log scale. lo and hi must be positive.
func Logspace(lo, hi float64, count int) []float64 {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []float64{lo}
	}
	out := floats.LogSpan(make([]float64, count), lo, hi)
	// exp(log(x)) is not always x
	out[0], out[count-1] = lo, hi
	return out
}
