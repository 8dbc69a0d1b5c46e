package bench

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "mergebench/internal/errors"
	"mergebench/internal/infrastructure"
	"mergebench/internal/measurement"
	"mergebench/internal/mergesort"
)

const (
	// FullDatasetThreshold is the size above which the whole dataset is added
	// as an extra benchmark size
	FullDatasetThreshold = 1000

	// minMeasurableMs is the iterative time below which overhead is reported as 0
	minMeasurableMs = 0.0001

	// tieEpsilonMs is the time difference under which a run is a tie
	tieEpsilonMs = 1e-6
)

// Runner benchmarks both merge sort variants over growing prefixes of a dataset
type Runner struct {
	sizes   []int
	logger  *slog.Logger
	metrics *infrastructure.BenchMetrics
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithMetrics records sort durations and comparison counts
func WithMetrics(m *infrastructure.BenchMetrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer sets the tracer used for per-size spans
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a runner for the given benchmark sizes
func NewRunner(sizes []int, opts ...Option) *Runner {
	r := &Runner{
		sizes:  sizes,
		logger: slog.Default(),
		tracer: otel.Tracer(infrastructure.TracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plan returns the sizes that will be benchmarked for a dataset of total
// records: configured sizes that fit, plus total itself when it exceeds
// FullDatasetThreshold. The result ascends without duplicates.
func Plan(sizes []int, total int) []int {
	plan := make([]int, 0, len(sizes)+1)
	for _, n := range sizes {
		if n > 0 && n <= total {
			plan = append(plan, n)
		}
	}
	if total > FullDatasetThreshold {
		plan = append(plan, total)
	}
	slices.Sort(plan)
	return slices.Compact(plan)
}

// Run sorts identical copies of each dataset prefix with both variants and
// returns one measurement row per planned size.
func (r *Runner) Run(ctx context.Context, records []Record) (measurement.Table, error) {
	if len(records) == 0 {
		return measurement.Table{}, apperrors.EmptyTable().WithStage("dataset")
	}

	plan := Plan(r.sizes, len(records))
	r.logger.InfoContext(ctx, "Starting benchmark",
		slog.Int("records", len(records)),
		slog.Any("sizes", plan))

	table := measurement.Table{Rows: make([]measurement.Row, 0, len(plan))}
	for _, n := range plan {
		if err := ctx.Err(); err != nil {
			return measurement.Table{}, err
		}
		table.Rows = append(table.Rows, r.measure(ctx, records[:n]))
	}

	return table, nil
}

func (r *Runner) measure(ctx context.Context, prefix []Record) measurement.Row {
	n := len(prefix)
	ctx, span := r.tracer.Start(ctx, "bench.size", trace.WithAttributes(attribute.Int("n", n)))
	defer span.End()

	recursive := slices.Clone(prefix)
	iterative := slices.Clone(prefix)

	recMs, recCmp := r.timeSort(ctx, "recursive", recursive, mergesort.Recursive[Record])
	iterMs, iterCmp := r.timeSort(ctx, "iterative", iterative, mergesort.Iterative[Record])

	row := measurement.Row{
		N:                    n,
		RecursiveMs:          recMs,
		IterativeMs:          iterMs,
		RecursiveComparisons: recCmp,
		IterativeComparisons: iterCmp,
		OverheadPercent:      overheadPercent(recMs, iterMs),
		Winner:               winner(recMs, iterMs),
	}

	span.SetAttributes(
		attribute.String("winner", row.Winner),
		attribute.Float64("overhead_percent", row.OverheadPercent))
	r.logger.DebugContext(ctx, "Measured size",
		slog.Int("n", n),
		slog.Float64("recursive_ms", recMs),
		slog.Float64("iterative_ms", iterMs),
		slog.String("winner", row.Winner))

	return row
}

func (r *Runner) timeSort(ctx context.Context, algorithm string, data []Record, sort func([]Record, mergesort.Less[Record]) int64) (float64, int64) {
	start := r.now()
	comparisons := sort(data, RecordLess)
	elapsed := r.now().Sub(start)

	r.metrics.RecordSort(ctx, algorithm, len(data), elapsed, comparisons)
	return float64(elapsed) / float64(time.Millisecond), comparisons
}

func overheadPercent(recMs, iterMs float64) float64 {
	if iterMs <= minMeasurableMs {
		return 0
	}
	return (recMs - iterMs) / iterMs * 100
}

func winner(recMs, iterMs float64) string {
	switch {
	case math.Abs(recMs-iterMs) < tieEpsilonMs:
		return measurement.WinnerTie
	case recMs < iterMs:
		return measurement.WinnerRecursive
	default:
		return measurement.WinnerIterative
	}
}
