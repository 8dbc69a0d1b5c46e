package infrastructure

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ReportMetrics holds the instruments recorded by the report generator
type ReportMetrics struct {
	RowsLoaded          metric.Int64Counter
	ChartsWritten       metric.Int64Counter
	ChartRenderDuration metric.Float64Histogram
	RunDuration         metric.Float64Histogram
}

// CreateReportMetrics registers the report instruments on meter
func CreateReportMetrics(meter metric.Meter) (*ReportMetrics, error) {
	rows, err := meter.Int64Counter("merge_report_rows_loaded",
		metric.WithDescription("Measurement rows loaded from the input table"))
	if err != nil {
		return nil, fmt.Errorf("create rows_loaded counter: %w", err)
	}

	charts, err := meter.Int64Counter("merge_report_charts_written",
		metric.WithDescription("Chart files written"))
	if err != nil {
		return nil, fmt.Errorf("create charts_written counter: %w", err)
	}

	render, err := meter.Float64Histogram("merge_report_chart_render_duration",
		metric.WithDescription("Time spent rendering and saving one chart"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create chart_render_duration histogram: %w", err)
	}

	run, err := meter.Float64Histogram("merge_report_run_duration",
		metric.WithDescription("Wall time of a complete report run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create run_duration histogram: %w", err)
	}

	return &ReportMetrics{
		RowsLoaded:          rows,
		ChartsWritten:       charts,
		ChartRenderDuration: render,
		RunDuration:         run,
	}, nil
}

// RecordChart records one chart write
func (m *ReportMetrics) RecordChart(ctx context.Context, chart string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("chart", chart))
	m.ChartsWritten.Add(ctx, 1, attrs)
	m.ChartRenderDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// BenchMetrics holds the instruments recorded by the benchmark producer
type BenchMetrics struct {
	SortDuration metric.Float64Histogram
	Comparisons  metric.Int64Counter
}

// CreateBenchMetrics registers the benchmark instruments on meter
func CreateBenchMetrics(meter metric.Meter) (*BenchMetrics, error) {
	sortDuration, err := meter.Float64Histogram("merge_bench_sort_duration",
		metric.WithDescription("Time taken by one merge sort run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create sort_duration histogram: %w", err)
	}

	comparisons, err := meter.Int64Counter("merge_bench_comparisons",
		metric.WithDescription("Element comparisons performed by merge sort runs"))
	if err != nil {
		return nil, fmt.Errorf("create comparisons counter: %w", err)
	}

	return &BenchMetrics{SortDuration: sortDuration, Comparisons: comparisons}, nil
}

// RecordSort records one sort run of the given algorithm
func (m *BenchMetrics) RecordSort(ctx context.Context, algorithm string, n int, elapsed time.Duration, comparisons int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.Int("n", n),
	)
	m.SortDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.Comparisons.Add(ctx, comparisons, attrs)
}
