package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mergebench/internal/analysis"
	"mergebench/internal/chart"
	"mergebench/internal/config"
	apperrors "mergebench/internal/errors"
	"mergebench/internal/exporter"
	"mergebench/internal/infrastructure"
	"mergebench/internal/measurement"
	"mergebench/internal/validation"
)

// Pipeline stages attached to returned errors
const (
	StageLoad     = "load"
	StageAnalyze  = "analyze"
	StageRender   = "render"
	StageWorkbook = "workbook"
)

// Result describes the artifacts of a successful run
type Result struct {
	Summary *analysis.Summary
	// Charts holds the written chart paths in report order
	Charts []string
	// Workbook is empty unless a workbook file is configured
	Workbook string
}

// Generator produces the report for one measurement table
type Generator struct {
	cfg       config.ReportConfig
	out       io.Writer
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *infrastructure.ReportMetrics
	validator *validation.FileValidator
	renderer  *chart.Renderer
}

// Option configures a Generator
type Option func(*Generator)

// WithOutput sets where the console report is printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) { g.out = w }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithTracer sets the tracer used for stage spans
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithMetrics records row, chart and run instruments
func WithMetrics(m *infrastructure.ReportMetrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator creates a generator for cfg
func NewGenerator(cfg config.ReportConfig, opts ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		out:    os.Stdout,
		logger: slog.Default(),
		tracer: otel.Tracer(infrastructure.TracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.validator = validation.NewFileValidator(g.logger)
	g.renderer = chart.NewRenderer(cfg.OutputDir, cfg.DPI, g.logger)
	return g
}

// Run loads the input table, renders every chart and prints the summary
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "report.run",
		trace.WithAttributes(attribute.String("report.input", g.cfg.InputFile)))
	defer span.End()

	result, err := g.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.ErrorContext(ctx, "Report generation failed",
			slog.String("code", string(apperrors.GetCode(err))),
			slog.String("error", err.Error()))
		return nil, err
	}

	if g.metrics != nil {
		g.metrics.RunDuration.Record(ctx, time.Since(start).Seconds())
	}
	g.logger.InfoContext(ctx, "Report generated",
		slog.Int("charts", len(result.Charts)),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

func (g *Generator) run(ctx context.Context) (*Result, error) {
	table, err := g.load(ctx)
	if err != nil {
		return nil, withStage(err, StageLoad)
	}

	summary, err := g.analyze(ctx, table)
	if err != nil {
		return nil, withStage(err, StageAnalyze)
	}

	if err := g.validator.ValidateOutputDirectory(g.cfg.OutputDir); err != nil {
		return nil, withStage(err, StageRender)
	}

	PrintHeader(g.out, g.cfg.DatasetLabel, summary)

	charts, err := g.render(ctx, chart.Input{
		Table:        table,
		Summary:      summary,
		DatasetLabel: g.cfg.DatasetLabel,
	})
	if err != nil {
		return nil, withStage(err, StageRender)
	}

	result := &Result{Summary: summary, Charts: charts}

	if g.cfg.WorkbookFile != "" {
		path := g.cfg.OutputPath(g.cfg.WorkbookFile)
		if err := exporter.WriteWorkbook(path, table, summary); err != nil {
			return nil, withStage(apperrors.OutputFailed(path, err), StageWorkbook)
		}
		g.logger.InfoContext(ctx, "Workbook written", slog.String("path", path))
		result.Workbook = path
	}

	g.printSummary(ctx, summary)
	return result, nil
}

func (g *Generator) load(ctx context.Context) (measurement.Table, error) {
	_, span := g.tracer.Start(ctx, "report.load")
	defer span.End()

	if err := g.validator.ValidateFile(g.cfg.InputFile); err != nil {
		return measurement.Table{}, err
	}

	table, err := measurement.Load(g.cfg.InputFile)
	if err != nil {
		return measurement.Table{}, err
	}

	span.SetAttributes(attribute.Int("report.rows", table.Len()))
	if g.metrics != nil {
		g.metrics.RowsLoaded.Add(ctx, int64(table.Len()))
	}
	g.logger.InfoContext(ctx, "Measurement table loaded",
		slog.String("path", g.cfg.InputFile),
		slog.Int("rows", table.Len()))
	return table, nil
}

func (g *Generator) analyze(ctx context.Context, table measurement.Table) (*analysis.Summary, error) {
	_, span := g.tracer.Start(ctx, "report.analyze")
	defer span.End()

	summary, err := analysis.Analyze(table)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("report.curves", summary.HasCurves()))
	return summary, nil
}

func (g *Generator) render(ctx context.Context, in chart.Input) ([]string, error) {
	specs := chart.Specs()
	paths := make([]string, 0, len(specs))

	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		_, span := g.tracer.Start(ctx, "report.chart",
			trace.WithAttributes(attribute.String("report.chart", spec.File)))
		began := time.Now()

		path, err := g.renderer.Render(spec, in)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			return nil, err
		}
		g.metrics.RecordChart(ctx, spec.File, time.Since(began))
		span.End()

		PrintChartSaved(g.out, i+1, spec.File)
		paths = append(paths, path)
	}
	return paths, nil
}

func (g *Generator) printSummary(ctx context.Context, summary *analysis.Summary) {
	_, span := g.tracer.Start(ctx, "report.summary")
	defer span.End()

	PrintSummary(g.out, summary)
	PrintFindings(g.out, summary)
	PrintFooter(g.out, chart.Files())
}

// withStage tags report errors with the stage they came from
func withStage(err error, stage string) error {
	var rErr *apperrors.ReportError
	if errors.As(err, &rErr) && rErr.Stage == "" {
		return rErr.WithStage(stage)
	}
	return err
}
