package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"mergebench/internal/config"
	"mergebench/internal/infrastructure"
	"mergebench/internal/report"
	"mergebench/pkg/contracts"
)

const toolName = "merge-report"

func main() {
	// A missing .env is fine; MERGE_* variables may come from the shell
	_ = godotenv.Load()

	err := run(context.Background(), os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		var logged generatorError
		if !errors.As(err, &logged) {
			slog.Error("merge-report failed", "error", err)
		}
		os.Exit(1)
	}
}

// generatorError wraps failures that report.Generator has already logged
type generatorError struct {
	err error
}

func (e generatorError) Error() string { return e.err.Error() }
func (e generatorError) Unwrap() error { return e.err }

// run parses flags, wires logging and telemetry and generates the report
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	input := flags.String("in", "", "measurement CSV (overrides config)")
	outputDir := flags.String("out", "", "directory for the chart files (overrides config)")
	dpi := flags.Int("dpi", 0, "chart resolution in dots per inch (overrides config)")
	workbook := flags.String("xlsx", "", "also write an .xlsx workbook with this name")
	showVersion := flags.Bool("version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, contracts.GetFullVersionString(toolName))
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg.Report, *input, *outputDir, *dpi, *workbook)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureRunID(ctx)
	logger.InfoContext(ctx, "Starting report generation",
		slog.String("version", contracts.Version),
		slog.String("input", cfg.Report.InputFile),
		slog.String("output_dir", cfg.Report.OutputDir),
		slog.Int("dpi", cfg.Report.DPI))

	telemetry, err := infrastructure.InitializeTelemetry(ctx, cfg.Telemetry, toolName, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := telemetry.Shutdown(ctx); err != nil {
			logger.WarnContext(ctx, "Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	metrics, err := infrastructure.CreateReportMetrics(telemetry.Meter)
	if err != nil {
		return err
	}

	generator := report.NewGenerator(cfg.Report,
		report.WithOutput(stdout),
		report.WithLogger(logger),
		report.WithTracer(telemetry.Tracer),
		report.WithMetrics(metrics),
	)
	if _, err := generator.Run(ctx); err != nil {
		return generatorError{err: err}
	}
	return nil
}

// applyOverrides replaces config values with the non-empty flag values
func applyOverrides(cfg *config.ReportConfig, input, outputDir string, dpi int, workbook string) {
	if input != "" {
		cfg.InputFile = input
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if dpi > 0 {
		cfg.DPI = dpi
	}
	if workbook != "" {
		cfg.WorkbookFile = workbook
	}
}
