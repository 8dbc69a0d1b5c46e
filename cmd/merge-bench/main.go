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

	"mergebench/internal/bench"
	"mergebench/internal/config"
	"mergebench/internal/exporter"
	"mergebench/internal/infrastructure"
	"mergebench/internal/validation"
	"mergebench/pkg/contracts"
)

const toolName = "merge-bench"

func main() {
	_ = godotenv.Load()

	err := run(context.Background(), os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("merge-bench failed", "error", err)
		os.Exit(1)
	}
}

// run benchmarks both merge sort variants on the dataset and writes the
// measurement table
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	dataset := flags.String("dataset", "", "semicolon separated dataset (auto-detected when empty)")
	output := flags.String("out", "", "measurement CSV to write (overrides config)")
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
	if *dataset != "" {
		cfg.Bench.DatasetPath = *dataset
	}
	if *output != "" {
		cfg.Bench.OutputFile = *output
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureRunID(ctx)

	path := cfg.Bench.DatasetPath
	if path == "" {
		path, err = bench.AutoDetect(bench.DefaultSearchDirs, bench.DefaultDatasetNames)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Dataset detected", slog.String("path", path))
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateFile(path); err != nil {
		return err
	}
	if err := validator.ValidateOutputFile(cfg.Bench.OutputFile); err != nil {
		return err
	}

	records, err := bench.LoadDataset(path)
	if err != nil {
		return err
	}

	telemetry, err := infrastructure.InitializeTelemetry(ctx, cfg.Telemetry, toolName, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := telemetry.Shutdown(ctx); err != nil {
			logger.WarnContext(ctx, "Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	metrics, err := infrastructure.CreateBenchMetrics(telemetry.Meter)
	if err != nil {
		return err
	}

	runner := bench.NewRunner(cfg.Bench.Sizes,
		bench.WithLogger(logger),
		bench.WithTracer(telemetry.Tracer),
		bench.WithMetrics(metrics),
	)
	table, err := runner.Run(ctx, records)
	if err != nil {
		return err
	}

	bench.PrintHeader(stdout, path, len(records))
	bench.PrintTable(stdout, table)
	bench.PrintSummary(stdout, table)

	written, err := exporter.NewCSVWriter("", logger).WriteTable(cfg.Bench.OutputFile, table)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Measurement table written",
		slog.String("path", written),
		slog.Int("rows", table.Len()))
	return nil
}
