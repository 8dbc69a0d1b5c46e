package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix namespaces every environment variable read by Load
const EnvPrefix = "MERGE"

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Bench     BenchConfig     `yaml:"bench" envconfig:"BENCH"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ReportConfig controls the chart and summary generation
type ReportConfig struct {
	InputFile    string `yaml:"input_file" envconfig:"INPUT_FILE"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	DPI          int    `yaml:"dpi" envconfig:"DPI"`
	DatasetLabel string `yaml:"dataset_label" envconfig:"DATASET_LABEL"`
	// WorkbookFile enables the xlsx export when non-empty
	WorkbookFile string `yaml:"workbook_file" envconfig:"WORKBOOK_FILE"`
}

// BenchConfig controls the merge sort benchmark producer
type BenchConfig struct {
	DatasetPath string `yaml:"dataset_path" envconfig:"DATASET_PATH"`
	Sizes       []int  `yaml:"sizes" envconfig:"SIZES"`
	OutputFile  string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
}

// TelemetryConfig enables trace and metric artifacts. Empty paths disable them.
type TelemetryConfig struct {
	TraceFile   string `yaml:"trace_file" envconfig:"TRACE_FILE"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// OutputPath resolves an artifact name against the configured output directory
func (r ReportConfig) OutputPath(name string) string {
	if r.OutputDir == "" {
		return name
	}
	return filepath.Join(r.OutputDir, name)
}

// Load builds the configuration from defaults, an optional YAML file and
// MERGE_* environment variables, in increasing order of precedence.
// An empty path searches the usual config locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getConfigFilePath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate normalises and checks the configuration
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}

	c.Logging.Output = strings.ToLower(c.Logging.Output)
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %q", c.Logging.Output)
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/merge.log"
	}

	if c.Report.InputFile == "" {
		return fmt.Errorf("report input file must be set")
	}

	if c.Report.DPI <= 0 {
		return fmt.Errorf("report dpi must be positive, got %d", c.Report.DPI)
	}

	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("bench sizes must be positive, got %d", n)
		}
	}

	if c.Bench.OutputFile == "" {
		return fmt.Errorf("bench output file must be set")
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"merge-report.yaml",
		"configs/merge-report.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/merge.log",
		},
		Report: ReportConfig{
			InputFile:    "merge_sort_results.csv",
			OutputDir:    "",
			DPI:          300,
			DatasetLabel: "RSUD Sukoharjo",
		},
		Bench: BenchConfig{
			Sizes:      []int{1, 10, 50, 100, 250, 500, 1000},
			OutputFile: "merge_sort_results.csv",
		},
	}
}
