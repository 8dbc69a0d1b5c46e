package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		fileContent string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no env vars",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "console", cfg.Logging.Output)
				assert.Equal(t, "merge_sort_results.csv", cfg.Report.InputFile)
				assert.Equal(t, "", cfg.Report.OutputDir)
				assert.Equal(t, 300, cfg.Report.DPI)
				assert.Empty(t, cfg.Report.WorkbookFile)
				assert.Equal(t, []int{1, 10, 50, 100, 250, 500, 1000}, cfg.Bench.Sizes)
				assert.Empty(t, cfg.Telemetry.TraceFile)
				assert.Empty(t, cfg.Telemetry.MetricsFile)
			},
		},
		{
			name: "environment overrides defaults",
			env: map[string]string{
				"MERGE_REPORT_DPI":        "150",
				"MERGE_REPORT_OUTPUT_DIR": "charts",
				"MERGE_BENCH_SIZES":       "5,50",
				"MERGE_LOGGING_LEVEL":     "debug",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 150, cfg.Report.DPI)
				assert.Equal(t, "charts", cfg.Report.OutputDir)
				assert.Equal(t, []int{5, 50}, cfg.Bench.Sizes)
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name: "file values are overlaid on defaults",
			fileContent: `
report:
  input_file: data/results.csv
  workbook_file: out/summary.xlsx
telemetry:
  metrics_file: out/merge.prom
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "data/results.csv", cfg.Report.InputFile)
				assert.Equal(t, "out/summary.xlsx", cfg.Report.WorkbookFile)
				assert.Equal(t, "out/merge.prom", cfg.Telemetry.MetricsFile)
				assert.Equal(t, 300, cfg.Report.DPI)
			},
		},
		{
			name:        "environment wins over file",
			env:         map[string]string{"MERGE_REPORT_INPUT_FILE": "env.csv"},
			fileContent: "report:\n  input_file: file.csv\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "env.csv", cfg.Report.InputFile)
			},
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"MERGE_LOGGING_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "non-positive dpi",
			env:     map[string]string{"MERGE_REPORT_DPI": "0"},
			wantErr: true,
		},
		{
			name:    "non-positive bench size",
			env:     map[string]string{"MERGE_BENCH_SIZES": "10,-1"},
			wantErr: true,
		},
		{
			name:        "malformed yaml",
			fileContent: "report: [",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.fileContent != "" {
				path = filepath.Join(t.TempDir(), "merge-report.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.fileContent), 0644))
			}

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestValidateFillsLogFilePath(t *testing.T) {
	cfg := Default()
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "logs/merge.log", cfg.Logging.FilePath)
}

func TestValidateLogOutputIgnoresCase(t *testing.T) {
	tests := []struct {
		output   string
		want     string
		wantFile string
	}{
		{"Console", "console", ""},
		{"CONSOLE", "console", ""},
		{"File", "file", "logs/merge.log"},
		{"Both", "both", "logs/merge.log"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Output = tt.output
			cfg.Logging.FilePath = ""

			require.NoError(t, cfg.validate())
			assert.Equal(t, tt.want, cfg.Logging.Output)
			assert.Equal(t, tt.wantFile, cfg.Logging.FilePath)
		})
	}
}

func TestReportConfigOutputPath(t *testing.T) {
	assert.Equal(t, "merge_time_comparison.png", ReportConfig{}.OutputPath("merge_time_comparison.png"))
	assert.Equal(t,
		filepath.Join("charts", "merge_growth_pattern.png"),
		ReportConfig{OutputDir: "charts"}.OutputPath("merge_growth_pattern.png"))
}
