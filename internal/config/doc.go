// Package config provides centralized configuration management for the merge
// sort benchmark tools. It handles loading configuration from multiple sources,
// validation, and exposes a typed API to the binaries under cmd/.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// Command-line flags in the binaries are applied on top of the loaded Config.
//
// # Environment Variables
//
// All environment variables follow the pattern MERGE_<SECTION>_<FIELD>:
//
//	MERGE_LOGGING_LEVEL=debug
//	MERGE_REPORT_INPUT_FILE=results/merge_sort_results.csv
//	MERGE_REPORT_OUTPUT_DIR=charts
//	MERGE_REPORT_DPI=150
//	MERGE_BENCH_SIZES=1,10,100,1000
//	MERGE_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/merge.prom
//
// # Configuration File
//
// The first of merge-report.yaml or configs/merge-report.yaml found in the
// working directory is read when no explicit path is given:
//
//	report:
//	  input_file: merge_sort_results.csv
//	  output_dir: charts
//	  workbook_file: charts/merge_summary.xlsx
//	bench:
//	  sizes: [1, 10, 50, 100, 250, 500, 1000]
//
// The defaults reproduce the historical behaviour: read merge_sort_results.csv
// from the working directory and write every chart next to it at 300 DPI.
package config
