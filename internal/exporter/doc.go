// Package exporter writes the tabular artifacts of the benchmark tools.
//
// CSVWriter writes merge_sort_results.csv and other plain CSV files.
// WriteWorkbook writes the optional .xlsx companion of a report run with a
// Measurements sheet and a Summary sheet.
package exporter
