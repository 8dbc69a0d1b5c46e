package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"mergebench/internal/analysis"
	"mergebench/internal/measurement"
)

// Sheet names of the report workbook
const (
	MeasurementsSheet = "Measurements"
	SummarySheet      = "Summary"
)

// WriteWorkbook saves table and its summary as an .xlsx file at path
func WriteWorkbook(path string, table measurement.Table, summary *analysis.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), MeasurementsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeMeasurements(f, table); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSummary(f, summary); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeMeasurements(f *excelize.File, table measurement.Table) error {
	header := make([]interface{}, 0, len(measurement.Header()))
	for _, col := range measurement.Header() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(MeasurementsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.N,
			r.RecursiveMs,
			r.IterativeMs,
			r.RecursiveComparisons,
			r.IterativeComparisons,
			r.OverheadPercent,
			r.Winner,
		}
		if err := f.SetSheetRow(MeasurementsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, s *analysis.Summary) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Rows", s.Rows},
		{"Min N", s.MinN},
		{"Max N", s.MaxN},
		{"Mean overhead %", s.Overhead.Mean},
		{"Median overhead %", s.Overhead.Median},
		{"Std deviation %", s.Overhead.StdDev},
		{"Min overhead %", s.Overhead.Min},
		{"Max overhead %", s.Overhead.Max},
		{"Overhead range %", s.Overhead.Range},
		{"Mean |overhead| %", s.MeanAbsOverhead},
		{"Final time difference ms", s.TimeDiffMs},
		{"Final comparison difference", s.ComparisonDiff},
		{"Final comparison difference %", s.ComparisonDiffPercent},
		{"Recursion depth (log2 N)", s.RecursionDepth},
	}
	for _, w := range s.Wins {
		rows = append(rows, []interface{}{w.Winner + " wins", w.Count})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return nil
}
