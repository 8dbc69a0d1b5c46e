package measurement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "mergebench/internal/errors"
)

var rowValidator = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("register finite validation: %v", err))
	}
	return v
}

// isFinite rejects NaN and infinities, which strconv happily parses
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Load reads a measurement table from a CSV file
func Load(path string) (Table, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Table{}, apperrors.InputNotFound(path)
	}
	if err != nil {
		return Table{}, apperrors.InputUnreadable(path, err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		var rErr *apperrors.ReportError
		if errors.As(err, &rErr) {
			if rErr.Context == nil {
				rErr.Context = map[string]interface{}{}
			}
			rErr.Context["path"] = path
			return Table{}, rErr
		}
		return Table{}, apperrors.InputUnreadable(path, err)
	}
	return table, nil
}

// columnIndex maps each required column to its position in the header
type columnIndex map[string]int

func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if i == 0 {
			col = strings.TrimPrefix(col, "\uFEFF") // Excel BOM
		}
		idx[col] = i
	}

	var missing []string
	for _, col := range Header() {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingColumns(missing)
	}
	return idx, nil
}

// Parse reads a measurement table from CSV data with a header row.
// It fails on missing columns, malformed or invalid rows, rows out of N order
// and tables without data rows.
func Parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, apperrors.MissingColumns(Header())
	}
	if err != nil {
		return Table{}, apperrors.InvalidRow(1, err)
	}

	idx, err := indexHeader(header)
	if err != nil {
		return Table{}, err
	}

	var table Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return Table{}, apperrors.InvalidRow(parseErr.Line, parseErr.Err)
			}
			return Table{}, err
		}

		line, _ := reader.FieldPos(0)
		row, err := parseRow(record, idx)
		if err != nil {
			return Table{}, apperrors.InvalidRow(line, err)
		}
		if err := rowValidator.Struct(row); err != nil {
			return Table{}, apperrors.InvalidRow(line, err)
		}
		if n := len(table.Rows); n > 0 && row.N < table.Rows[n-1].N {
			return Table{}, apperrors.UnsortedTable(line, table.Rows[n-1].N, row.N)
		}

		table.Rows = append(table.Rows, row)
	}

	if table.Len() == 0 {
		return Table{}, apperrors.EmptyTable()
	}

	return table, nil
}

func parseRow(record []string, idx columnIndex) (Row, error) {
	field := func(col string) string {
		return strings.TrimSpace(record[idx[col]])
	}

	var (
		row Row
		err error
	)

	n, err := parseCount(field(ColN))
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w", ColN, err)
	}
	row.N = int(n)

	if row.RecursiveMs, err = strconv.ParseFloat(field(ColRecursiveMs), 64); err != nil {
		return Row{}, fmt.Errorf("%s: %w", ColRecursiveMs, err)
	}
	if row.IterativeMs, err = strconv.ParseFloat(field(ColIterativeMs), 64); err != nil {
		return Row{}, fmt.Errorf("%s: %w", ColIterativeMs, err)
	}
	if row.RecursiveComparisons, err = parseCount(field(ColRecursiveComparisons)); err != nil {
		return Row{}, fmt.Errorf("%s: %w", ColRecursiveComparisons, err)
	}
	if row.IterativeComparisons, err = parseCount(field(ColIterativeComparisons)); err != nil {
		return Row{}, fmt.Errorf("%s: %w", ColIterativeComparisons, err)
	}
	if row.OverheadPercent, err = strconv.ParseFloat(field(ColOverheadPercent), 64); err != nil {
		return Row{}, fmt.Errorf("%s: %w", ColOverheadPercent, err)
	}
	row.Winner = field(ColWinner)

	return row, nil
}

// parseCount accepts integers, including integral values written as floats
// ("10000.0") by spreadsheet round trips.
func parseCount(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int64(f), nil
}
