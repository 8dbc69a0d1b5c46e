package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "mergebench/internal/errors"
)

// Record is one monthly inpatient disease entry of the benchmark dataset
type Record struct {
	Month   string
	Year    int
	Ranking int
	ICD     string
	Disease string
	Total   int
}

// minFields is month;year;ranking;icd;description;total
const minFields = 6

// DefaultDatasetNames are the file names tried by AutoDetect
var DefaultDatasetNames = []string{
	"Data_Penyakit_Rawat Inap_2014-2024.csv",
	"Data_Penyakit_Rawat_Inap_2014-2024.csv",
	"data_penyakit.csv",
}

// DefaultSearchDirs are the folders tried by AutoDetect, in order
var DefaultSearchDirs = []string{
	".",
	"..",
	filepath.Join("..", ".."),
	filepath.Join("bin", "Debug"),
	filepath.Join("bin", "Release"),
}

// AutoDetect returns the first existing dir/name combination
func AutoDetect(dirs, names []string) (string, error) {
	var tried []string
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
			tried = append(tried, path)
		}
	}
	return "", apperrors.DatasetNotFound(tried)
}

// LoadDataset reads the semicolon separated dataset at path
func LoadDataset(path string) ([]Record, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.InputNotFound(path)
	}
	if err != nil {
		return nil, apperrors.InputUnreadable(path, err)
	}
	defer file.Close()

	records, err := ParseDataset(file)
	if err != nil {
		var rErr *apperrors.ReportError
		if errors.As(err, &rErr) {
			return nil, rErr
		}
		return nil, apperrors.InputUnreadable(path, err)
	}
	return records, nil
}

// ParseDataset reads dataset records from r. Lines whose year field is not a
// number (headers, blank or short lines) are skipped.
func ParseDataset(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records []Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, apperrors.InvalidRow(parseErr.Line, parseErr.Err)
			}
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		rec, ok, err := parseRecord(fields)
		if err != nil {
			return nil, apperrors.InvalidRow(line, err)
		}
		if ok {
			records = append(records, rec)
		}
	}

	return records, nil
}

// parseRecord converts one line. ok is false for lines that carry no record.
func parseRecord(fields []string) (rec Record, ok bool, err error) {
	if len(fields) < minFields {
		return Record{}, false, nil
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, false, nil
	}

	ranking, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Record{}, false, fmt.Errorf("ranking: %w", err)
	}
	total, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil {
		return Record{}, false, fmt.Errorf("total: %w", err)
	}

	// descriptions may themselves contain the separator
	desc := strings.Join(fields[4:len(fields)-1], ";")
	desc = strings.ReplaceAll(desc, "\t", " ")

	return Record{
		Month:   strings.TrimSpace(fields[0]),
		Year:    year,
		Ranking: ranking,
		ICD:     strings.TrimSpace(fields[3]),
		Disease: strings.TrimSpace(desc),
		Total:   total,
	}, true, nil
}

var monthNames = []struct {
	names []string
	index int
}{
	{[]string{"januari"}, 1},
	{[]string{"februari"}, 2},
	{[]string{"maret"}, 3},
	{[]string{"april"}, 4},
	{[]string{"mei"}, 5},
	{[]string{"juni"}, 6},
	{[]string{"juli"}, 7},
	{[]string{"agustus"}, 8},
	{[]string{"september"}, 9},
	{[]string{"oktober"}, 10},
	{[]string{"nopember", "november"}, 11},
	{[]string{"desember"}, 12},
}

// MonthIndex maps an Indonesian month name to 1..12, or 0 when unknown.
// Matching is case-insensitive and by substring ("Januari 2014" is 1).
func MonthIndex(month string) int {
	s := strings.ToLower(month)
	for _, m := range monthNames {
		for _, name := range m.names {
			if strings.Contains(s, name) {
				return m.index
			}
		}
	}
	return 0
}

// RecordLess orders records by year, month, descending total, then ranking
func RecordLess(a, b Record) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if ma, mb := MonthIndex(a.Month), MonthIndex(b.Month); ma != mb {
		return ma < mb
	}
	if a.Total != b.Total {
		return a.Total > b.Total
	}
	return a.Ranking < b.Ranking
}
