package errors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a report failure
type Code string

const (
	CodeInputNotFound   Code = "INPUT_NOT_FOUND"
	CodeInputUnreadable Code = "INPUT_UNREADABLE"
	CodeMissingColumn   Code = "MISSING_COLUMN"
	CodeInvalidRow      Code = "INVALID_ROW"
	CodeEmptyTable      Code = "EMPTY_TABLE"
	CodeUnsortedTable   Code = "UNSORTED_TABLE"
	CodeNonPositiveSize Code = "NON_POSITIVE_SIZE"
	CodeZeroDivisor     Code = "ZERO_DIVISOR"
	CodeRenderFailed    Code = "RENDER_FAILED"
	CodeOutputFailed    Code = "OUTPUT_FAILED"
	CodeDatasetNotFound Code = "DATASET_NOT_FOUND"
)

// ReportError is the single error type surfaced by the report and bench pipelines
type ReportError struct {
	Code    Code                   `json:"code"`
	Stage   string                 `json:"stage,omitempty"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *ReportError) Error() string {
	if e == nil {
		return "unknown report error"
	}
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Stage != "" {
		msg = fmt.Sprintf("[%s] %s: %s", e.Code, e.Stage, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ReportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a ReportError with the same code.
// This lets callers match against the sentinel values below with errors.Is.
func (e *ReportError) Is(target error) bool {
	t, ok := target.(*ReportError)
	if !ok || e == nil {
		return false
	}
	return t.Code == e.Code
}

// WithStage returns a copy of the error annotated with the pipeline stage
func (e *ReportError) WithStage(stage string) *ReportError {
	cp := *e
	cp.Stage = stage
	return &cp
}

// Sentinels for errors.Is matching
var (
	ErrInputNotFound   = &ReportError{Code: CodeInputNotFound}
	ErrInputUnreadable = &ReportError{Code: CodeInputUnreadable}
	ErrMissingColumn   = &ReportError{Code: CodeMissingColumn}
	ErrInvalidRow      = &ReportError{Code: CodeInvalidRow}
	ErrEmptyTable      = &ReportError{Code: CodeEmptyTable}
	ErrUnsortedTable   = &ReportError{Code: CodeUnsortedTable}
	ErrNonPositiveSize = &ReportError{Code: CodeNonPositiveSize}
	ErrZeroDivisor     = &ReportError{Code: CodeZeroDivisor}
	ErrRenderFailed    = &ReportError{Code: CodeRenderFailed}
	ErrOutputFailed    = &ReportError{Code: CodeOutputFailed}
	ErrDatasetNotFound = &ReportError{Code: CodeDatasetNotFound}
)

// InputNotFound creates an error for a missing input file
func InputNotFound(path string) *ReportError {
	return &ReportError{
		Code:    CodeInputNotFound,
		Message: fmt.Sprintf("input file %s does not exist", path),
		Context: map[string]interface{}{"path": path},
	}
}

// InputUnreadable wraps an I/O or CSV decoding failure
func InputUnreadable(path string, cause error) *ReportError {
	return &ReportError{
		Code:    CodeInputUnreadable,
		Message: fmt.Sprintf("cannot read %s", path),
		Cause:   cause,
		Context: map[string]interface{}{"path": path},
	}
}

// MissingColumns reports the required columns absent from a header
func MissingColumns(columns []string) *ReportError {
	return &ReportError{
		Code:    CodeMissingColumn,
		Message: fmt.Sprintf("missing required columns %v", columns),
		Context: map[string]interface{}{"columns": columns},
	}
}

// InvalidRow reports a row that failed parsing or validation.
// line is the 1-based line number in the source file.
func InvalidRow(line int, cause error) *ReportError {
	return &ReportError{
		Code:    CodeInvalidRow,
		Message: fmt.Sprintf("invalid row at line %d", line),
		Cause:   cause,
		Context: map[string]interface{}{"line": line},
	}
}

// EmptyTable reports a table without data rows
func EmptyTable() *ReportError {
	return &ReportError{
		Code:    CodeEmptyTable,
		Message: "measurement table has no data rows",
	}
}

// UnsortedTable reports a row whose N is smaller than its predecessor
func UnsortedTable(line int, prev, n int) *ReportError {
	return &ReportError{
		Code:    CodeUnsortedTable,
		Message: fmt.Sprintf("rows must ascend by N: line %d has N=%d after N=%d", line, n, prev),
		Context: map[string]interface{}{"line": line, "n": n, "previous_n": prev},
	}
}

// NonPositiveSize reports a dataset size that cannot feed a logarithm
func NonPositiveSize(n float64) *ReportError {
	return &ReportError{
		Code:    CodeNonPositiveSize,
		Message: fmt.Sprintf("dataset size must be positive, got %g", n),
		Context: map[string]interface{}{"n": n},
	}
}

// ZeroDivisor reports a ratio whose denominator is zero
func ZeroDivisor(quantity string) *ReportError {
	return &ReportError{
		Code:    CodeZeroDivisor,
		Message: fmt.Sprintf("%s is zero", quantity),
		Context: map[string]interface{}{"quantity": quantity},
	}
}

// RenderFailed wraps a plotting failure for the named chart
func RenderFailed(chart string, cause error) *ReportError {
	return &ReportError{
		Code:    CodeRenderFailed,
		Stage:   chart,
		Message: "chart rendering failed",
		Cause:   cause,
	}
}

// OutputFailed wraps a failure writing an artifact
func OutputFailed(path string, cause error) *ReportError {
	return &ReportError{
		Code:    CodeOutputFailed,
		Message: fmt.Sprintf("cannot write %s", path),
		Cause:   cause,
		Context: map[string]interface{}{"path": path},
	}
}

// DatasetNotFound reports that no benchmark dataset could be located
func DatasetNotFound(candidates []string) *ReportError {
	return &ReportError{
		Code:    CodeDatasetNotFound,
		Message: "no dataset file found",
		Context: map[string]interface{}{"candidates": candidates},
	}
}

// GetCode returns the code of a ReportError anywhere in the chain, or "" otherwise
func GetCode(err error) Code {
	var rErr *ReportError
	if errors.As(err, &rErr) {
		return rErr.Code
	}
	return ""
}
