package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ReportError
		want string
	}{
		{
			name: "code and message",
			err:  EmptyTable(),
			want: "[EMPTY_TABLE] measurement table has no data rows",
		},
		{
			name: "with stage",
			err:  ZeroDivisor("comparison count").WithStage("analyze"),
			want: "[ZERO_DIVISOR] analyze: comparison count is zero",
		},
		{
			name: "with cause",
			err:  InputUnreadable("x.csv", io.ErrUnexpectedEOF),
			want: "[INPUT_UNREADABLE] cannot read x.csv: unexpected EOF",
		},
		{
			name: "nil receiver",
			err:  nil,
			want: "unknown report error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestReportError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", MissingColumns([]string{"Winner"}))

	assert.True(t, errors.Is(wrapped, ErrMissingColumn))
	assert.False(t, errors.Is(wrapped, ErrEmptyTable))
	assert.Equal(t, CodeMissingColumn, GetCode(wrapped))
}

func TestReportError_Unwrap(t *testing.T) {
	err := InvalidRow(3, io.EOF)

	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, 3, err.Context["line"])
}

func TestWithStageDoesNotMutateOriginal(t *testing.T) {
	base := NonPositiveSize(0)
	staged := base.WithStage("calibrate")

	assert.Empty(t, base.Stage)
	assert.Equal(t, "calibrate", staged.Stage)
	assert.Equal(t, base.Code, staged.Code)
}

func TestGetCodeForeignError(t *testing.T) {
	assert.Equal(t, Code(""), GetCode(io.EOF))
	assert.Equal(t, Code(""), GetCode(nil))
}
