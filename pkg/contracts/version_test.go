package contracts

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	assert.Equal(t, "merge-report v"+Version, GetVersionString("merge-report"))
}

func TestGetFullVersionString(t *testing.T) {
	full := GetFullVersionString("merge-bench")

	assert.True(t, strings.HasPrefix(full, "merge-bench v"+Version+" ("))
	assert.Contains(t, full, "go: "+runtime.Version())
	assert.Contains(t, full, "data: "+DataFormatVersion)
}
