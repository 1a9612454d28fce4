package simplelogger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogf_WritesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "celldiff.log")
	t.Setenv("CELLDIFF_LOG_FILE", path)

	require.True(t, Enabled())
	Logf("hello %s", "world")
	Logf("row %d", 123)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "hello world"))
	require.True(t, strings.HasSuffix(lines[1], "row 123"))
}

func TestLogf_NoOpWhenUnset(t *testing.T) {
	t.Setenv("CELLDIFF_LOG_FILE", "")
	require.False(t, Enabled())
	Logf("should not %s", "panic")
}

func TestLogf_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CELLDIFF_LOG_FILE", dir)

	Logf("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
