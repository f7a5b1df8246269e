package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeInput stores content in a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunSuccess(t *testing.T) {
	path := writeInput(t, "2 0\n1 2\n3 4\n5 6\n7 8\n")
	var stdout, stderr strings.Builder

	code := run([]string{path}, strings.NewReader("0 1\n0 1\n1 1 0\n"), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), "Multiplication (Matrix 1 * Matrix 2):\n      19      22\n      43      50\n")
	require.Contains(t, stdout.String(), "Matrix 1 after updating element at (1, 1):\n       4       3\n       2       0\n")
	require.Empty(t, stderr.String())
}

func TestRunMissingArgument(t *testing.T) {
	var stdout, stderr strings.Builder
	require.Equal(t, exitFail, run(nil, strings.NewReader(""), &stdout, &stderr))
	require.Contains(t, stderr.String(), "Error:")
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{filepath.Join(t.TempDir(), "nope.txt")}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, exitFail, code)
	require.Contains(t, stderr.String(), "Error: opening file")
	require.Empty(t, stdout.String())
}

func TestRunInvalidTypeFlag(t *testing.T) {
	path := writeInput(t, "2 7\n1 2 3 4 5 6 7 8\n")
	var stdout, stderr strings.Builder

	code := run([]string{path}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, exitFail, code)
	require.Contains(t, stderr.String(), "invalid type flag")
	require.Contains(t, stderr.String(), `"msg":"demo failed"`)
}

func TestRunIndexOutOfRange(t *testing.T) {
	path := writeInput(t, "2 1\n1 2 3 4 5 6 7 8\n")
	var stdout, stderr strings.Builder

	code := run([]string{path}, strings.NewReader("0 9\n"), &stdout, &stderr)

	require.Equal(t, exitFail, code)
	require.Contains(t, stderr.String(), "index out of range")
}

func TestRunFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SQMATRIX_FIELD_WIDTH", "20")
	path := writeInput(t, "1 1\n0.123456789\n1\n")
	var stdout, stderr strings.Builder

	code := run([]string{"--width", "6", "--precision", "2", "-v", path}, strings.NewReader("0 0\n0 0\n0 0 1\n"), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), "Matrix 1:\n  0.12\n")
	require.Contains(t, stderr.String(), `"msg":"starting demo"`) // debug enabled by -v
}

func TestRunEnvWidth(t *testing.T) {
	t.Setenv("SQMATRIX_FIELD_WIDTH", "3")
	path := writeInput(t, "1 0\n5\n6\n")
	var stdout, stderr strings.Builder

	code := run([]string{path}, strings.NewReader("0 0\n0 0\n0 0 1\n"), &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), "Matrix 2:\n  6\n")
}

func TestRunInvalidWidthFlag(t *testing.T) {
	path := writeInput(t, "1 0\n5\n6\n")
	var stdout, stderr strings.Builder

	code := run([]string{"--width", "0", path}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, exitFail, code)
	require.Contains(t, stderr.String(), "invalid value")
}
