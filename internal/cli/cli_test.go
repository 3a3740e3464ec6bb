package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and logs.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func TestHistogramCommand(t *testing.T) {
	out, logs, err := execute(t, "", "histogram", "2", "1", "5,6", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "area=10 bars=2..3 height=5\n", out)
	assert.Contains(t, logs, "histogram solved")

	out, _, err = execute(t, "0 0\n", "histogram", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "area=0\n", out)
}

func TestHistogramCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "", "histogram")
	assert.ErrorIs(t, err, errNoInput)

	_, _, err = execute(t, "", "histogram", "1", "x")
	assert.ErrorContains(t, err, `parse "x"`)

	_, _, err = execute(t, "", "histogram", "--", "1", "-3")
	assert.ErrorContains(t, err, "non-negative")
}

func TestMaximalCommand(t *testing.T) {
	out, _, err := execute(t, "", "maximal", "10100", "10111", "11111", "10010", "--show", "-w", "3")
	require.NoError(t, err)
	assert.Equal(t, "area=6 rows=1..2 cols=2..4\n"+
		"1.1..\n"+
		"1.###\n"+
		"11###\n"+
		"1..1.\n", out)

	out, _, err = execute(t, "000\n000\n", "maximal", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "area=0\n", out)
}

// TestMaximalCommand_EmptyInput treats a file without rows as an empty
// matrix (area 0), the same answer the case runner gives.
func TestMaximalCommand_EmptyInput(t *testing.T) {
	for _, stdin := range []string{"", "# only comment\n", "\n\n"} {
		out, _, err := execute(t, stdin, "maximal", "-f", "-", "--show")
		require.NoErrorf(t, err, "stdin %q", stdin)
		assert.Equalf(t, "area=0\n", out, "stdin %q", stdin)
	}
}

func TestMaximalCommand_NumericFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("# threshold 2\n0 2 3\n5 4 2\n"), 0o600))

	out, _, err := execute(t, "", "maximal", "--numeric", "--threshold", "2", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "area=4 rows=0..1 cols=1..2\n", out)
}

func TestMaximalCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "", "maximal", "101", "10")
	assert.ErrorContains(t, err, "same length")

	_, _, err = execute(t, "", "maximal", "1a")
	assert.ErrorContains(t, err, "marker")

	_, _, err = execute(t, "", "maximal", "-f", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestZerofillCommand(t *testing.T) {
	out, _, err := execute(t, "", "zerofill", "1", "3", "0", "0", "2", "0", "0", "4", "--runs")
	require.NoError(t, err)
	assert.Equal(t, "count=6\n"+
		"run start=2 length=2 subarrays=3\n"+
		"run start=5 length=2 subarrays=3\n", out)
}

func TestRunCommand(t *testing.T) {
	suite := filepath.Join("..", "cases", "testdata", "leetcode.toml")
	out, logs, err := execute(t, "", "run", suite, "--workers", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "leetcode-84")
	assert.Contains(t, out, "leetcode-85")
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, logs, "workers=4")
}

func TestRunCommand_Failing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[histogram]]
name = "off by one"
heights = [2, 4]
expect = 5
`), 0o600))

	out, _, err := execute(t, "", "run", path)
	require.ErrorIs(t, err, ErrCasesFailed)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "off by one")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "skyline 1.0.0")
	assert.Contains(t, out, "commit: abc123")
}
