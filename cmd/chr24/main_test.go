package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markerscan/stats/scanner"
)

func writeMarkers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genome.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithLog(t, args...)
	return out, err
}

func executeWithLog(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"TARGET_CHROMOSOME", "EMPTY_VALUE", "MALFORMED_POLICY", "MALE_THRESHOLD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env", ""}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunPrintsSummary(t *testing.T) {
	path := writeMarkers(t, "#comment line\nchr1 24 x 0\nchr1 24 x 5\nchr1 23 x 0\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "1/2\n", out)
}

func TestRunCommentsOnly(t *testing.T) {
	out, err := execute(t, writeMarkers(t, "#a\n#b\n"))
	require.NoError(t, err)
	assert.Equal(t, "0/0\n", out)
}

func TestRunMalformedProducesNoOutput(t *testing.T) {
	out, err := execute(t, writeMarkers(t, "rs1 24 1 0\nfoo 24\n"))
	assert.ErrorIs(t, err, scanner.ErrMalformedRecord)
	assert.Empty(t, out)
}

func TestRunSkipFlag(t *testing.T) {
	path := writeMarkers(t, "rs1 24 1 0\nfoo 24\n")
	out, logs, err := executeWithLog(t, "--on-malformed", "skip", "--sex", path)
	require.NoError(t, err)
	assert.Equal(t, "1/1\n", out)

	lines := strings.Split(strings.TrimSpace(logs), "\n")
	require.Len(t, lines, 3)
	runID := lines[0][:strings.Index(lines[0], "]")+1]
	assert.True(t, strings.HasPrefix(runID, "[chr24 "))
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, runID+" "+path+": "), line)
	}
	assert.Contains(t, lines[0], "skip line 2")
	assert.Contains(t, lines[1], "skipped 1 malformed lines")
	assert.Contains(t, lines[2], "sex female")
}

func TestRunMissingFile(t *testing.T) {
	out, err := execute(t, filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, scanner.ErrInputUnavailable)
	assert.Empty(t, out)
}

func TestRunRequiresOnePath(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "a.txt", "b.txt")
	assert.Error(t, err)
}
