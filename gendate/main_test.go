package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCmd(t *testing.T) {
	out, _, err := execute(t, "--timezone", "UTC", "2020-01-15", "15.01.2020 10:30:00", "")
	require.NoError(t, err)
	assert.Contains(t, out, "2020-01-15 00:00:00 +0000 UTC")
	assert.Contains(t, out, "2020-01-15 10:30:00 +0000 UTC")
	assert.Contains(t, out, "dd.MM.yyyy HH:mm:ss")
	assert.Contains(t, out, "no value")
}

func TestRootCmdPatternAndTime(t *testing.T) {
	out, _, err := execute(t, "--timezone", "UTC", "-p", "yyyy-'Q'q", "2020-Q2")
	require.NoError(t, err)
	assert.Contains(t, out, "2020-04-01 00:00:00 +0000 UTC")

	out, _, err = execute(t, "--timezone", "UTC", "--time", "14:05:30")
	require.NoError(t, err)
	assert.Contains(t, out, "1970-01-01 14:05:30 +0000 UTC")
	assert.Contains(t, out, "HH:mm:ss")
}

func TestRootCmdFileAndConfig(t *testing.T) {
	dir := t.TempDir()
	values := filepath.Join(dir, "values.txt")
	require.NoError(t, os.WriteFile(values, []byte("15/01/2020\r\n16/01/2020\n"), 0o600))
	config := filepath.Join(dir, "gendate.yaml")
	require.NoError(t, os.WriteFile(config, []byte("timezone: UTC\n"), 0o600))

	out, _, err := execute(t, "--config", config, "--workers", "1", "--file", values)
	require.NoError(t, err)
	assert.Contains(t, out, "2020-01-15 00:00:00 +0000 UTC")
	assert.Contains(t, out, "2020-01-16 00:00:00 +0000 UTC")
	assert.Contains(t, out, "dd/MM/yyyy")
}

func TestRootCmdFailures(t *testing.T) {
	_, errOut, err := execute(t, "--timezone", "UTC", "2020-01-15", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 values")
	assert.Contains(t, errOut, "not-a-date")

	_, _, err = execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "--timezone", "Mars/Olympus_Mons", "2020-01-15")
	assert.Error(t, err)

	_, _, err = execute(t, "-p", "bogus", "2020-01-15")
	assert.Error(t, err)
}
