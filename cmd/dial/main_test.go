package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/dial/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	input := testutils.WriteFile(t, dir, "input.txt", "L68\nL30\nR48\n")

	out, err := execute(t, "", "run", "--quiet", "--config", filepath.Join(dir, "none.yaml"), input)
	require.Error(t, err, "explicit config must exist")

	cfg := testutils.WriteFile(t, dir, "dial.yaml", "perimeter: 100\nstart: 50\n")

	out, err = execute(t, "", "run", "--quiet", "--config", cfg, input)
	require.NoError(t, err)
	assert.Equal(t, "commands=3 landed_on_zero=1 zero_crossings=2 final_position=0\n", out)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "R1\nX2\n", "validate")
	assert.Error(t, err)
	assert.Contains(t, out, "line 2:")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dial version "))
}
