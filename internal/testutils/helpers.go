package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleCommands is the ten-command walkthrough starting from 50 on a 100-position dial.
// It lands on zero 3 times, visits zero 6 times and ends at 32.
var SampleCommands = []string{"L68", "L30", "R48", "L5", "R60", "L55", "L1", "L99", "R14", "L82"}

// SampleInput is SampleCommands joined one per line.
var SampleInput = strings.Join(SampleCommands, "\n") + "\n"

// WriteFile creates name inside dir with the given content and returns its path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}
