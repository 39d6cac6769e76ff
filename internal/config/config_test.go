package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/dial/internal/testutils"
	"github.com/aretw0/dial/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	return testutils.WriteFile(t, t.TempDir(), name, content)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "dial.yaml", "perimeter: 40\nstart: 0\nformat: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Perimeter: 40, Start: 0, LogLevel: "info", Format: FormatJSON}, cfg)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "dial.json", `{"perimeter": 12, "start": 3}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Perimeter)
	assert.Equal(t, 3, cfg.Start)
}

func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, "dial.hcl", "perimeter = 60\nlog_level = \"debug\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Perimeter)
	assert.Equal(t, 50, cfg.Start)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoad_HCLUnknownAttribute(t *testing.T) {
	path := writeFile(t, "dial.hcl", "radius = 3\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownYAMLKey(t *testing.T) {
	path := writeFile(t, "dial.yaml", "perimeter: 100\nradius: 3\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radius")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"start outside dial", "perimeter: 10\nstart: 10\n", domain.ErrInvalidStart},
		{"zero perimeter", "perimeter: 0\nstart: 0\n", domain.ErrInvalidPerimeter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "dial.yaml", tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Load(writeFile(t, "dial.yaml", "format: xml\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "dial.yaml", "log_level: loud\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("start: 7\n"), 0644))
	cfg, err = LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Start)
}

func TestOverride(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Override(map[string]any{"perimeter": 8, "start": 2}))
	assert.Equal(t, 8, cfg.Perimeter)
	assert.Equal(t, 2, cfg.Start)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Error(t, cfg.Override(map[string]any{"bogus": true}))
}
