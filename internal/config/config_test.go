package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "square", cfg.Grid)
	assert.Equal(t, "empty", cfg.Edge)
	assert.Equal(t, 0, cfg.MaxLevel)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "morph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: hexagonal\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hexagonal", cfg.Grid)
	assert.Equal(t, "empty", cfg.Edge) // unset field keeps the default
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/morph.yaml")
	assert.Error(t, err)
}
