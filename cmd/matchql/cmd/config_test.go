package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchforge/matchquery/internal/match"
)

func TestConfigInit_WritesLoadableTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")

	out, err := executeCommand("config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	// The template must round-trip through the loader with defaults intact.
	cfg, err := match.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, match.DefaultConfig(), cfg)
}

func TestConfigInit_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")

	_, err := executeCommand("config", "init", path)
	require.NoError(t, err)

	_, err = executeCommand("config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand("config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "match.yaml")
		_, err := executeCommand("config", "init", path)
		require.NoError(t, err)

		out, err := executeCommand("config", "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "is valid")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand("config", "validate", filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
