package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "baseDir: /srv/dummy\ndryRun: true\nlog:\n  timestamps: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/dummy", cfg.BaseDir)
	assert.True(t, cfg.DryRun)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ADDON_DOCS_DIR", "")
	t.Setenv("ADDON_DOCS_DRY_RUN", "")

	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.BaseDir)
	assert.False(t, cfg.DryRun)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseDir: /from/file\n"), 0o644))

	t.Setenv("ADDON_DOCS_DIR", "/from/env")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.BaseDir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}
