package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/glance/internal/pager/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults().Theme, cfg.Theme)
	assert.Equal(t, 4, cfg.TabWidth)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
theme = "nord"
tab_width = 8
wrap = true

[colors]
status_bar = "#123456"

[keys]
quit = "ctrl+q"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.True(t, cfg.Wrap)
	assert.Equal(t, "#123456", cfg.StatusBarColor)
	assert.Equal(t, "ctrl+q", cfg.Keys["quit"])
	assert.False(t, cfg.Mouse)
}

func TestLoad_InvalidTomlIsError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
