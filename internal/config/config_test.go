package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", tmp)
	return tmp
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, []string{"main", "master", "develop"}, cfg.ProtectedBranches)
	assert.Equal(t, 10, cfg.LogCount)
	assert.True(t, cfg.AutoPush)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "config.yaml")
	data := []byte(`remote: upstream
protected_branches:
  - main
  - trunk
log_count: 25
auto_push: false
timeout: 45s
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, []string{"main", "trunk"}, cfg.ProtectedBranches)
	assert.Equal(t, 25, cfg.LogCount)
	assert.False(t, cfg.AutoPush)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remote: upstream\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, 10, cfg.LogCount)
	assert.Equal(t, []string{"main", "master", "develop"}, cfg.ProtectedBranches)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("GITFLOW_REMOTE", "fork")
	t.Setenv("GITFLOW_LOG_COUNT", "3")
	t.Setenv("GITFLOW_AUTO_PUSH", "false")
	t.Setenv("GITFLOW_TIMEOUT_SECONDS", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "fork", cfg.Remote)
	assert.Equal(t, 3, cfg.LogCount)
	assert.False(t, cfg.AutoPush)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}
