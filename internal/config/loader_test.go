package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heldkarp/internal/config"
)

// isolate points CWD and $HOME at empty directories so no stray
// .heldkarp.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	return dir
}

func writeYAML(t *testing.T, path string, v any) {
	t.Helper()
	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEngine, cfg.Engine)
	assert.Equal(t, config.DefaultMaxN, cfg.MaxN)
	assert.Equal(t, config.DefaultWorkers(), cfg.Workers)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, config.DefaultBenchN, cfg.Bench.N)
	assert.Equal(t, config.DefaultBenchCount, cfg.Bench.Count)
	assert.Equal(t, int64(config.DefaultBenchSeed), cfg.Bench.Seed)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeYAML(t, path, map[string]any{
		"engine": "scalar",
		"max_n":  18,
		"log":    map[string]any{"level": "debug", "format": "json"},
		"bench":  map[string]any{"n": 10, "seed": 99},
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scalar", cfg.Engine)
	assert.Equal(t, 18, cfg.MaxN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Bench.N)
	assert.Equal(t, int64(99), cfg.Bench.Seed)
	assert.Equal(t, config.DefaultBenchCount, cfg.Bench.Count, "unset keys keep defaults")
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	writeYAML(t, filepath.Join(dir, ".heldkarp.yaml"), map[string]any{"workers": 2})

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeYAML(t, path, map[string]any{"max_n": 18, "log": map[string]any{"level": "warn"}})

	t.Setenv("HELDKARP_MAX_N", "12")
	t.Setenv("HELDKARP_LOG_LEVEL", "error")
	t.Setenv("HELDKARP_ENGINE", "vector")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxN)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "vector", cfg.Engine)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("engine: [unclosed\n"), 0o600))
	_, err := config.Load(bad)
	require.ErrorContains(t, err, "read config")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeYAML(t, invalid, map[string]any{"engine": "quantum"})
	_, err = config.Load(invalid)
	require.ErrorIs(t, err, config.ErrInvalidEngine)
	require.ErrorContains(t, err, "validate config")
}
