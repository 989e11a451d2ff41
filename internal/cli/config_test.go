package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func clearPantryEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PANTRY_BACKEND", "PANTRY_FILE", "PANTRY_LOW_STOCK_THRESHOLD", "PANTRY_LOG_LEVEL", "PANTRY_DATA_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearPantryEnv(t)

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfig_FileValues(t *testing.T) {
	clearPantryEnv(t)
	dir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /srv/pantry\nfile: stock.db\nlow_stock_threshold: 3\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.Config{
		Backend:           types.BackendSQLite,
		DataDir:           "/srv/pantry",
		File:              "stock.db",
		LowStockThreshold: 3,
		LogLevel:          "debug",
	}, cfg)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearPantryEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("low_stock_threshold: 3\n"), 0o644))
	t.Setenv("PANTRY_LOW_STOCK_THRESHOLD", "8")
	t.Setenv("PANTRY_BACKEND", "sqlite")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.LowStockThreshold)
	assert.Equal(t, types.BackendSQLite, cfg.Backend)
}

func TestLoadConfig_DataDirEnvIgnored(t *testing.T) {
	clearPantryEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("data_dir: /from/config\n"), 0o644))
	t.Setenv("PANTRY_DATA_DIR", "/from/env")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/from/config", cfg.DataDir)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearPantryEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: [json\n"), 0o644))

	_, err := loadConfig(dir)
	assert.Error(t, err)
}

func TestWriteConfigIfMissing(t *testing.T) {
	clearPantryEnv(t)
	dir := t.TempDir()
	cfg := types.DefaultConfig()
	cfg.LowStockThreshold = 7

	written, err := writeConfigIfMissing(dir, cfg)
	require.NoError(t, err)
	assert.True(t, written)

	loaded, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	written, err = writeConfigIfMissing(dir, types.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, written, "existing config must be kept")

	loaded, err = loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.LowStockThreshold)
}
