package config

import (
	"os"
	"path/filepath"
	"testing"

	"catalog-builder/core/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "catalog", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://api.figma.com", cfg.Design.BaseURL)
	assert.Equal(t, 60, cfg.Design.TimeoutSeconds)
	assert.Equal(t, records.SourceHTTP, cfg.Records.Source)
	assert.Equal(t, "name", cfg.Records.KeyColumn)
	assert.Equal(t, 4, cfg.Export.Concurrency)
	assert.Equal(t, "Back Cover", cfg.Export.BackFrame)
	assert.False(t, cfg.Export.Upload)
	assert.False(t, cfg.Database.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("DESIGN_FILE_KEY", "abc123")
	t.Setenv("RECORDS_KEY_COLUMN", "product")
	t.Setenv("EXPORT_CONCURRENCY", "8")
	t.Setenv("EXPORT_UPLOAD", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Design.FileKey)
	assert.Equal(t, "product", cfg.Records.KeyColumn)
	assert.Equal(t, 8, cfg.Export.Concurrency)
	assert.True(t, cfg.Export.Upload)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DESIGN_PAGE=Catalog 2026\nSERVER_PORT=9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644))
	t.Cleanup(func() {
		os.Unsetenv("DESIGN_PAGE")
		os.Unsetenv("SERVER_PORT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "Catalog 2026", cfg.Design.Page)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	t.Run("InvalidSource", func(t *testing.T) {
		cfg := base()
		cfg.Records.Source = "ftp"
		assert.ErrorContains(t, cfg.Validate(), "invalid records source")
	})

	t.Run("DatabaseSourceWithoutDatabase", func(t *testing.T) {
		cfg := base()
		cfg.Records.Source = records.SourceDatabase
		assert.ErrorContains(t, cfg.Validate(), "requires database.enabled")

		cfg.Database.Enabled = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Concurrency", func(t *testing.T) {
		cfg := base()
		cfg.Export.Concurrency = 0
		assert.ErrorContains(t, cfg.Validate(), "concurrency")
	})

	t.Run("Port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = "abc"
		assert.Error(t, cfg.Validate())
	})
}
