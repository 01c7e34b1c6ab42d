package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "stockpilot.db", cfg.Database.SQLitePath)
	assert.Empty(t, cfg.Database.URL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("SQLITE_PATH", "")
	// godotenv не перезаписывает заданные переменные; t.Setenv вернет исходные значения
	for _, key := range []string{"PORT", "APP_ENV", "SQLITE_PATH"} {
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nAPP_ENV=production\nSQLITE_PATH=/tmp/stock.db\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/stock.db", cfg.Database.SQLitePath)
}

func TestValidate(t *testing.T) {
	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())

	cfg := &Config{Database: DatabaseConfig{SQLitePath: "x.db"}}
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = "8080"
	assert.NoError(t, cfg.Validate())

	cfg.Database.SQLitePath = ""
	assert.Error(t, cfg.Validate())
}
