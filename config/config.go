package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config описывает все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig содержит параметры HTTP сервера
type ServerConfig struct {
	Port          string
	Env           string
	SessionCookie string
}

// DatabaseConfig определяет, к какой базе подключаться.
// Если URL пустой, используется SQLite файл SQLitePath.
type DatabaseConfig struct {
	URL        string
	SQLitePath string
}

// Load читает переменные окружения (и опционально .env файл) и собирает Config
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// .env необязателен
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          getenvWithDefault("PORT", "8080"),
			Env:           getenvWithDefault("APP_ENV", "development"),
			SessionCookie: getenvWithDefault("SESSION_COOKIE", "stockpilot_session"),
		},
		Database: DatabaseConfig{
			URL:        os.Getenv("DATABASE_URL"),
			SQLitePath: getenvWithDefault("SQLITE_PATH", "stockpilot.db"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}
	if c.Database.URL == "" && c.Database.SQLitePath == "" {
		return errors.New("either DATABASE_URL or SQLITE_PATH must be provided")
	}
	return nil
}

// IsProduction сообщает, запущено ли приложение в продакшене
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getenvWithDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
