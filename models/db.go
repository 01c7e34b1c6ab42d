package models

import (
	"fmt"
	"strings"

	"stockpilot/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB открывает подключение к базе данных.
// При заданном DATABASE_URL используется PostgreSQL, иначе SQLite файл.
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if cfg.URL != "" {
		db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(SQLiteDSN(cfg.SQLitePath)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
	}
	return db, nil
}

// SQLiteDSN добавляет к пути параметр включения внешних ключей,
// без него SQLite игнорирует ON DELETE CASCADE
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// Migrate создает таблицы, если их еще нет
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&StockItem{}, &StockHistory{})
}
