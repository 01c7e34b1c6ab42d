package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"stockpilot/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB создает тестовую базу данных в памяти.
// Одно соединение, иначе каждое новое получит пустую базу.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(models.SQLiteDSN(":memory:")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.Migrate(db))
	return db
}

// setupTestApp создает приложение поверх тестовой базы
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := setupTestDB(t)
	return newApp(db, zap.NewNop(), AppOptions{}), db
}

// createTestItem создает товар напрямую в базе
func createTestItem(t *testing.T, db *gorm.DB, name string, quantity, threshold int, price string) models.StockItem {
	item := models.StockItem{Name: name, Quantity: quantity, LowStockThreshold: threshold}
	if price != "" {
		item.PurchasePrice = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// postForm отправляет форму в приложение
func postForm(t *testing.T, app *fiber.App, target string, values url.Values) *http.Response {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// get выполняет GET запрос и возвращает ответ вместе с телом
func get(t *testing.T, app *fiber.App, target string, cookies ...*http.Cookie) (*http.Response, string) {
	req := httptest.NewRequest("GET", target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func itemForm(name, quantity, threshold string) url.Values {
	return url.Values{
		"name":                {name},
		"quantity":            {quantity},
		"low_stock_threshold": {threshold},
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func indexOf(body, substr string) int {
	return strings.Index(body, substr)
}

func countOf(body, substr string) int {
	return strings.Count(body, substr)
}
