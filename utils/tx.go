package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const txLocalsKey = "db_tx"

// Transaction открывает транзакцию на время запроса.
// Если обработчик вернул ошибку, транзакция откатывается, иначе фиксируется.
func Transaction(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			c.Locals(txLocalsKey, tx)
			return c.Next()
		})
	}
}

// TxFrom возвращает транзакцию текущего запроса или fallback, если middleware не подключен
func TxFrom(c *fiber.Ctx, fallback *gorm.DB) *gorm.DB {
	if tx, ok := c.Locals(txLocalsKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}
