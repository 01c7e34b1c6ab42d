package controllers

import (
	"errors"
	"strconv"

	"stockpilot/models"
	"stockpilot/services"
	"stockpilot/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// render выполняет страницу и подставляет flash уведомление из сессии
func render(c *fiber.Ctx, flash *utils.Flasher, logger *zap.Logger, name string, data fiber.Map) error {
	if flash != nil {
		notice, err := flash.Pop(c)
		if err != nil {
			logger.Warn("failed to read flash notice", zap.Error(err))
		}
		data["Flash"] = notice
	}
	return c.Render(name, data)
}

// scoped привязывает сервис к транзакции текущего запроса
func scoped(c *fiber.Ctx, stock *services.StockService) *services.StockService {
	if tx := utils.TxFrom(c, nil); tx != nil {
		return stock.WithTx(tx)
	}
	return stock
}

// loadItem получает товар по параметру :id, отсутствующий товар дает 404
func loadItem(c *fiber.Ctx, stock *services.StockService) (*models.StockItem, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, fiber.ErrNotFound
	}

	item, err := stock.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Stock item not found")
		}
		return nil, err
	}
	return item, nil
}
