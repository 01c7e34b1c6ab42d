package controllers

import (
	"stockpilot/services"
	"stockpilot/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardController контроллер главной страницы
type DashboardController struct {
	stock  *services.StockService
	flash  *utils.Flasher
	logger *zap.Logger
}

// NewDashboardController создает новый экземпляр DashboardController
func NewDashboardController(stock *services.StockService, flash *utils.Flasher, logger *zap.Logger) *DashboardController {
	return &DashboardController{stock: stock, flash: flash, logger: utils.Named(logger, "dashboard")}
}

// GetDashboard показывает сводку: количество товаров, низкие остатки,
// последние изменения и общую стоимость склада
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	stats, err := scoped(c, dc.stock).Dashboard()
	if err != nil {
		return err
	}

	return render(c, dc.flash, dc.logger, "dashboard", fiber.Map{
		"Title": "Dashboard",
		"Stats": stats,
	})
}
