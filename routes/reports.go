package routes

import (
	"stockpilot/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes настраивает маршруты отчетов
func SetupReportRoutes(app *fiber.App, reportController *controllers.ReportController) {
	reports := app.Group("/reports")

	// GET /reports/stock_levels - CSV с текущими остатками
	reports.Get("/stock_levels", reportController.GetStockLevels)
}
