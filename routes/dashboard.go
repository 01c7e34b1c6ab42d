package routes

import (
	"stockpilot/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes настраивает маршрут главной страницы
func SetupDashboardRoutes(app *fiber.App, dashboardController *controllers.DashboardController) {
	app.Get("/", dashboardController.GetDashboard)
}
