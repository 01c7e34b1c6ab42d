package routes

import (
	"stockpilot/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupStockRoutes настраивает маршруты для товаров
func SetupStockRoutes(app *fiber.App, stockController *controllers.StockController) {
	stock := app.Group("/stock")

	// GET /stock?search=&filter_threshold= - список товаров
	stock.Get("/", stockController.ListItems)

	// GET, POST /stock/add - добавление товара
	stock.Get("/add", stockController.NewItemForm)
	stock.Post("/add", stockController.CreateItem)

	// GET, POST /stock/edit/:id - редактирование товара
	stock.Get("/edit/:id", stockController.EditItemForm)
	stock.Post("/edit/:id", stockController.UpdateItem)

	// GET, POST /stock/delete/:id - удаление товара; GET сохранен для совместимости со старыми ссылками
	stock.Get("/delete/:id", stockController.DeleteItem)
	stock.Post("/delete/:id", stockController.DeleteItem)

	// GET /stock/history/:id - история изменений товара
	stock.Get("/history/:id", stockController.GetHistory)
}
