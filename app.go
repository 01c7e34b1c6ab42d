package main

import (
	"errors"
	"net/http"
	"time"

	"stockpilot/controllers"
	"stockpilot/routes"
	"stockpilot/services"
	"stockpilot/utils"
	"stockpilot/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppOptions параметры сборки Fiber приложения
type AppOptions struct {
	SessionCookie string
	AccessLog     bool
}

// newApp собирает Fiber приложение со всеми маршрутами
func newApp(db *gorm.DB, log *zap.Logger, opts AppOptions) *fiber.App {
	httpLog := utils.Named(log, "http")

	app := fiber.New(fiber.Config{
		Views:        views.New(),
		ErrorHandler: errorHandler(httpLog),
	})

	// Middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	cookieName := opts.SessionCookie
	if cookieName == "" {
		cookieName = "stockpilot_session"
	}
	flasher := utils.NewFlasher(session.New(session.Config{
		KeyLookup:      "cookie:" + cookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}))

	// Общий health check endpoint, вне транзакции
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "StockPilot is running",
			"timestamp": time.Now().Unix(),
		})
	})

	// Каждый запрос выполняется в одной транзакции
	app.Use(utils.Transaction(db))

	// Инициализация контроллеров
	stockService := services.NewStockService(db)
	dashboardController := controllers.NewDashboardController(stockService, flasher, log)
	stockController := controllers.NewStockController(stockService, flasher, log)
	reportController := controllers.NewReportController(stockService)

	// Настройка маршрутов
	routes.SetupDashboardRoutes(app, dashboardController)
	routes.SetupStockRoutes(app, stockController)
	routes.SetupReportRoutes(app, reportController)

	return app
}

// errorHandler отображает страницу ошибки; ошибки 5xx пишутся в лог
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		message := err.Error()
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
			message = http.StatusText(code)
		}

		c.Status(code)
		renderErr := c.Render("error", fiber.Map{
			"Title":   http.StatusText(code),
			"Code":    code,
			"Message": message,
		})
		if renderErr != nil {
			return c.SendString(message)
		}
		return nil
	}
}
