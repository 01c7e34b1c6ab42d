package controllers

import (
	"stockpilot/reports"
	"stockpilot/services"

	"github.com/gofiber/fiber/v2"
)

// ReportController отдает отчеты по складу
type ReportController struct {
	stock *services.StockService
}

// NewReportController создает контроллер отчетов
func NewReportController(stock *services.StockService) *ReportController {
	return &ReportController{stock: stock}
}

// GetStockLevels отдает CSV с текущими остатками как файл stock_report.csv
func (rc *ReportController) GetStockLevels(c *fiber.Ctx) error {
	items, err := scoped(c, rc.stock).All()
	if err != nil {
		return err
	}

	report, err := reports.GenerateStockReport(items)
	if err != nil {
		return err
	}

	c.Attachment(reports.ReportFilename)
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.SendString(report)
}
