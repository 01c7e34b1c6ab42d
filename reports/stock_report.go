package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"stockpilot/models"
)

// ReportFilename имя файла отчета при скачивании
const ReportFilename = "stock_report.csv"

// StockReportHeader заголовок CSV отчета
var StockReportHeader = []string{"ID", "Name", "Quantity", "Description", "Purchase Price", "Supplier"}

// GenerateStockReport формирует CSV с текущими остатками в порядке входных товаров
func GenerateStockReport(items []models.StockItem) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(StockReportHeader); err != nil {
		return "", err
	}

	for i := range items {
		item := &items[i]
		row := []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			strconv.Itoa(item.Quantity),
			item.DescriptionText(),
			item.PriceText(),
			item.SupplierText(),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
