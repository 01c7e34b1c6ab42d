package reports

import (
	"encoding/csv"
	"strings"
	"testing"

	"stockpilot/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStockReportEmpty(t *testing.T) {
	report, err := GenerateStockReport(nil)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Quantity,Description,Purchase Price,Supplier\n", report)
}

func TestGenerateStockReportRows(t *testing.T) {
	desc := "Hex bolt, M6"
	supplier := "Acme"
	items := []models.StockItem{
		{ID: 2, Name: "Bolt", Quantity: 10, Description: &desc, PurchasePrice: decimal.NewNullDecimal(decimal.RequireFromString("1.25")), Supplier: &supplier},
		{ID: 1, Name: "Nut", Quantity: 0},
	}

	report, err := GenerateStockReport(items)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Quantity,Description,Purchase Price,Supplier", lines[0])
	assert.Equal(t, `2,Bolt,10,"Hex bolt, M6",1.25,Acme`, lines[1])
	assert.Equal(t, "1,Nut,0,,,", lines[2])
}

func TestGenerateStockReportQuoting(t *testing.T) {
	desc := "says \"hi\"\nsecond line"
	items := []models.StockItem{{ID: 7, Name: "Quote", Quantity: 1, Description: &desc}}

	report, err := GenerateStockReport(items)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(report)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"7", "Quote", "1", desc, "", ""}, records[1])
}
