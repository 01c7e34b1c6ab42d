package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold порог низкого остатка по умолчанию.
// Подставляется формой: тег default в GORM заменил бы явный ноль.
const DefaultLowStockThreshold = 5

// StockItem представляет товар на складе
type StockItem struct {
	ID                uint                `json:"id" gorm:"primaryKey"`
	Name              string              `json:"name" gorm:"not null;size:100"`
	Quantity          int                 `json:"quantity" gorm:"not null;default:0"`
	Description       *string             `json:"description" gorm:"type:text"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price" gorm:"type:numeric(10,2)"`
	Supplier          *string             `json:"supplier" gorm:"size:100"`
	LowStockThreshold int                 `json:"low_stock_threshold" gorm:"not null"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`

	// Связи
	History []StockHistory `json:"history,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName задает имя таблицы
func (StockItem) TableName() string {
	return "stock_item"
}

// BeforeCreate хук для установки времени создания
func (s *StockItem) BeforeCreate(tx *gorm.DB) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate хук для обновления времени изменения
func (s *StockItem) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}

// IsLowStock сообщает, опустился ли остаток до порога товара
func (s *StockItem) IsLowStock() bool {
	return s.Quantity <= s.LowStockThreshold
}

// StockValue возвращает стоимость остатка (количество × цена закупки)
func (s *StockItem) StockValue() decimal.Decimal {
	if !s.PurchasePrice.Valid {
		return decimal.Zero
	}
	return s.PurchasePrice.Decimal.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// DescriptionText возвращает описание или пустую строку
func (s *StockItem) DescriptionText() string {
	if s.Description == nil {
		return ""
	}
	return *s.Description
}

// SupplierText возвращает поставщика или пустую строку
func (s *StockItem) SupplierText() string {
	if s.Supplier == nil {
		return ""
	}
	return *s.Supplier
}

// PriceText возвращает цену закупки строкой или пустую строку
func (s *StockItem) PriceText() string {
	if !s.PurchasePrice.Valid {
		return ""
	}
	return s.PurchasePrice.Decimal.String()
}
