package models

import (
	"time"

	"gorm.io/gorm"
)

// StockHistory запись об изменении количества товара
type StockHistory struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ItemID         uint      `json:"item_id" gorm:"not null;index"`
	Date           time.Time `json:"date" gorm:"not null;index"`
	QuantityChange int       `json:"quantity_change" gorm:"not null"`
	Description    string    `json:"description" gorm:"size:200"`

	// Связи
	Item *StockItem `json:"item,omitempty" gorm:"foreignKey:ItemID"`
}

// TableName задает имя таблицы
func (StockHistory) TableName() string {
	return "stock_history"
}

// BeforeCreate хук для установки даты записи в UTC
func (h *StockHistory) BeforeCreate(tx *gorm.DB) error {
	if h.Date.IsZero() {
		h.Date = time.Now().UTC()
	}
	return nil
}
