package services

import (
	"errors"
	"fmt"

	"stockpilot/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда товар не найден
var ErrNotFound = errors.New("stock item not found")

// EditHistoryNote описание записи истории, создаваемой при редактировании
const EditHistoryNote = "Quantity updated via edit form."

// RecentHistoryLimit количество последних записей истории на дашборде
const RecentHistoryLimit = 5

// StockFilter необязательные фильтры списка товаров
type StockFilter struct {
	Search    string
	Threshold *int
}

// StockInput проверенные значения формы товара
type StockInput struct {
	Name              string
	Quantity          int
	Description       *string
	PurchasePrice     decimal.NullDecimal
	Supplier          *string
	LowStockThreshold int
}

// DashboardStats сводка для главной страницы
type DashboardStats struct {
	TotalItems    int64
	LowStockItems int64
	RecentHistory []models.StockHistory
	TotalValue    decimal.Decimal
}

// StockService предоставляет методы для работы с товарами и историей
type StockService struct {
	db *gorm.DB
}

// NewStockService создает новый сервис товаров
func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// WithTx возвращает копию сервиса, работающую внутри транзакции
func (s *StockService) WithTx(tx *gorm.DB) *StockService {
	return &StockService{db: tx}
}

// Create добавляет новый товар
func (s *StockService) Create(input StockInput) (*models.StockItem, error) {
	item := models.StockItem{}
	applyInput(&item, input)

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create stock item: %w", err)
	}
	return &item, nil
}

// Get возвращает товар по ID
func (s *StockService) Get(id uint) (*models.StockItem, error) {
	var item models.StockItem
	err := s.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get stock item %d: %w", id, err)
	}
	return &item, nil
}

// List возвращает товары, удовлетворяющие всем заданным фильтрам
func (s *StockService) List(filter StockFilter) ([]models.StockItem, error) {
	query := s.db.Model(&models.StockItem{})
	for _, predicate := range filter.predicates() {
		query = query.Where(predicate.clause, predicate.args...)
	}

	var items []models.StockItem
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	return items, nil
}

// All возвращает все товары в порядке ID
func (s *StockService) All() ([]models.StockItem, error) {
	return s.List(StockFilter{})
}

// Update перезаписывает поля товара. При изменении количества создается
// запись истории с разницей нового и старого значения.
func (s *StockService) Update(item *models.StockItem, input StockInput) (*models.StockHistory, error) {
	originalQuantity := item.Quantity
	applyInput(item, input)

	// Save записывает все поля, включая нулевые и NULL
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update stock item %d: %w", item.ID, err)
	}

	change := item.Quantity - originalQuantity
	if change == 0 {
		return nil, nil
	}

	record := models.StockHistory{
		ItemID:         item.ID,
		QuantityChange: change,
		Description:    EditHistoryNote,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("record stock history for item %d: %w", item.ID, err)
	}
	return &record, nil
}

// Delete удаляет товар вместе с его историей
func (s *StockService) Delete(item *models.StockItem) error {
	if err := s.db.Where("item_id = ?", item.ID).Delete(&models.StockHistory{}).Error; err != nil {
		return fmt.Errorf("delete history of stock item %d: %w", item.ID, err)
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("delete stock item %d: %w", item.ID, err)
	}
	return nil
}

// History возвращает историю товара, новые записи первыми
func (s *StockService) History(itemID uint) ([]models.StockHistory, error) {
	var history []models.StockHistory
	err := s.db.Where("item_id = ?", itemID).
		Order("date DESC, id DESC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("get history of stock item %d: %w", itemID, err)
	}
	return history, nil
}

// Dashboard собирает статистику для главной страницы
func (s *StockService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.StockItem{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, fmt.Errorf("count stock items: %w", err)
	}

	// Порог у каждого товара свой
	err := s.db.Model(&models.StockItem{}).
		Where("quantity <= low_stock_threshold").
		Count(&stats.LowStockItems).Error
	if err != nil {
		return nil, fmt.Errorf("count low stock items: %w", err)
	}

	err = s.db.Preload("Item").
		Order("date DESC, id DESC").
		Limit(RecentHistoryLimit).
		Find(&stats.RecentHistory).Error
	if err != nil {
		return nil, fmt.Errorf("get recent history: %w", err)
	}

	// SUM по пустой таблице возвращает NULL, что означает ноль
	var total decimal.NullDecimal
	err = s.db.Model(&models.StockItem{}).
		Select("SUM(quantity * purchase_price)").
		Row().Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("sum stock value: %w", err)
	}
	stats.TotalValue = decimal.Zero
	if total.Valid {
		stats.TotalValue = total.Decimal
	}

	return stats, nil
}

type predicate struct {
	clause string
	args   []interface{}
}

func (f StockFilter) predicates() []predicate {
	var predicates []predicate

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		predicates = append(predicates, predicate{
			clause: "(name LIKE ? OR description LIKE ? OR CAST(id AS TEXT) LIKE ?)",
			args:   []interface{}{pattern, pattern, pattern},
		})
	}

	if f.Threshold != nil {
		predicates = append(predicates, predicate{
			clause: "quantity <= ?",
			args:   []interface{}{*f.Threshold},
		})
	}

	return predicates
}

func applyInput(item *models.StockItem, input StockInput) {
	item.Name = input.Name
	item.Quantity = input.Quantity
	item.Description = input.Description
	item.PurchasePrice = input.PurchasePrice
	item.Supplier = input.Supplier
	item.LowStockThreshold = input.LowStockThreshold
}
