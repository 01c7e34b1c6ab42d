package controllers

import (
	"strconv"

	"stockpilot/forms"
	"stockpilot/services"
	"stockpilot/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StockController обрабатывает HTTP запросы для товаров
type StockController struct {
	stock  *services.StockService
	flash  *utils.Flasher
	logger *zap.Logger
}

// NewStockController создает новый контроллер товаров
func NewStockController(stock *services.StockService, flash *utils.Flasher, logger *zap.Logger) *StockController {
	return &StockController{stock: stock, flash: flash, logger: utils.Named(logger, "stock")}
}

// ListItems возвращает список товаров с необязательными фильтрами search и filter_threshold
func (sc *StockController) ListItems(c *fiber.Ctx) error {
	filter := services.StockFilter{Search: c.Query("search")}

	thresholdStr := c.Query("filter_threshold")
	if threshold, err := strconv.Atoi(thresholdStr); err == nil {
		filter.Threshold = &threshold
	} else {
		thresholdStr = ""
	}

	items, err := scoped(c, sc.stock).List(filter)
	if err != nil {
		return err
	}

	return render(c, sc.flash, sc.logger, "stock_list", fiber.Map{
		"Title":           "Stock",
		"Items":           items,
		"Search":          filter.Search,
		"FilterThreshold": thresholdStr,
	})
}

// NewItemForm показывает пустую форму добавления
func (sc *StockController) NewItemForm(c *fiber.Ctx) error {
	return sc.renderForm(c, fiber.StatusOK, "Add Stock Item", "/stock/add", forms.NewStockForm(), forms.FieldErrors{})
}

// CreateItem проверяет форму и добавляет товар
func (sc *StockController) CreateItem(c *fiber.Ctx) error {
	form := bindForm(c)
	input, errs := form.Validate()
	if errs != nil {
		return sc.renderForm(c, fiber.StatusUnprocessableEntity, "Add Stock Item", "/stock/add", form, errs)
	}

	item, err := scoped(c, sc.stock).Create(*input)
	if err != nil {
		return err
	}
	sc.logger.Info("stock item created", zap.Uint("item_id", item.ID), zap.String("name", item.Name))

	if err := sc.flash.Set(c, "success", "Stock item added successfully!"); err != nil {
		return err
	}
	return c.Redirect("/stock")
}

// EditItemForm показывает форму, заполненную текущими значениями товара
func (sc *StockController) EditItemForm(c *fiber.Ctx) error {
	item, err := loadItem(c, scoped(c, sc.stock))
	if err != nil {
		return err
	}
	return sc.renderForm(c, fiber.StatusOK, "Edit "+item.Name, c.Path(), forms.FormFromItem(item), forms.FieldErrors{})
}

// UpdateItem перезаписывает поля товара и фиксирует изменение количества в истории
func (sc *StockController) UpdateItem(c *fiber.Ctx) error {
	stock := scoped(c, sc.stock)
	item, err := loadItem(c, stock)
	if err != nil {
		return err
	}

	form := bindForm(c)
	input, errs := form.Validate()
	if errs != nil {
		return sc.renderForm(c, fiber.StatusUnprocessableEntity, "Edit "+item.Name, c.Path(), form, errs)
	}

	record, err := stock.Update(item, *input)
	if err != nil {
		return err
	}
	if record != nil {
		sc.logger.Info("stock quantity changed",
			zap.Uint("item_id", item.ID),
			zap.Int("quantity_change", record.QuantityChange))
	}

	if err := sc.flash.Set(c, "success", "Stock item updated successfully!"); err != nil {
		return err
	}
	return c.Redirect("/stock")
}

// DeleteItem удаляет товар без подтверждения вместе с его историей
func (sc *StockController) DeleteItem(c *fiber.Ctx) error {
	stock := scoped(c, sc.stock)
	item, err := loadItem(c, stock)
	if err != nil {
		return err
	}

	if err := stock.Delete(item); err != nil {
		return err
	}
	sc.logger.Info("stock item deleted", zap.Uint("item_id", item.ID))

	if err := sc.flash.Set(c, "success", "Stock item deleted successfully!"); err != nil {
		return err
	}
	return c.Redirect("/stock")
}

// GetHistory показывает историю изменений товара, новые записи первыми
func (sc *StockController) GetHistory(c *fiber.Ctx) error {
	stock := scoped(c, sc.stock)
	item, err := loadItem(c, stock)
	if err != nil {
		return err
	}

	history, err := stock.History(item.ID)
	if err != nil {
		return err
	}

	return render(c, sc.flash, sc.logger, "history", fiber.Map{
		"Title":   "History of " + item.Name,
		"Item":    item,
		"History": history,
	})
}

func (sc *StockController) renderForm(c *fiber.Ctx, status int, title, action string, form forms.StockForm, errs forms.FieldErrors) error {
	c.Status(status)
	return render(c, sc.flash, sc.logger, "stock_form", fiber.Map{
		"Title":  title,
		"Action": action,
		"Form":   form,
		"Errors": errs,
	})
}

// bindForm разбирает тело запроса; при ошибке разбора форма остается пустой
// и валидация вернет ошибки по обязательным полям
func bindForm(c *fiber.Ctx) forms.StockForm {
	var form forms.StockForm
	if err := c.BodyParser(&form); err != nil {
		return forms.StockForm{}
	}
	return form
}
