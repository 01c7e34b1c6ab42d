package forms

import (
	"strconv"
	"strings"

	"stockpilot/models"
	"stockpilot/services"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// FieldErrors сообщения об ошибках по именам полей формы
type FieldErrors map[string]string

// StockForm сырые значения формы товара.
// Все поля строковые, поэтому разбор тела запроса не падает на некорректных числах.
type StockForm struct {
	Name              string `form:"name"`
	Quantity          string `form:"quantity"`
	Description       string `form:"description"`
	PurchasePrice     string `form:"purchase_price"`
	Supplier          string `form:"supplier"`
	LowStockThreshold string `form:"low_stock_threshold"`
}

// stockFields типизированные значения, которые проверяет validator
type stockFields struct {
	Name              string `validate:"required,max=100"`
	Quantity          *int   `validate:"required,min=0"`
	Supplier          string `validate:"max=100"`
	LowStockThreshold int    `validate:"min=0"`
}

var fieldNames = map[string]string{
	"Name":              "name",
	"Quantity":          "quantity",
	"Supplier":          "supplier",
	"LowStockThreshold": "low_stock_threshold",
}

// NewStockForm возвращает пустую форму с порогом по умолчанию
func NewStockForm() StockForm {
	return StockForm{LowStockThreshold: strconv.Itoa(models.DefaultLowStockThreshold)}
}

// FormFromItem заполняет форму текущими значениями товара
func FormFromItem(item *models.StockItem) StockForm {
	return StockForm{
		Name:              item.Name,
		Quantity:          strconv.Itoa(item.Quantity),
		Description:       item.DescriptionText(),
		PurchasePrice:     item.PriceText(),
		Supplier:          item.SupplierText(),
		LowStockThreshold: strconv.Itoa(item.LowStockThreshold),
	}
}

// Validate разбирает и проверяет значения формы.
// Возвращает либо готовые данные, либо ошибки по полям.
func (f StockForm) Validate() (*services.StockInput, FieldErrors) {
	errs := FieldErrors{}
	fields := stockFields{
		Name:     strings.TrimSpace(f.Name),
		Supplier: strings.TrimSpace(f.Supplier),
	}

	if raw := strings.TrimSpace(f.Quantity); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			errs["quantity"] = "Not a valid integer value."
		} else {
			fields.Quantity = &quantity
		}
	}

	var price *decimal.Decimal
	if raw := strings.TrimSpace(f.PurchasePrice); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		switch {
		case err != nil:
			errs["purchase_price"] = "Not a valid decimal value."
		case parsed.IsNegative():
			errs["purchase_price"] = "Number must be at least 0."
		default:
			price = &parsed
		}
	}

	fields.LowStockThreshold = models.DefaultLowStockThreshold
	if raw := strings.TrimSpace(f.LowStockThreshold); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			errs["low_stock_threshold"] = "Not a valid integer value."
		} else {
			fields.LowStockThreshold = threshold
		}
	}

	if err := validate.Struct(fields); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				name := fieldNames[fe.StructField()]
				if _, exists := errs[name]; !exists {
					errs[name] = messageFor(fe)
				}
			}
		} else {
			errs["form"] = err.Error()
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	input := &services.StockInput{
		Name:              fields.Name,
		Quantity:          *fields.Quantity,
		Description:       optionalText(f.Description),
		Supplier:          optionalText(fields.Supplier),
		LowStockThreshold: fields.LowStockThreshold,
	}
	if price != nil {
		input.PurchasePrice = decimal.NewNullDecimal(*price)
	}
	return input, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return "Number must be at least " + fe.Param() + "."
	case "max":
		return "Field cannot be longer than " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}

func optionalText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
