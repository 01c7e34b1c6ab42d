package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	flashMessageKey  = "flash_message"
	flashCategoryKey = "flash_category"
)

// Flash одноразовое уведомление для следующей страницы
type Flash struct {
	Category string
	Message  string
}

// Flasher хранит уведомления в сессии
type Flasher struct {
	store *session.Store
}

// NewFlasher создает Flasher поверх хранилища сессий
func NewFlasher(store *session.Store) *Flasher {
	return &Flasher{store: store}
}

// Set сохраняет уведомление в сессии
func (f *Flasher) Set(c *fiber.Ctx, category, message string) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(flashCategoryKey, category)
	sess.Set(flashMessageKey, message)
	return sess.Save()
}

// Pop возвращает сохраненное уведомление и удаляет его из сессии
func (f *Flasher) Pop(c *fiber.Ctx) (*Flash, error) {
	sess, err := f.store.Get(c)
	if err != nil {
		return nil, err
	}

	message, _ := sess.Get(flashMessageKey).(string)
	if message == "" {
		return nil, nil
	}
	category, _ := sess.Get(flashCategoryKey).(string)

	sess.Delete(flashMessageKey)
	sess.Delete(flashCategoryKey)
	if err := sess.Save(); err != nil {
		return nil, err
	}

	return &Flash{Category: category, Message: message}, nil
}
