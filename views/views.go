package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Engine реализует fiber.Views поверх html/template и встроенных шаблонов.
// Каждая страница парсится вместе с общим layout.
type Engine struct {
	templates map[string]*template.Template
}

// New создает движок шаблонов; шаблоны загружаются в Load
func New() *Engine {
	return &Engine{}
}

// Load парсит все страницы из встроенной файловой системы
func (e *Engine) Load() error {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return err
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		if page == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(page), ".html")
		tmpl, err := template.New(path.Base(layoutFile)).Funcs(funcMap).ParseFS(templateFS, layoutFile, page)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	e.templates = templates
	return nil
}

// Render выполняет страницу name внутри общего layout
func (e *Engine) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if e.templates == nil {
		if err := e.Load(); err != nil {
			return err
		}
	}

	tmpl, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, path.Base(layoutFile), data)
}

var funcMap = template.FuncMap{
	"money": func(value decimal.Decimal) string {
		return value.StringFixed(2)
	},
	"datetime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
	"signed": func(n int) string {
		if n > 0 {
			return fmt.Sprintf("+%d", n)
		}
		return fmt.Sprintf("%d", n)
	},
}
