// Package view renders the HTML pages and turns service outcomes into a
// flash message plus redirect.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"fazenda/entities"
	"fazenda/pkg/flash"
	"fazenda/pkg/middleware"
)

//go:embed templates/*.html
var files embed.FS

const layout = "templates/layout.html"

// Data is the template payload of a page.
type Data map[string]any

// Renderer implements echo.Renderer over the embedded templates. Every page
// is parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(d *entities.Date) string {
		if d == nil {
			return ""
		}
		return d.String()
	},
	"area": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"opt": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range names {
		if name == layout {
			continue
		}
		page := strings.TrimSuffix(path.Base(name), ".html")
		t, err := template.New(page).Funcs(funcs).ParseFS(files, layout, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Render fills the values every page uses and renders name.
func Render(c echo.Context, status int, name string, data Data) error {
	if data == nil {
		data = Data{}
	}
	data["Flash"] = flash.Pop(c)
	data["User"] = middleware.CurrentUser(c)
	data["CSRF"], _ = c.Get(echoMiddleware.DefaultCSRFConfig.ContextKey).(string)
	if _, ok := data["ShowMenu"]; !ok {
		data["ShowMenu"] = true
	}
	return c.Render(status, name, data)
}
