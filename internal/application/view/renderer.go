package view

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer implements echo.Renderer over html/template.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every template matching the glob pattern.
func NewRenderer(pattern string) (*Renderer, error) {
	templates, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
