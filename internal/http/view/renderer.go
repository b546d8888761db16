package view

import (
	"embed"
	"html/template"
	"io"

	"phhblog/internal/utils"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const templatesPattern = "templates/*.html"

// Template adapts the embedded html/template set to echo's Renderer.
type Template struct {
	templates *template.Template
}

func NewRenderer() *Template {
	return &Template{
		templates: template.Must(template.New("").
			Funcs(template.FuncMap{
				"epoch":    utils.FormatEpoch,
				"selected": isSelected,
			}).
			ParseFS(templateFS, templatesPattern)),
	}
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func isSelected(tagID *int, id int) bool {
	return tagID != nil && *tagID == id
}
