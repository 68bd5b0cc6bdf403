package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"blogsite/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer adapts the embedded template set to echo's Renderer
// interface.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// pageData is the view model handed to every template.
type pageData struct {
	Title string
	User  *models.User // nil when anonymous
	Flash string
	Error string
	Posts []*models.Post
	Post  *models.Post
	// Form holds submitted values so a failed form re-renders with the
	// user's input preserved.
	Form map[string]string
}
