package echoweb

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/shule/core/school"
)

//go:embed templates/*.html
var templateFiles embed.FS

type renderer struct {
	tpl *template.Template
}

var _ echo.Renderer = (*renderer)(nil)

func newRenderer() *renderer {
	tpl := template.New("").Funcs(template.FuncMap{
		"grade": school.GradeFor,
	})
	return &renderer{tpl: template.Must(tpl.ParseFS(templateFiles, "templates/*.html"))}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}
