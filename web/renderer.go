package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	invservices "github.com/escom/enfermeria-web/internal/inventario/services"
	pacservices "github.com/escom/enfermeria-web/internal/pacientes/services"
	recservices "github.com/escom/enfermeria-web/internal/recetas/services"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implementa echo.Renderer sobre las plantillas embebidas. Cada
// página es un archivo completo; nav.html define el parcial compartido.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcMap()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parseando plantillas: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// funcMap expone las reglas de presentación puras a las plantillas. Las
// funciones de caducidad fijan "ahora" al momento del render.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"stockClass": invservices.StockStatusClass,
		"diasParaCaducar": func(fecha string) int {
			return invservices.DiasParaCaducar(fecha, time.Now())
		},
		"prontoACaducar": func(fecha string) bool {
			return invservices.ProntoACaducar(fecha, time.Now())
		},
		"estadoMostrado": func(estado, fecha string) string {
			return invservices.EstadoMostrado(estado, fecha, time.Now())
		},
		"medEstadoText":  invservices.MedicamentoEstadoText,
		"medEstadoClass": invservices.MedicamentoEstadoClass,
		"matEstadoText":  invservices.MaterialEstadoText,
		"matEstadoClass": invservices.MaterialEstadoClass,
		"fechaInput":     invservices.FormatDateForInput,
		"edadClass":      pacservices.EdadClass,
		"recEstadoText":  recservices.EstadoText,
		"recEstadoClass": recservices.EstadoClass,
		"recFecha":       recservices.FormatDate,
		"precio": func(p float64) string {
			return fmt.Sprintf("$%.2f", p)
		},
		"medSeleccionado": func(sel *int, id int) bool {
			return sel != nil && *sel == id
		},
		"suma": func(a, b int) int { return a + b },
	}
}
