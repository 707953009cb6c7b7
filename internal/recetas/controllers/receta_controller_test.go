package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	invservices "github.com/escom/enfermeria-web/internal/inventario/services"
	pacservices "github.com/escom/enfermeria-web/internal/pacientes/services"
	"github.com/escom/enfermeria-web/internal/recetas/services"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/escom/enfermeria-web/web"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func nuevoControlador(t *testing.T, backend http.HandlerFunc) (*RecetaController, *echo.Echo) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	api := apiclient.NewClient(srv.URL, time.Second)

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer

	rc := NewRecetaController(
		services.NewRecetaService(api),
		pacservices.NewPacienteService(api),
		invservices.NewMedicamentoService(api, zerolog.Nop()),
		zerolog.Nop(),
	)
	return rc, e
}

func backendDeCatalogos(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/pacientes":
		w.Write([]byte(`{"success":true,"pacientes":[{"pacienteId":1,"pacienteNombre":"Ana"}]}`))
	case "/medicamentos":
		w.Write([]byte(`{"success":true,"medicamentos":[{"medicamentoId":4,"medicamentoNom":"Paracetamol"}]}`))
	default:
		w.Write([]byte(`{"success":true}`))
	}
}

func postFormulario(e *echo.Echo, valores url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/recetas/nueva", strings.NewReader(valores.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Quitar la única línea no borra nada: se vuelve a pintar el formulario con
// la advertencia y la línea intacta.
func TestGuardarNoQuitaLaUltimaLinea(t *testing.T) {
	rc, e := nuevoControlador(t, backendDeCatalogos)

	c, rec := postFormulario(e, url.Values{
		"accion":        {"eliminar-0"},
		"pacienteId":    {"1"},
		"recetaDiag":    {"Gripe"},
		"detRecetaMed":  {"Paracetamol"},
		"detRecetaCant": {"1"},
	})
	if err := rc.Guardar(c); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	html := rec.Body.String()
	if !strings.Contains(html, "La receta debe tener al menos un medicamento") {
		t.Error("falta la advertencia de última línea")
	}
	if strings.Count(html, `name="detRecetaMed"`) != 1 {
		t.Errorf("la línea debió quedar intacta, hay %d", strings.Count(html, `name="detRecetaMed"`))
	}
}

func TestGuardarAgregaLinea(t *testing.T) {
	rc, e := nuevoControlador(t, backendDeCatalogos)

	c, rec := postFormulario(e, url.Values{
		"accion":        {"agregar"},
		"detRecetaMed":  {"Paracetamol"},
		"detRecetaCant": {"1"},
	})
	if err := rc.Guardar(c); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	if got := strings.Count(rec.Body.String(), `name="detRecetaMed"`); got != 2 {
		t.Errorf("se esperaban 2 líneas tras agregar, hay %d", got)
	}
}

// La validación bloquea el envío con el mensaje de la primera regla violada
// y nada viaja al backend.
func TestGuardarSinPacienteNoLlamaAlBackend(t *testing.T) {
	var creaciones int
	rc, e := nuevoControlador(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/recetas" {
			creaciones++
		}
		backendDeCatalogos(w, r)
	})

	c, rec := postFormulario(e, url.Values{
		"accion":        {"guardar"},
		"pacienteId":    {"0"},
		"recetaDiag":    {"Gripe"},
		"detRecetaMed":  {"Paracetamol"},
		"detRecetaCant": {"1"},
	})
	if err := rc.Guardar(c); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	if creaciones != 0 {
		t.Error("el backend no debe recibir formularios inválidos")
	}
	if !strings.Contains(rec.Body.String(), "Debe seleccionar un paciente") {
		t.Error("falta el mensaje de validación")
	}
}

func TestGuardarEnviaYRedirige(t *testing.T) {
	var recibido string
	rc, e := nuevoControlador(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/recetas" {
			cuerpo, _ := io.ReadAll(r.Body)
			recibido = string(cuerpo)
			w.Write([]byte(`{"success":true,"message":"Receta creada"}`))
			return
		}
		backendDeCatalogos(w, r)
	})

	c, rec := postFormulario(e, url.Values{
		"accion":         {"guardar"},
		"pacienteId":     {"1"},
		"recetaDiag":     {"Gripe"},
		"detRecetaMed":   {"Paracetamol"},
		"detRecetaCant":  {"2"},
		"detRecetaDosis": {"500 mg cada 8 h"},
	})
	if err := rc.Guardar(c); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	if rec.Code != http.StatusFound || !strings.Contains(rec.Header().Get("Location"), "/recetas?msg=") {
		t.Errorf("status=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}
	if !strings.Contains(recibido, `"recetaDiag":"Gripe"`) || !strings.Contains(recibido, `"detRecetaCant":2`) {
		t.Errorf("payload al backend: %s", recibido)
	}
}

// Línea con medicamento del catálogo y texto vacío: el nombre se resuelve
// del inventario antes de validar.
func TestGuardarResuelveNombreDelCatalogo(t *testing.T) {
	var recibido string
	rc, e := nuevoControlador(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/recetas" {
			cuerpo, _ := io.ReadAll(r.Body)
			recibido = string(cuerpo)
			w.Write([]byte(`{"success":true}`))
			return
		}
		backendDeCatalogos(w, r)
	})

	c, _ := postFormulario(e, url.Values{
		"accion":        {"guardar"},
		"pacienteId":    {"1"},
		"recetaDiag":    {"Gripe"},
		"detRecetaMed":  {""},
		"medicamentoId": {"4"},
		"detRecetaCant": {"1"},
	})
	if err := rc.Guardar(c); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	if !strings.Contains(recibido, `"detRecetaMed":"Paracetamol"`) {
		t.Errorf("el nombre no se resolvió del catálogo: %s", recibido)
	}
}

func TestEliminarRedirigeConMensaje(t *testing.T) {
	rc, e := nuevoControlador(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/recetas/7" {
			w.Write([]byte(`{"success":true,"message":"Receta eliminada"}`))
			return
		}
		backendDeCatalogos(w, r)
	})

	req := httptest.NewRequest(http.MethodPost, "/recetas/7/eliminar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := rc.Eliminar(c); err != nil {
		t.Fatalf("Eliminar: %v", err)
	}
	if rec.Code != http.StatusFound || !strings.Contains(rec.Header().Get("Location"), "/recetas?msg=") {
		t.Errorf("status=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}
}
