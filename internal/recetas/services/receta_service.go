package services

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/escom/enfermeria-web/internal/recetas/models"
	"github.com/escom/enfermeria-web/pkg/apiclient"
)

// RecetaService envuelve la superficie /recetas del backend. La receta se
// crea y actualiza como agregado completo (encabezado + detalles) en una
// sola llamada.
type RecetaService struct {
	api *apiclient.Client
}

func NewRecetaService(api *apiclient.Client) *RecetaService {
	return &RecetaService{api: api}
}

func (s *RecetaService) GetAll(ctx context.Context) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Get(ctx, "/recetas", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByID trae la receta con sus detalles (forma agregada).
func (s *RecetaService) GetByID(ctx context.Context, id int) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Get(ctx, fmt.Sprintf("/recetas/%d/completa", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RecetaService) GetByPaciente(ctx context.Context, pacienteID int) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Get(ctx, fmt.Sprintf("/recetas/paciente/%d", pacienteID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RecetaService) Create(ctx context.Context, data models.RecetaFormData) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Post(ctx, "/recetas", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RecetaService) Update(ctx context.Context, id int, data models.RecetaFormData) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Put(ctx, fmt.Sprintf("/recetas/%d", id), data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CambiarEstado es una transición directa de estado: no pasa por la
// validación del formulario de edición.
func (s *RecetaService) CambiarEstado(ctx context.Context, id int, estado string) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	body := map[string]string{"estado": estado}
	if err := s.api.Patch(ctx, fmt.Sprintf("/recetas/%d/estado", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RecetaService) Delete(ctx context.Context, id int) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Delete(ctx, fmt.Sprintf("/recetas/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RecetaService) Buscar(ctx context.Context, termino string) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Get(ctx, "/recetas/buscar?termino="+url.QueryEscape(termino), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RecetaService) GetEstadisticas(ctx context.Context) (*models.RecetaResponse, error) {
	var resp models.RecetaResponse
	if err := s.api.Get(ctx, "/recetas/estadisticas", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidarForm aplica las reglas del formulario en orden fijo y devuelve el
// primer mensaje violado; el envío se bloquea con una sola violación.
func ValidarForm(data models.RecetaFormData) error {
	if data.PacienteID == 0 {
		return fmt.Errorf("Debe seleccionar un paciente")
	}
	if strings.TrimSpace(data.RecetaDiag) == "" {
		return fmt.Errorf("El diagnóstico es requerido")
	}
	if len(data.Detalles) == 0 {
		return fmt.Errorf("Debe agregar al menos un medicamento")
	}
	for _, detalle := range data.Detalles {
		if strings.TrimSpace(detalle.DetRecetaMed) == "" {
			return fmt.Errorf("Todos los medicamentos deben tener un nombre")
		}
	}
	for _, detalle := range data.Detalles {
		if detalle.DetRecetaCant <= 0 {
			return fmt.Errorf("La cantidad debe ser mayor a 0")
		}
	}
	return nil
}

// GenerarFolio propone un folio legible REC-aammdd-nnn. El backend asigna
// el definitivo.
func GenerarFolio() string {
	ahora := time.Now()
	return fmt.Sprintf("REC-%s-%03d", ahora.Format("060102"), rand.Intn(1000))
}

func EstadoText(estado string) string {
	switch estado {
	case models.RecetaActiva:
		return "Activa"
	case models.RecetaCompletada:
		return "Completada"
	case models.RecetaCancelada:
		return "Cancelada"
	default:
		return estado
	}
}

func EstadoClass(estado string) string {
	switch estado {
	case models.RecetaActiva:
		return "badge bg-primary"
	case models.RecetaCompletada:
		return "badge bg-success"
	case models.RecetaCancelada:
		return "badge bg-danger"
	default:
		return "badge bg-secondary"
	}
}

// FormatDate presenta el timestamp del backend en formato local corto.
func FormatDate(fecha string) string {
	if fecha == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, fecha); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return fecha
}

// FiltrarRecetas filtra el snapshot por folio o diagnóstico y por estado.
func FiltrarRecetas(snapshot []models.Receta, busqueda, estado string) []models.Receta {
	busqueda = strings.ToLower(strings.TrimSpace(busqueda))
	filtradas := make([]models.Receta, 0, len(snapshot))
	for _, r := range snapshot {
		if estado != "" && r.RecetaEstado != estado {
			continue
		}
		if busqueda != "" &&
			!strings.Contains(strings.ToLower(r.RecetaFolio), busqueda) &&
			!strings.Contains(strings.ToLower(r.RecetaDiag), busqueda) &&
			!strings.Contains(strings.ToLower(r.PacienteNombre), busqueda) {
			continue
		}
		filtradas = append(filtradas, r)
	}
	return filtradas
}
