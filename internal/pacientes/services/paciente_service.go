package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/escom/enfermeria-web/internal/pacientes/models"
	"github.com/escom/enfermeria-web/pkg/apiclient"
)

var (
	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telefonoRegexp = regexp.MustCompile(`^[0-9+\-\s()]{10,15}$`)
)

// PacienteService envuelve la superficie /pacientes del backend.
type PacienteService struct {
	api *apiclient.Client
}

func NewPacienteService(api *apiclient.Client) *PacienteService {
	return &PacienteService{api: api}
}

func (s *PacienteService) GetAll(ctx context.Context) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Get(ctx, "/pacientes", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) GetByID(ctx context.Context, id int) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Get(ctx, fmt.Sprintf("/pacientes/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) Create(ctx context.Context, data models.PacienteFormData) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Post(ctx, "/pacientes", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) Update(ctx context.Context, id int, data models.PacienteFormData) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Put(ctx, fmt.Sprintf("/pacientes/%d", id), data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) Delete(ctx context.Context, id int) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Delete(ctx, fmt.Sprintf("/pacientes/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) Buscar(ctx context.Context, termino string) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Get(ctx, "/pacientes/buscar?termino="+url.QueryEscape(termino), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) GetByEscuela(ctx context.Context, escuela string) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Get(ctx, "/pacientes/escuela/"+url.PathEscape(escuela), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PacienteService) GetEstadisticas(ctx context.Context) (*models.PacienteResponse, error) {
	var resp models.PacienteResponse
	if err := s.api.Get(ctx, "/pacientes/estadisticas", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidarEmail valida el formato antes de mandar nada al backend. El email
// es opcional: vacío pasa.
func ValidarEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRegexp.MatchString(email)
}

// ValidarTelefono acepta de 10 a 15 caracteres de dígitos y separadores.
// El teléfono es opcional: vacío pasa.
func ValidarTelefono(telefono string) bool {
	if telefono == "" {
		return true
	}
	return telefonoRegexp.MatchString(telefono)
}

// EdadClass clasifica la edad para estilo de la vista.
func EdadClass(edad int) string {
	switch {
	case edad < 18:
		return "edad-joven"
	case edad <= 30:
		return "edad-adulto-joven"
	case edad <= 50:
		return "edad-adulto"
	default:
		return "edad-mayor"
	}
}

// FiltrarPacientes filtra el snapshot en memoria por nombre o escuela.
func FiltrarPacientes(snapshot []models.Paciente, busqueda string) []models.Paciente {
	busqueda = strings.ToLower(strings.TrimSpace(busqueda))
	if busqueda == "" {
		return snapshot
	}
	filtrados := make([]models.Paciente, 0, len(snapshot))
	for _, p := range snapshot {
		if strings.Contains(strings.ToLower(p.PacienteNombre), busqueda) ||
			strings.Contains(strings.ToLower(p.PacienteEscuela), busqueda) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}
