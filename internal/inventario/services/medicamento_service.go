package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/escom/enfermeria-web/internal/inventario/models"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/rs/zerolog"
)

// MedicamentoService envuelve la superficie /medicamentos del backend. No
// guarda estado: cada llamada trae la verdad del servidor.
type MedicamentoService struct {
	api    *apiclient.Client
	logger zerolog.Logger
}

func NewMedicamentoService(api *apiclient.Client, logger zerolog.Logger) *MedicamentoService {
	return &MedicamentoService{api: api, logger: logger}
}

func (s *MedicamentoService) GetAll(ctx context.Context) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, "/medicamentos", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) GetByID(ctx context.Context, id int) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, fmt.Sprintf("/medicamentos/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) Create(ctx context.Context, data models.MedicamentoFormData) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Post(ctx, "/medicamentos", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) Update(ctx context.Context, id int, data models.MedicamentoFormData) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Put(ctx, fmt.Sprintf("/medicamentos/%d", id), data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) Delete(ctx context.Context, id int) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Delete(ctx, fmt.Sprintf("/medicamentos/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) Buscar(ctx context.Context, nombre string) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, "/medicamentos/buscar?nombre="+url.QueryEscape(nombre), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) GetByEstado(ctx context.Context, estado string) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, "/medicamentos/estado/"+url.PathEscape(estado), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) GetProximosCaducar(ctx context.Context) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, "/medicamentos/proximos-caducar", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MedicamentoService) GetStockBajo(ctx context.Context) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, "/medicamentos/stock-bajo", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEstadisticas trae los conteos agregados del backend. Los dashboards no
// recalculan estos números a partir del snapshot de la lista.
func (s *MedicamentoService) GetEstadisticas(ctx context.Context) (*models.MedicamentoResponse, error) {
	var resp models.MedicamentoResponse
	if err := s.api.Get(ctx, "/medicamentos/estadisticas", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCategorias trae el catálogo de categorías. Si el endpoint falla, cae a
// la lista estática que usaba la vista original mientras el backend no lo
// tenía implementado.
func (s *MedicamentoService) GetCategorias(ctx context.Context) []models.Categoria {
	var resp models.CategoriaResponse
	if err := s.api.Get(ctx, "/categorias", &resp); err == nil && resp.Success {
		return resp.Categorias
	} else if err != nil {
		s.logger.Warn().Err(err).Msg("error cargando categorías, usando catálogo local")
	}
	return []models.Categoria{
		{CategoriaID: 1, CategoriaNom: "ANALGÉSICOS", CategoriaDesc: "Medicamentos para el dolor"},
		{CategoriaID: 2, CategoriaNom: "ANTIBIÓTICOS", CategoriaDesc: "Medicamentos antibacterianos"},
		{CategoriaID: 3, CategoriaNom: "ANTIINFLAMATORIOS", CategoriaDesc: "Reducen inflamación"},
		{CategoriaID: 4, CategoriaNom: "ANTIPIRÉTICOS", CategoriaDesc: "Bajan la fiebre"},
		{CategoriaID: 5, CategoriaNom: "ANTIHISTAMÍNICOS", CategoriaDesc: "Para alergias"},
		{CategoriaID: 6, CategoriaNom: "VACUNAS", CategoriaDesc: "Inmunizaciones"},
	}
}
