package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/escom/enfermeria-web/internal/inventario/models"
	"github.com/escom/enfermeria-web/pkg/apiclient"
)

// MaterialService envuelve la superficie /materiales del backend.
type MaterialService struct {
	api *apiclient.Client
}

func NewMaterialService(api *apiclient.Client) *MaterialService {
	return &MaterialService{api: api}
}

func (s *MaterialService) GetAll(ctx context.Context) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, "/materiales", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) GetByID(ctx context.Context, id int) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, fmt.Sprintf("/materiales/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) Create(ctx context.Context, data models.MaterialFormData) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Post(ctx, "/materiales", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) Update(ctx context.Context, id int, data models.MaterialFormData) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Put(ctx, fmt.Sprintf("/materiales/%d", id), data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) Delete(ctx context.Context, id int) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Delete(ctx, fmt.Sprintf("/materiales/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) Buscar(ctx context.Context, nombre string) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, "/materiales/buscar?nombre="+url.QueryEscape(nombre), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) GetByEstado(ctx context.Context, estado string) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, "/materiales/estado/"+url.PathEscape(estado), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) GetStockBajo(ctx context.Context) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, "/materiales/stock-bajo", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) GetEnMantenimiento(ctx context.Context) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, "/materiales/mantenimiento", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MaterialService) GetEstadisticas(ctx context.Context) (*models.MaterialResponse, error) {
	var resp models.MaterialResponse
	if err := s.api.Get(ctx, "/materiales/estadisticas", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
