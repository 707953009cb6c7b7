package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/escom/enfermeria-web/internal/reportes/models"
	"github.com/escom/enfermeria-web/pkg/apiclient"
)

// TiposReporte son los reportes PDF que expone el backend.
var TiposReporte = []string{"medicamentos", "materiales", "recetas", "consolidado"}

// ReporteService envuelve /reportes. El cliente no genera nada: solo pide
// el PDF y lo entrega como descarga.
type ReporteService struct {
	api *apiclient.Client
}

func NewReporteService(api *apiclient.Client) *ReporteService {
	return &ReporteService{api: api}
}

func (s *ReporteService) ObtenerOpcionesFiltro(ctx context.Context) (*models.OpcionesFiltro, error) {
	var opciones models.OpcionesFiltro
	if err := s.api.Get(ctx, "/reportes/opciones-filtro", &opciones); err != nil {
		return nil, err
	}
	return &opciones, nil
}

func (s *ReporteService) ObtenerEstadisticas(ctx context.Context, mes, año int) (*models.EstadisticasResponse, error) {
	var resp models.EstadisticasResponse
	if err := s.api.Get(ctx, "/reportes/estadisticas"+filtroPeriodo(mes, año), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DescargarPDF trae el reporte binario del tipo indicado y devuelve los
// bytes con el nombre de archivo sugerido.
func (s *ReporteService) DescargarPDF(ctx context.Context, tipo string, mes, año int) ([]byte, string, error) {
	if !TipoValido(tipo) {
		return nil, "", fmt.Errorf("tipo de reporte desconocido: %s", tipo)
	}
	datos, _, err := s.api.GetBinary(ctx, "/reportes/"+tipo+"/pdf"+filtroPeriodo(mes, año))
	if err != nil {
		return nil, "", err
	}
	return datos, "reporte-" + tipo + ".pdf", nil
}

func TipoValido(tipo string) bool {
	for _, t := range TiposReporte {
		if t == tipo {
			return true
		}
	}
	return false
}

// filtroPeriodo arma el query opcional mes/año. El nombre del parámetro
// "año" es contrato con el backend, eñe incluida.
func filtroPeriodo(mes, año int) string {
	params := url.Values{}
	if mes > 0 {
		params.Set("mes", strconv.Itoa(mes))
	}
	if año > 0 {
		params.Set("año", strconv.Itoa(año))
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}
