package controllers

import (
	"net/http"

	"github.com/escom/enfermeria-web/internal/common/middlewares"
	"github.com/escom/enfermeria-web/internal/reportes/services"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// DashboardController pinta la página principal tras el login: tarjetas de
// resumen y accesos a los módulos.
type DashboardController struct {
	Reportes *services.ReporteService
	Logger   zerolog.Logger
}

func NewDashboardController(reportes *services.ReporteService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{Reportes: reportes, Logger: logger}
}

// Index muestra el tablero. Si las estadísticas fallan, las tarjetas
// simplemente no aparecen; la página nunca se cae por eso.
func (dc *DashboardController) Index(c echo.Context) error {
	data := map[string]interface{}{
		"Sesion": middlewares.SesionDesdeContexto(c),
	}

	if stats, err := dc.Reportes.ObtenerEstadisticas(middlewares.ContextoAutenticado(c), 0, 0); err != nil {
		dc.Logger.Warn().Err(err).Msg("error cargando estadísticas del dashboard")
	} else {
		data["Estadisticas"] = stats.Estadisticas
	}

	return c.Render(http.StatusOK, "dashboard.html", data)
}
