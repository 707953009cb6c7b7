package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/escom/enfermeria-web/internal/common/middlewares"
	"github.com/escom/enfermeria-web/internal/reportes/services"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ReporteController struct {
	Service *services.ReporteService
	Logger  zerolog.Logger
}

func NewReporteController(service *services.ReporteService, logger zerolog.Logger) *ReporteController {
	return &ReporteController{Service: service, Logger: logger}
}

// Page muestra los filtros de periodo y la vista previa de estadísticas.
// Ninguna de las dos llamadas es fatal: la página se pinta con lo que haya.
func (rc *ReporteController) Page(c echo.Context) error {
	ctx := middlewares.ContextoAutenticado(c)
	mes, año := periodoDesdeQuery(c)
	data := map[string]interface{}{
		"Sesion": middlewares.SesionDesdeContexto(c),
		"Mes":    mes,
		"Año":    año,
		"Tipos":  services.TiposReporte,
	}
	if e := c.QueryParam("error"); e != "" {
		data["Error"] = e
	}

	if opciones, err := rc.Service.ObtenerOpcionesFiltro(ctx); err != nil {
		rc.Logger.Warn().Err(err).Msg("error cargando opciones de filtro de reportes")
	} else {
		data["Opciones"] = opciones
	}

	if stats, err := rc.Service.ObtenerEstadisticas(ctx, mes, año); err != nil {
		rc.Logger.Warn().Err(err).Msg("error cargando estadísticas de reportes")
	} else {
		data["Estadisticas"] = stats.Estadisticas
		data["Periodo"] = stats.Periodo
	}

	return c.Render(http.StatusOK, "reportes.html", data)
}

// Descargar pide el PDF al backend y lo entrega como adjunto. El cliente
// nunca genera el documento.
func (rc *ReporteController) Descargar(c echo.Context) error {
	tipo := c.Param("tipo")
	mes, año := periodoDesdeQuery(c)

	datos, nombre, err := rc.Service.DescargarPDF(middlewares.ContextoAutenticado(c), tipo, mes, año)
	if err != nil {
		return c.Redirect(http.StatusFound, "/reportes?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Blob(http.StatusOK, "application/pdf", datos)
}

func periodoDesdeQuery(c echo.Context) (int, int) {
	mes, _ := strconv.Atoi(c.QueryParam("mes"))
	año, _ := strconv.Atoi(c.QueryParam("año"))
	return mes, año
}
