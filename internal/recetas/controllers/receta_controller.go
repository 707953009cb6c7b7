package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/escom/enfermeria-web/internal/common/middlewares"
	invservices "github.com/escom/enfermeria-web/internal/inventario/services"
	pacservices "github.com/escom/enfermeria-web/internal/pacientes/services"
	"github.com/escom/enfermeria-web/internal/recetas/models"
	"github.com/escom/enfermeria-web/internal/recetas/services"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type RecetaController struct {
	Service      *services.RecetaService
	Pacientes    *pacservices.PacienteService
	Medicamentos *invservices.MedicamentoService
	Logger       zerolog.Logger
}

func NewRecetaController(service *services.RecetaService, pacientes *pacservices.PacienteService, medicamentos *invservices.MedicamentoService, logger zerolog.Logger) *RecetaController {
	return &RecetaController{Service: service, Pacientes: pacientes, Medicamentos: medicamentos, Logger: logger}
}

func (rc *RecetaController) List(c echo.Context) error {
	ctx := middlewares.ContextoAutenticado(c)
	data := map[string]interface{}{
		"Sesion":   middlewares.SesionDesdeContexto(c),
		"Busqueda": c.QueryParam("busqueda"),
		"Estado":   c.QueryParam("estado"),
		"Msg":      c.QueryParam("msg"),
		"Error":    c.QueryParam("error"),
	}

	resp, err := rc.Service.GetAll(ctx)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success:
		data["Error"] = resp.Message
	default:
		filtradas := services.FiltrarRecetas(
			resp.Recetas, c.QueryParam("busqueda"), c.QueryParam("estado"))
		data["Recetas"] = filtradas
		data["Total"] = len(filtradas)
	}

	if stats, err := rc.Service.GetEstadisticas(ctx); err != nil {
		rc.Logger.Warn().Err(err).Msg("error cargando estadísticas de recetas")
	} else if stats.Success {
		data["Estadisticas"] = stats
	}

	return c.Render(http.StatusOK, "recetas_list.html", data)
}

func (rc *RecetaController) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/recetas")
	}
	data := map[string]interface{}{
		"Sesion": middlewares.SesionDesdeContexto(c),
		"Msg":    c.QueryParam("msg"),
	}
	if e := c.QueryParam("error"); e != "" {
		data["Error"] = e
	}

	resp, err := rc.Service.GetByID(middlewares.ContextoAutenticado(c), id)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success || resp.RecetaCompleta == nil:
		data["Error"] = resp.Message
	default:
		data["Receta"] = resp.RecetaCompleta.Receta
		data["Detalles"] = resp.RecetaCompleta.Detalles
	}
	return c.Render(http.StatusOK, "receta_detail.html", data)
}

// NuevoForm arranca el formulario con una línea vacía sembrada; al editar
// una receta existente no se siembra nada.
func (rc *RecetaController) NuevoForm(c echo.Context) error {
	form := models.RecetaFormData{
		Detalles: []models.DetalleRecetaFormData{models.NuevoDetalle()},
	}
	return rc.renderForm(c, 0, form, "", "")
}

func (rc *RecetaController) EditarForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/recetas")
	}

	resp, err := rc.Service.GetByID(middlewares.ContextoAutenticado(c), id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/recetas?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success || resp.RecetaCompleta == nil {
		return c.Redirect(http.StatusFound, "/recetas?error="+url.QueryEscape(resp.Message))
	}

	receta := resp.RecetaCompleta.Receta
	// Solo las recetas activas se editan; el resto es de solo lectura en
	// la vista.
	if receta.RecetaEstado != models.RecetaActiva {
		return c.Redirect(http.StatusFound,
			"/recetas/"+strconv.Itoa(id)+"?error="+url.QueryEscape("Solo las recetas activas pueden editarse"))
	}

	form := models.RecetaFormData{
		RecetaDiag: receta.RecetaDiag,
		RecetaObs:  receta.RecetaObs,
		PacienteID: receta.PacienteID,
	}
	for _, d := range resp.RecetaCompleta.Detalles {
		form.Detalles = append(form.Detalles, models.DetalleRecetaFormData{
			DetRecetaMed:          d.DetRecetaMed,
			DetRecetaCant:         d.DetRecetaCant,
			DetRecetaDosis:        d.DetRecetaDosis,
			DetRecetaDur:          d.DetRecetaDur,
			DetRecetaIndicaciones: d.DetRecetaIndicaciones,
			MedicamentoID:         d.MedicamentoID,
		})
	}
	return rc.renderForm(c, id, form, "", "")
}

// Guardar procesa el formulario del agregado. Las acciones agregar/eliminar
// solo mutan la lista de líneas en memoria y vuelven a pintar el
// formulario; nada viaja al backend hasta la acción guardar.
func (rc *RecetaController) Guardar(c echo.Context) error {
	var id int
	if param := c.Param("id"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			return c.Redirect(http.StatusFound, "/recetas")
		}
		id = parsed
	}

	form := parseRecetaForm(c)
	accion := c.FormValue("accion")

	switch {
	case accion == "agregar":
		form.Detalles = append(form.Detalles, models.NuevoDetalle())
		return rc.renderForm(c, id, form, "", "")

	case strings.HasPrefix(accion, "eliminar-"):
		idx, err := strconv.Atoi(strings.TrimPrefix(accion, "eliminar-"))
		if err != nil || idx < 0 || idx >= len(form.Detalles) {
			return rc.renderForm(c, id, form, "", "")
		}
		if len(form.Detalles) <= 1 {
			return rc.renderForm(c, id, form, "", "La receta debe tener al menos un medicamento")
		}
		form.Detalles = append(form.Detalles[:idx], form.Detalles[idx+1:]...)
		return rc.renderForm(c, id, form, "", "")
	}

	ctx := middlewares.ContextoAutenticado(c)
	rc.completarNombres(ctx, &form)
	if err := services.ValidarForm(form); err != nil {
		return rc.renderForm(c, id, form, err.Error(), "")
	}
	var resp *models.RecetaResponse
	var err error
	if id > 0 {
		resp, err = rc.Service.Update(ctx, id, form)
	} else {
		resp, err = rc.Service.Create(ctx, form)
	}
	if err != nil {
		return rc.renderForm(c, id, form, apiclient.MensajeUsuario(err), "")
	}
	if !resp.Success {
		return rc.renderForm(c, id, form, resp.Message, "")
	}

	msg := "Receta creada exitosamente"
	if id > 0 {
		msg = "Receta actualizada exitosamente"
	}
	return c.Redirect(http.StatusFound, "/recetas?msg="+url.QueryEscape(msg))
}

// CambiarEstado es la transición directa; no pasa por la validación del
// formulario.
func (rc *RecetaController) CambiarEstado(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/recetas")
	}
	estado := c.FormValue("estado")
	if estado != models.RecetaActiva && estado != models.RecetaCompletada && estado != models.RecetaCancelada {
		return c.Redirect(http.StatusFound,
			"/recetas/"+strconv.Itoa(id)+"?error="+url.QueryEscape("Estado no válido"))
	}

	resp, err := rc.Service.CambiarEstado(middlewares.ContextoAutenticado(c), id, estado)
	if err != nil {
		return c.Redirect(http.StatusFound,
			"/recetas/"+strconv.Itoa(id)+"?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success {
		return c.Redirect(http.StatusFound,
			"/recetas/"+strconv.Itoa(id)+"?error="+url.QueryEscape(resp.Message))
	}
	return c.Redirect(http.StatusFound,
		"/recetas/"+strconv.Itoa(id)+"?msg="+url.QueryEscape("Estado actualizado a "+services.EstadoText(estado)))
}

func (rc *RecetaController) Eliminar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/recetas")
	}

	resp, err := rc.Service.Delete(middlewares.ContextoAutenticado(c), id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/recetas?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success {
		return c.Redirect(http.StatusFound, "/recetas?error="+url.QueryEscape(resp.Message))
	}
	return c.Redirect(http.StatusFound, "/recetas?msg="+url.QueryEscape("Receta eliminada exitosamente"))
}

// renderForm pinta el formulario del agregado con los catálogos de apoyo.
// Si los catálogos fallan solo se registra: el formulario sigue funcionando
// con texto libre.
func (rc *RecetaController) renderForm(c echo.Context, id int, form models.RecetaFormData, errMsg, aviso string) error {
	ctx := middlewares.ContextoAutenticado(c)
	data := map[string]interface{}{
		"Sesion":        middlewares.SesionDesdeContexto(c),
		"RecetaID":      id,
		"FormData":      form,
		"FolioSugerido": services.GenerarFolio(),
		"Error":         errMsg,
		"Aviso":         aviso,
	}

	if resp, err := rc.Pacientes.GetAll(ctx); err != nil {
		rc.Logger.Warn().Err(err).Msg("error cargando pacientes para el formulario de receta")
	} else if resp.Success {
		data["Pacientes"] = resp.Pacientes
	}
	if resp, err := rc.Medicamentos.GetAll(ctx); err != nil {
		rc.Logger.Warn().Err(err).Msg("error cargando medicamentos para el formulario de receta")
	} else if resp.Success {
		data["Medicamentos"] = resp.Medicamentos
	}

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadRequest
	}
	return c.Render(status, "receta_form.html", data)
}

// completarNombres copia el nombre del catálogo a las líneas que eligieron
// un medicamento del inventario sin escribir texto. Si el catálogo no
// responde, la línea queda como llegó y la validación decide.
func (rc *RecetaController) completarNombres(ctx context.Context, form *models.RecetaFormData) {
	necesita := false
	for _, d := range form.Detalles {
		if d.MedicamentoID != nil && strings.TrimSpace(d.DetRecetaMed) == "" {
			necesita = true
			break
		}
	}
	if !necesita {
		return
	}

	resp, err := rc.Medicamentos.GetAll(ctx)
	if err != nil || !resp.Success {
		rc.Logger.Warn().Err(err).Msg("no se pudo resolver nombres del catálogo")
		return
	}
	nombres := make(map[int]string, len(resp.Medicamentos))
	for _, m := range resp.Medicamentos {
		nombres[m.MedicamentoID] = m.MedicamentoNom
	}
	for i, d := range form.Detalles {
		if d.MedicamentoID != nil && strings.TrimSpace(d.DetRecetaMed) == "" {
			form.Detalles[i].DetRecetaMed = nombres[*d.MedicamentoID]
		}
	}
}

// parseRecetaForm reconstruye el estado del formulario, incluida la lista
// ordenada de líneas, a partir de los campos repetidos por renglón.
func parseRecetaForm(c echo.Context) models.RecetaFormData {
	form := models.RecetaFormData{
		RecetaDiag: c.FormValue("recetaDiag"),
		RecetaObs:  c.FormValue("recetaObs"),
	}
	form.PacienteID, _ = strconv.Atoi(c.FormValue("pacienteId"))

	valores, err := c.FormParams()
	if err != nil {
		return form
	}
	meds := valores["detRecetaMed"]
	cants := valores["detRecetaCant"]
	dosis := valores["detRecetaDosis"]
	durs := valores["detRecetaDur"]
	inds := valores["detRecetaIndicaciones"]
	medIDs := valores["medicamentoId"]

	for i := range meds {
		detalle := models.DetalleRecetaFormData{DetRecetaMed: meds[i]}
		if i < len(cants) {
			detalle.DetRecetaCant, _ = strconv.Atoi(cants[i])
		}
		if i < len(dosis) {
			detalle.DetRecetaDosis = dosis[i]
		}
		if i < len(durs) {
			detalle.DetRecetaDur = durs[i]
		}
		if i < len(inds) {
			detalle.DetRecetaIndicaciones = inds[i]
		}
		if i < len(medIDs) && medIDs[i] != "" {
			if medID, err := strconv.Atoi(medIDs[i]); err == nil {
				detalle.MedicamentoID = &medID
			}
		}
		form.Detalles = append(form.Detalles, detalle)
	}
	return form
}
