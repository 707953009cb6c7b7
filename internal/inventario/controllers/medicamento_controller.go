package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/escom/enfermeria-web/internal/common/middlewares"
	"github.com/escom/enfermeria-web/internal/inventario/models"
	"github.com/escom/enfermeria-web/internal/inventario/services"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type MedicamentoController struct {
	Service *services.MedicamentoService
	Logger  zerolog.Logger
}

func NewMedicamentoController(service *services.MedicamentoService, logger zerolog.Logger) *MedicamentoController {
	return &MedicamentoController{Service: service, Logger: logger}
}

// List trae el snapshot completo y lo filtra en memoria según los
// parámetros de búsqueda. La lista y las estadísticas se piden por
// separado: si fallan las estadísticas solo se registra, si falla la lista
// se muestra el error.
func (mc *MedicamentoController) List(c echo.Context) error {
	ctx := middlewares.ContextoAutenticado(c)
	data := map[string]interface{}{
		"Sesion":   middlewares.SesionDesdeContexto(c),
		"Busqueda": c.QueryParam("busqueda"),
		"Estado":   c.QueryParam("estado"),
		"Msg":      c.QueryParam("msg"),
		"Error":    c.QueryParam("error"),
	}

	resp, err := mc.Service.GetAll(ctx)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success:
		data["Error"] = resp.Message
	default:
		filtrados := services.FiltrarMedicamentos(
			resp.Medicamentos, c.QueryParam("busqueda"), c.QueryParam("estado"))
		data["Medicamentos"] = filtrados
		data["Total"] = len(filtrados)
	}

	if stats, err := mc.Service.GetEstadisticas(ctx); err != nil {
		mc.Logger.Warn().Err(err).Msg("error cargando estadísticas de medicamentos")
	} else if stats.Success {
		data["Estadisticas"] = stats
	}

	return c.Render(http.StatusOK, "medicamentos_list.html", data)
}

// Detail muestra un solo registro; un id inexistente llega como
// success=false con mensaje, no como excepción.
func (mc *MedicamentoController) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/medicamentos")
	}
	data := map[string]interface{}{"Sesion": middlewares.SesionDesdeContexto(c)}

	resp, err := mc.Service.GetByID(middlewares.ContextoAutenticado(c), id)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success:
		data["Error"] = resp.Message
	default:
		data["Medicamento"] = resp.Medicamento
	}
	return c.Render(http.StatusOK, "medicamento_detail.html", data)
}

func (mc *MedicamentoController) NuevoForm(c echo.Context) error {
	return c.Render(http.StatusOK, "medicamento_form.html", map[string]interface{}{
		"Sesion":     middlewares.SesionDesdeContexto(c),
		"FormData":   models.MedicamentoFormData{MedicamentoEstado: models.MedicamentoDisponible},
		"Categorias": mc.Service.GetCategorias(middlewares.ContextoAutenticado(c)),
	})
}

func (mc *MedicamentoController) EditarForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/medicamentos")
	}
	ctx := middlewares.ContextoAutenticado(c)

	resp, err := mc.Service.GetByID(ctx, id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/medicamentos?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success || resp.Medicamento == nil {
		return c.Redirect(http.StatusFound, "/medicamentos?error="+url.QueryEscape(resp.Message))
	}

	m := resp.Medicamento
	return c.Render(http.StatusOK, "medicamento_form.html", map[string]interface{}{
		"Sesion":        middlewares.SesionDesdeContexto(c),
		"MedicamentoID": m.MedicamentoID,
		"FormData": models.MedicamentoFormData{
			MedicamentoNom:         m.MedicamentoNom,
			MedicamentoDesc:        m.MedicamentoDesc,
			MedicamentoFecComp:     services.FormatDateForInput(m.MedicamentoFecComp),
			MedicamentoFecCad:      services.FormatDateForInput(m.MedicamentoFecCad),
			MedicamentoLote:        m.MedicamentoLote,
			MedicamentoLaboratorio: m.MedicamentoLaboratorio,
			MedicamentoEstado:      m.MedicamentoEstado,
			MedicamentoStock:       m.MedicamentoStock,
			MedicamentoStockMin:    m.MedicamentoStockMin,
			MedicamentoPrecio:      m.MedicamentoPrecio,
			CategoriaID:            m.CategoriaID,
		},
		"Categorias": mc.Service.GetCategorias(ctx),
	})
}

// Guardar maneja tanto el alta como la edición; el id en la ruta decide.
func (mc *MedicamentoController) Guardar(c echo.Context) error {
	ctx := middlewares.ContextoAutenticado(c)
	form, errMsg := parseMedicamentoForm(c)

	var id int
	if param := c.Param("id"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			return c.Redirect(http.StatusFound, "/medicamentos")
		}
		id = parsed
	}

	render := func(status int, mensaje string) error {
		return c.Render(status, "medicamento_form.html", map[string]interface{}{
			"Sesion":        middlewares.SesionDesdeContexto(c),
			"MedicamentoID": id,
			"FormData":      form,
			"Categorias":    mc.Service.GetCategorias(ctx),
			"Error":         mensaje,
		})
	}

	if errMsg != "" {
		return render(http.StatusBadRequest, errMsg)
	}

	var resp *models.MedicamentoResponse
	var err error
	if id > 0 {
		resp, err = mc.Service.Update(ctx, id, form)
	} else {
		resp, err = mc.Service.Create(ctx, form)
	}
	if err != nil {
		return render(http.StatusOK, apiclient.MensajeUsuario(err))
	}
	if !resp.Success {
		return render(http.StatusOK, resp.Message)
	}

	msg := "Medicamento creado exitosamente"
	if id > 0 {
		msg = "Medicamento actualizado exitosamente"
	}
	return c.Redirect(http.StatusFound, "/medicamentos?msg="+url.QueryEscape(msg))
}

// Eliminar borra en el backend y regresa a la lista, que siempre se
// vuelve a pedir completa; nunca se quita el renglón de manera optimista.
func (mc *MedicamentoController) Eliminar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/medicamentos")
	}

	resp, err := mc.Service.Delete(middlewares.ContextoAutenticado(c), id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/medicamentos?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success {
		return c.Redirect(http.StatusFound, "/medicamentos?error="+url.QueryEscape(resp.Message))
	}
	return c.Redirect(http.StatusFound, "/medicamentos?msg="+url.QueryEscape("Medicamento eliminado exitosamente"))
}

// parseMedicamentoForm convierte el formulario en el payload tipado y
// aplica la validación local: los campos numéricos no pueden ser negativos.
func parseMedicamentoForm(c echo.Context) (models.MedicamentoFormData, string) {
	form := models.MedicamentoFormData{
		MedicamentoNom:         c.FormValue("medicamentoNom"),
		MedicamentoDesc:        c.FormValue("medicamentoDesc"),
		MedicamentoFecComp:     c.FormValue("medicamentoFecComp"),
		MedicamentoFecCad:      c.FormValue("medicamentoFecCad"),
		MedicamentoLote:        c.FormValue("medicamentoLote"),
		MedicamentoLaboratorio: c.FormValue("medicamentoLaboratorio"),
		MedicamentoEstado:      c.FormValue("medicamentoEstado"),
	}
	form.MedicamentoStock, _ = strconv.Atoi(c.FormValue("medicamentoStock"))
	form.MedicamentoStockMin, _ = strconv.Atoi(c.FormValue("medicamentoStockMin"))
	form.MedicamentoPrecio, _ = strconv.ParseFloat(c.FormValue("medicamentoPrecio"), 64)
	form.CategoriaID, _ = strconv.Atoi(c.FormValue("categoriaId"))

	switch {
	case form.MedicamentoNom == "":
		return form, "El nombre es requerido"
	case form.MedicamentoStock < 0:
		return form, "El stock no puede ser negativo"
	case form.MedicamentoStockMin < 0:
		return form, "El stock mínimo no puede ser negativo"
	case form.MedicamentoPrecio < 0:
		return form, "El precio no puede ser negativo"
	}
	return form, ""
}
