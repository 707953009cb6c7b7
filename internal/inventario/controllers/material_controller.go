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

type MaterialController struct {
	Service     *services.MaterialService
	Medicamento *services.MedicamentoService // catálogo de categorías compartido
	Logger      zerolog.Logger
}

func NewMaterialController(service *services.MaterialService, medicamento *services.MedicamentoService, logger zerolog.Logger) *MaterialController {
	return &MaterialController{Service: service, Medicamento: medicamento, Logger: logger}
}

func (mc *MaterialController) List(c echo.Context) error {
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
		filtrados := services.FiltrarMateriales(
			resp.Materiales, c.QueryParam("busqueda"), c.QueryParam("estado"))
		data["Materiales"] = filtrados
		data["Total"] = len(filtrados)
	}

	if stats, err := mc.Service.GetEstadisticas(ctx); err != nil {
		mc.Logger.Warn().Err(err).Msg("error cargando estadísticas de materiales")
	} else if stats.Success {
		data["Estadisticas"] = stats
	}

	return c.Render(http.StatusOK, "materiales_list.html", data)
}

func (mc *MaterialController) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/materiales")
	}
	data := map[string]interface{}{"Sesion": middlewares.SesionDesdeContexto(c)}

	resp, err := mc.Service.GetByID(middlewares.ContextoAutenticado(c), id)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success:
		data["Error"] = resp.Message
	default:
		data["Material"] = resp.Material
	}
	return c.Render(http.StatusOK, "material_detail.html", data)
}

func (mc *MaterialController) NuevoForm(c echo.Context) error {
	return c.Render(http.StatusOK, "material_form.html", map[string]interface{}{
		"Sesion":     middlewares.SesionDesdeContexto(c),
		"FormData":   models.MaterialFormData{MaterialEstado: models.MaterialDisponible},
		"Categorias": mc.Medicamento.GetCategorias(middlewares.ContextoAutenticado(c)),
	})
}

func (mc *MaterialController) EditarForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/materiales")
	}
	ctx := middlewares.ContextoAutenticado(c)

	resp, err := mc.Service.GetByID(ctx, id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/materiales?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success || resp.Material == nil {
		return c.Redirect(http.StatusFound, "/materiales?error="+url.QueryEscape(resp.Message))
	}

	m := resp.Material
	return c.Render(http.StatusOK, "material_form.html", map[string]interface{}{
		"Sesion":     middlewares.SesionDesdeContexto(c),
		"MaterialID": m.MaterialID,
		"FormData": models.MaterialFormData{
			MaterialNom:      m.MaterialNom,
			MaterialDesc:     m.MaterialDesc,
			MaterialFecComp:  services.FormatDateForInput(m.MaterialFecComp),
			MaterialEstado:   m.MaterialEstado,
			MaterialStock:    m.MaterialStock,
			MaterialStockMin: m.MaterialStockMin,
			MaterialPrecio:   m.MaterialPrecio,
			CategoriaID:      m.CategoriaID,
		},
		"Categorias": mc.Medicamento.GetCategorias(ctx),
	})
}

func (mc *MaterialController) Guardar(c echo.Context) error {
	ctx := middlewares.ContextoAutenticado(c)
	form, errMsg := parseMaterialForm(c)

	var id int
	if param := c.Param("id"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			return c.Redirect(http.StatusFound, "/materiales")
		}
		id = parsed
	}

	render := func(status int, mensaje string) error {
		return c.Render(status, "material_form.html", map[string]interface{}{
			"Sesion":     middlewares.SesionDesdeContexto(c),
			"MaterialID": id,
			"FormData":   form,
			"Categorias": mc.Medicamento.GetCategorias(ctx),
			"Error":      mensaje,
		})
	}

	if errMsg != "" {
		return render(http.StatusBadRequest, errMsg)
	}

	var resp *models.MaterialResponse
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

	msg := "Material creado exitosamente"
	if id > 0 {
		msg = "Material actualizado exitosamente"
	}
	return c.Redirect(http.StatusFound, "/materiales?msg="+url.QueryEscape(msg))
}

func (mc *MaterialController) Eliminar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/materiales")
	}

	resp, err := mc.Service.Delete(middlewares.ContextoAutenticado(c), id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/materiales?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success {
		return c.Redirect(http.StatusFound, "/materiales?error="+url.QueryEscape(resp.Message))
	}
	return c.Redirect(http.StatusFound, "/materiales?msg="+url.QueryEscape("Material eliminado exitosamente"))
}

func parseMaterialForm(c echo.Context) (models.MaterialFormData, string) {
	form := models.MaterialFormData{
		MaterialNom:     c.FormValue("materialNom"),
		MaterialDesc:    c.FormValue("materialDesc"),
		MaterialFecComp: c.FormValue("materialFecComp"),
		MaterialEstado:  c.FormValue("materialEstado"),
	}
	form.MaterialStock, _ = strconv.Atoi(c.FormValue("materialStock"))
	form.MaterialStockMin, _ = strconv.Atoi(c.FormValue("materialStockMin"))
	form.MaterialPrecio, _ = strconv.ParseFloat(c.FormValue("materialPrecio"), 64)
	form.CategoriaID, _ = strconv.Atoi(c.FormValue("categoriaId"))

	switch {
	case form.MaterialNom == "":
		return form, "El nombre es requerido"
	case form.MaterialStock < 0:
		return form, "El stock no puede ser negativo"
	case form.MaterialStockMin < 0:
		return form, "El stock mínimo no puede ser negativo"
	case form.MaterialPrecio < 0:
		return form, "El precio no puede ser negativo"
	}
	return form, ""
}
