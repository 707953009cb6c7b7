package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/escom/enfermeria-web/internal/common/middlewares"
	"github.com/escom/enfermeria-web/internal/pacientes/models"
	"github.com/escom/enfermeria-web/internal/pacientes/services"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type PacienteController struct {
	Service *services.PacienteService
	Logger  zerolog.Logger
}

func NewPacienteController(service *services.PacienteService, logger zerolog.Logger) *PacienteController {
	return &PacienteController{Service: service, Logger: logger}
}

func (pc *PacienteController) List(c echo.Context) error {
	ctx := middlewares.ContextoAutenticado(c)
	data := map[string]interface{}{
		"Sesion":   middlewares.SesionDesdeContexto(c),
		"Busqueda": c.QueryParam("busqueda"),
		"Msg":      c.QueryParam("msg"),
		"Error":    c.QueryParam("error"),
	}

	resp, err := pc.Service.GetAll(ctx)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success:
		data["Error"] = resp.Message
	default:
		filtrados := services.FiltrarPacientes(resp.Pacientes, c.QueryParam("busqueda"))
		data["Pacientes"] = filtrados
		data["Total"] = len(filtrados)
	}

	if stats, err := pc.Service.GetEstadisticas(ctx); err != nil {
		pc.Logger.Warn().Err(err).Msg("error cargando estadísticas de pacientes")
	} else if stats.Success {
		data["Estadisticas"] = stats
	}

	return c.Render(http.StatusOK, "pacientes_list.html", data)
}

func (pc *PacienteController) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/pacientes")
	}
	data := map[string]interface{}{"Sesion": middlewares.SesionDesdeContexto(c)}

	resp, err := pc.Service.GetByID(middlewares.ContextoAutenticado(c), id)
	switch {
	case err != nil:
		data["Error"] = apiclient.MensajeUsuario(err)
	case !resp.Success:
		data["Error"] = resp.Message
	default:
		data["Paciente"] = resp.Paciente
	}
	return c.Render(http.StatusOK, "paciente_detail.html", data)
}

func (pc *PacienteController) NuevoForm(c echo.Context) error {
	return c.Render(http.StatusOK, "paciente_form.html", map[string]interface{}{
		"Sesion":   middlewares.SesionDesdeContexto(c),
		"FormData": models.PacienteFormData{},
	})
}

func (pc *PacienteController) EditarForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/pacientes")
	}

	resp, err := pc.Service.GetByID(middlewares.ContextoAutenticado(c), id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/pacientes?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success || resp.Paciente == nil {
		return c.Redirect(http.StatusFound, "/pacientes?error="+url.QueryEscape(resp.Message))
	}

	p := resp.Paciente
	return c.Render(http.StatusOK, "paciente_form.html", map[string]interface{}{
		"Sesion":     middlewares.SesionDesdeContexto(c),
		"PacienteID": p.PacienteID,
		"FormData": models.PacienteFormData{
			PacienteNombre:   p.PacienteNombre,
			PacienteEscuela:  p.PacienteEscuela,
			PacienteEdad:     p.PacienteEdad,
			PacienteTelefono: p.PacienteTelefono,
			PacienteEmail:    p.PacienteEmail,
		},
	})
}

func (pc *PacienteController) Guardar(c echo.Context) error {
	form, errMsg := parsePacienteForm(c)

	var id int
	if param := c.Param("id"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			return c.Redirect(http.StatusFound, "/pacientes")
		}
		id = parsed
	}

	render := func(status int, mensaje string) error {
		return c.Render(status, "paciente_form.html", map[string]interface{}{
			"Sesion":     middlewares.SesionDesdeContexto(c),
			"PacienteID": id,
			"FormData":   form,
			"Error":      mensaje,
		})
	}

	if errMsg != "" {
		return render(http.StatusBadRequest, errMsg)
	}

	var resp *models.PacienteResponse
	var err error
	if id > 0 {
		resp, err = pc.Service.Update(middlewares.ContextoAutenticado(c), id, form)
	} else {
		resp, err = pc.Service.Create(middlewares.ContextoAutenticado(c), form)
	}
	if err != nil {
		return render(http.StatusOK, apiclient.MensajeUsuario(err))
	}
	if !resp.Success {
		return render(http.StatusOK, resp.Message)
	}

	msg := "Paciente registrado exitosamente"
	if id > 0 {
		msg = "Paciente actualizado exitosamente"
	}
	return c.Redirect(http.StatusFound, "/pacientes?msg="+url.QueryEscape(msg))
}

func (pc *PacienteController) Eliminar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, "/pacientes")
	}

	resp, err := pc.Service.Delete(middlewares.ContextoAutenticado(c), id)
	if err != nil {
		return c.Redirect(http.StatusFound, "/pacientes?error="+url.QueryEscape(apiclient.MensajeUsuario(err)))
	}
	if !resp.Success {
		return c.Redirect(http.StatusFound, "/pacientes?error="+url.QueryEscape(resp.Message))
	}
	return c.Redirect(http.StatusFound, "/pacientes?msg="+url.QueryEscape("Paciente eliminado exitosamente"))
}

func parsePacienteForm(c echo.Context) (models.PacienteFormData, string) {
	form := models.PacienteFormData{
		PacienteNombre:   c.FormValue("pacienteNombre"),
		PacienteEscuela:  c.FormValue("pacienteEscuela"),
		PacienteTelefono: c.FormValue("pacienteTelefono"),
		PacienteEmail:    c.FormValue("pacienteEmail"),
	}
	form.PacienteEdad, _ = strconv.Atoi(c.FormValue("pacienteEdad"))

	switch {
	case form.PacienteNombre == "":
		return form, "El nombre es requerido"
	case form.PacienteEdad <= 0 || form.PacienteEdad > 120:
		return form, "La edad debe estar entre 1 y 120"
	case !services.ValidarTelefono(form.PacienteTelefono):
		return form, "El teléfono no tiene un formato válido"
	case !services.ValidarEmail(form.PacienteEmail):
		return form, "El email no tiene un formato válido"
	}
	return form, ""
}
