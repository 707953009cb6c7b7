package controllers

import (
	"net/http"
	"time"

	"github.com/escom/enfermeria-web/internal/auth/models"
	"github.com/escom/enfermeria-web/internal/auth/services"
	"github.com/escom/enfermeria-web/internal/common/middlewares"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/escom/enfermeria-web/pkg/utils"
	"github.com/labstack/echo/v4"
)

const sesionDuracion = 24 * time.Hour

type AuthController struct {
	Service *services.AuthService
	Secret  []byte
}

func NewAuthController(service *services.AuthService, secret []byte) *AuthController {
	return &AuthController{Service: service, Secret: secret}
}

// LoginPage muestra el formulario de acceso junto con el estado del
// backend.
func (ac *AuthController) LoginPage(c echo.Context) error {
	if sesion := middlewares.SesionDesdeContexto(c); sesion != nil && sesion.Token != "" {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	salud := ac.Service.CheckAPIHealth(c.Request().Context())
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{
		"Salud": salud,
		"Error": c.QueryParam("error"),
	})
}

// Login procesa las credenciales y, si el backend las acepta, emite la
// cookie de sesión firmada.
func (ac *AuthController) Login(c echo.Context) error {
	creds := models.LoginRequest{
		Correo:   c.FormValue("correo"),
		Password: c.FormValue("password"),
	}
	if creds.Correo == "" || creds.Password == "" {
		return c.Render(http.StatusBadRequest, "login.html", map[string]interface{}{
			"Error":  "Correo y contraseña son requeridos",
			"Correo": creds.Correo,
			"Salud":  ac.Service.CheckAPIHealth(c.Request().Context()),
		})
	}

	sesion, err := ac.Service.Login(c.Request().Context(), creds)
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login.html", map[string]interface{}{
			"Error":  apiclient.MensajeUsuario(err),
			"Correo": creds.Correo,
			"Salud":  ac.Service.CheckAPIHealth(c.Request().Context()),
		})
	}

	token, err := utils.GenerateSessionToken(utils.SesionClaims{
		UsuarioID: sesion.UsuarioID,
		Nombre:    sesion.Nombre,
		Correo:    sesion.Correo,
		Rol:       sesion.Rol,
		RolID:     sesion.RolID,
		Activo:    sesion.Activo,
		Token:     sesion.Token,
	}, ac.Secret, time.Now().Add(sesionDuracion))
	if err != nil {
		return c.Render(http.StatusInternalServerError, "login.html", map[string]interface{}{
			"Error": "No se pudo iniciar la sesión: " + err.Error(),
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     middlewares.SesionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sesionDuracion),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout borra la cookie y regresa al login.
func (ac *AuthController) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middlewares.SesionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// Landing es la página pública de inicio.
func (ac *AuthController) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, "landing.html", map[string]interface{}{
		"Sesion": middlewares.SesionDesdeContexto(c),
	})
}

// Admin es el panel administrativo. Sigue siendo un marcador de posición:
// sus formularios no llaman a ningún backend.
func (ac *AuthController) Admin(c echo.Context) error {
	return c.Render(http.StatusOK, "admin.html", map[string]interface{}{
		"Sesion": middlewares.SesionDesdeContexto(c),
	})
}
