package middlewares

import (
	"net/http"

	"github.com/escom/enfermeria-web/internal/auth/models"
	"github.com/escom/enfermeria-web/pkg/utils"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	// ContextKeySesion es la clave bajo la que los controllers encuentran
	// la sesión en el contexto de echo.
	ContextKeySesion contextKey = "sesion"

	// SesionCookie es el nombre de la cookie firmada.
	SesionCookie = "enfermeria_sesion"
)

// SesionDesdeContexto devuelve la sesión cargada, o nil si no hay.
func SesionDesdeContexto(c echo.Context) *models.Sesion {
	sesion, _ := c.Get(string(ContextKeySesion)).(*models.Sesion)
	return sesion
}

// CargarSesion parsea la cookie de sesión si existe y deja la sesión en el
// contexto. No bloquea: las rutas públicas también pasan por aquí.
func CargarSesion(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SesionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			claims, err := utils.ValidateSessionToken(cookie.Value, secret)
			if err != nil {
				// Cookie corrupta o firmada con otro secreto: tratar
				// como no autenticado.
				return next(c)
			}
			c.Set(string(ContextKeySesion), &models.Sesion{
				UsuarioID: claims.UsuarioID,
				Nombre:    claims.Nombre,
				Correo:    claims.Correo,
				Rol:       claims.Rol,
				RolID:     claims.RolID,
				Activo:    claims.Activo,
				Token:     claims.Token,
			})
			return next(c)
		}
	}
}

// RequireSesion redirige a /login cuando no hay sesión con token. Es un
// guardado puramente de presentación; la autorización real es del backend.
func RequireSesion() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sesion := SesionDesdeContexto(c)
			if sesion == nil || sesion.Token == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// RequireAdmin redirige al dashboard a los usuarios autenticados sin rol
// administrador.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sesion := SesionDesdeContexto(c)
			if !sesion.EsAdmin() {
				return c.Redirect(http.StatusFound, "/dashboard")
			}
			return next(c)
		}
	}
}
