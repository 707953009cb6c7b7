package middlewares

import (
	"context"

	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/labstack/echo/v4"
)

// ContextoAutenticado devuelve el contexto de la petición con el token de
// la sesión adjunto, listo para pasarlo al cliente del API.
func ContextoAutenticado(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if sesion := SesionDesdeContexto(c); sesion != nil && sesion.Token != "" {
		ctx = apiclient.WithToken(ctx, sesion.Token)
	}
	return ctx
}
