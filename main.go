package main

import (
	"net/http"
	"os"
	"time"

	"github.com/escom/enfermeria-web/config"
	"github.com/escom/enfermeria-web/internal/common/middlewares"
	"github.com/escom/enfermeria-web/internal/routes"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/escom/enfermeria-web/web"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.AppEnv != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("no se pudieron cargar las plantillas")
	}

	api := apiclient.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(echomw.Recover())
	e.Use(middlewares.Logger(logger))
	e.Use(middlewares.CargarSesion([]byte(cfg.SessionSecret)))

	// Las rutas desconocidas regresan al panel o al login según haya sesión.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
			if sesion := middlewares.SesionDesdeContexto(c); sesion != nil && sesion.Token != "" {
				_ = c.Redirect(http.StatusFound, "/dashboard")
				return
			}
			_ = c.Redirect(http.StatusFound, "/login")
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	routes.Init(e, api, cfg, logger)

	logger.Info().Str("port", cfg.Port).Str("api", api.BaseURL()).Msg("iniciando servidor")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("el servidor se detuvo")
	}
}
