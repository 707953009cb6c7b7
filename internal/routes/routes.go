package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/escom/enfermeria-web/config"
	authControllers "github.com/escom/enfermeria-web/internal/auth/controllers"
	authServices "github.com/escom/enfermeria-web/internal/auth/services"
	"github.com/escom/enfermeria-web/internal/common/middlewares"
	dashboardControllers "github.com/escom/enfermeria-web/internal/dashboard/controllers"
	invControllers "github.com/escom/enfermeria-web/internal/inventario/controllers"
	invServices "github.com/escom/enfermeria-web/internal/inventario/services"
	pacControllers "github.com/escom/enfermeria-web/internal/pacientes/controllers"
	pacServices "github.com/escom/enfermeria-web/internal/pacientes/services"
	recControllers "github.com/escom/enfermeria-web/internal/recetas/controllers"
	recServices "github.com/escom/enfermeria-web/internal/recetas/services"
	repControllers "github.com/escom/enfermeria-web/internal/reportes/controllers"
	repServices "github.com/escom/enfermeria-web/internal/reportes/services"
	"github.com/escom/enfermeria-web/pkg/apiclient"
)

// Init inicializa todas las rutas de la aplicación sobre Echo.
func Init(e *echo.Echo, api *apiclient.Client, cfg *config.Config, logger zerolog.Logger) {
	// Inicialización de services
	authService := authServices.NewAuthService(api, logger)
	medicamentoService := invServices.NewMedicamentoService(api, logger)
	materialService := invServices.NewMaterialService(api)
	pacienteService := pacServices.NewPacienteService(api)
	recetaService := recServices.NewRecetaService(api)
	reporteService := repServices.NewReporteService(api)

	// Inicialización de controllers con sus services
	secret := []byte(cfg.SessionSecret)
	authController := authControllers.NewAuthController(authService, secret)
	dashboardController := dashboardControllers.NewDashboardController(reporteService, logger)
	medicamentoController := invControllers.NewMedicamentoController(medicamentoService, logger)
	materialController := invControllers.NewMaterialController(materialService, medicamentoService, logger)
	pacienteController := pacControllers.NewPacienteController(pacienteService, logger)
	recetaController := recControllers.NewRecetaController(recetaService, pacienteService, medicamentoService, logger)
	reporteController := repControllers.NewReporteController(reporteService, logger)

	loginLimiter := middlewares.NewIPRateLimiter(rate.Limit(1), 5)

	// Rutas públicas
	e.GET("/", authController.Landing)
	e.GET("/login", authController.LoginPage)
	e.POST("/login", authController.Login, middlewares.RateLimit(loginLimiter))
	e.GET("/logout", authController.Logout)

	// Rutas protegidas por sesión
	app := e.Group("", middlewares.RequireSesion())
	app.GET("/dashboard", dashboardController.Index)

	medicamentos := app.Group("/medicamentos")
	medicamentos.GET("", medicamentoController.List)
	medicamentos.GET("/nuevo", medicamentoController.NuevoForm)
	medicamentos.POST("/nuevo", medicamentoController.Guardar)
	medicamentos.GET("/:id", medicamentoController.Detail)
	medicamentos.GET("/:id/editar", medicamentoController.EditarForm)
	medicamentos.POST("/:id/editar", medicamentoController.Guardar)
	medicamentos.POST("/:id/eliminar", medicamentoController.Eliminar)

	materiales := app.Group("/materiales")
	materiales.GET("", materialController.List)
	materiales.GET("/nuevo", materialController.NuevoForm)
	materiales.POST("/nuevo", materialController.Guardar)
	materiales.GET("/:id", materialController.Detail)
	materiales.GET("/:id/editar", materialController.EditarForm)
	materiales.POST("/:id/editar", materialController.Guardar)
	materiales.POST("/:id/eliminar", materialController.Eliminar)

	pacientes := app.Group("/pacientes")
	pacientes.GET("", pacienteController.List)
	pacientes.GET("/nuevo", pacienteController.NuevoForm)
	pacientes.POST("/nuevo", pacienteController.Guardar)
	pacientes.GET("/:id", pacienteController.Detail)
	pacientes.GET("/:id/editar", pacienteController.EditarForm)
	pacientes.POST("/:id/editar", pacienteController.Guardar)
	pacientes.POST("/:id/eliminar", pacienteController.Eliminar)

	recetas := app.Group("/recetas")
	recetas.GET("", recetaController.List)
	recetas.GET("/nueva", recetaController.NuevoForm)
	recetas.POST("/nueva", recetaController.Guardar)
	recetas.GET("/:id", recetaController.Detail)
	recetas.GET("/:id/editar", recetaController.EditarForm)
	recetas.POST("/:id/editar", recetaController.Guardar)
	recetas.POST("/:id/estado", recetaController.CambiarEstado)
	recetas.POST("/:id/eliminar", recetaController.Eliminar)

	reportes := app.Group("/reportes")
	reportes.GET("", reporteController.Page)
	reportes.GET("/:tipo/pdf", reporteController.Descargar)

	// Panel administrativo, solo para roles administradores
	app.GET("/admin", authController.Admin, middlewares.RequireAdmin())
}
