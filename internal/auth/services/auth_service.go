package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/escom/enfermeria-web/internal/auth/models"
	"github.com/escom/enfermeria-web/pkg/apiclient"
	"github.com/rs/zerolog"
)

var ErrCredenciales = errors.New("Credenciales incorrectas")

// healthEndpoints se sondean en orden; el primero que responda 200 gana.
var healthEndpoints = []string{"/auth/health", "/health", "/actuator/health"}

type AuthService struct {
	api    *apiclient.Client
	logger zerolog.Logger
}

func NewAuthService(api *apiclient.Client, logger zerolog.Logger) *AuthService {
	return &AuthService{api: api, logger: logger}
}

// Login intenta primero el endpoint de desarrollo y, si falla por cualquier
// motivo (transporte o status), reintenta contra /auth/login. Solo si ambos
// fallan se reporta el error.
func (s *AuthService) Login(ctx context.Context, creds models.LoginRequest) (*models.Sesion, error) {
	var resp models.LoginResponse
	err := s.api.Post(ctx, "/auth/login-dev", creds, &resp)
	if err != nil {
		s.logger.Debug().Err(err).Msg("login-dev falló, intentando /auth/login")
		resp = models.LoginResponse{}
		err = s.api.Post(ctx, "/auth/login", creds, &resp)
	}
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case 401:
				return nil, ErrCredenciales
			case 404:
				return nil, errors.New("Endpoint de autenticación no encontrado")
			}
		}
		return nil, err
	}

	if !resp.Success {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, ErrCredenciales
	}

	datos := resp.User
	if datos == nil {
		datos = resp.Usuario
	}
	if datos == nil {
		return nil, errors.New("respuesta de login sin datos de usuario")
	}
	token := resp.Token
	if token == "" {
		token = "fake-jwt-token"
	}
	return NormalizarUsuario(datos, token), nil
}

// NormalizarUsuario adapta la forma del usuario del backend a la sesión
// canónica. Tolera las dos convenciones de nombres de campo que el backend
// ha usado (usuario_nombre/nombre, rol_nombre/rol, usuario_correo/correo);
// toda esa tolerancia vive aquí y en ningún otro lado.
func NormalizarUsuario(datos map[string]interface{}, token string) *models.Sesion {
	sesion := &models.Sesion{Token: token}

	sesion.UsuarioID = primerEntero(datos, "usuario_id", "id")
	sesion.Nombre = primeraCadena(datos, "nombre", "usuario_nombre", "nombreCompleto")
	if sesion.Nombre == "" {
		sesion.Nombre = "Usuario"
	}
	sesion.Correo = primeraCadena(datos, "correo", "usuario_correo")
	sesion.Rol = primeraCadena(datos, "rol", "rol_nombre")
	if sesion.Rol == "" {
		sesion.Rol = "USER"
	}
	sesion.RolID = primerEntero(datos, "rol_id", "rolId")

	switch activo := datos["usuario_activo"].(type) {
	case bool:
		sesion.Activo = activo
	default:
		if activo, ok := datos["activo"].(bool); ok {
			sesion.Activo = activo
		} else {
			sesion.Activo = true
		}
	}
	return sesion
}

// CheckAPIHealth sondea los endpoints candidatos en secuencia. Nunca
// devuelve error: si ninguno responde, reporta el backend como caído.
func (s *AuthService) CheckAPIHealth(ctx context.Context) models.HealthStatus {
	for _, endpoint := range healthEndpoints {
		var status models.HealthStatus
		if err := s.api.Get(ctx, endpoint, &status); err != nil {
			s.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("health check falló")
			continue
		}
		status.Endpoint = s.api.BaseURL() + endpoint
		if status.Database == "" {
			status.Database = "CONNECTED"
		}
		status.Success = true
		return status
	}
	return models.HealthStatus{
		Success:  false,
		Database: "DISCONNECTED",
		Mensaje:  "Backend no disponible",
	}
}

func primeraCadena(datos map[string]interface{}, claves ...string) string {
	for _, clave := range claves {
		if valor, ok := datos[clave].(string); ok && valor != "" {
			return valor
		}
	}
	return ""
}

func primerEntero(datos map[string]interface{}, claves ...string) int {
	for _, clave := range claves {
		switch valor := datos[clave].(type) {
		case float64:
			return int(valor)
		case int:
			return valor
		case string:
			var n int
			if _, err := fmt.Sscanf(valor, "%d", &n); err == nil {
				return n
			}
		}
	}
	return 0
}
