package models

import "strings"

// LoginRequest es el payload que espera el backend en /auth/login-dev y
// /auth/login.
type LoginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// Sesion es el único tipo de sesión del cliente. Se construye una sola vez
// al hacer login (ver NormalizarUsuario) y viaja en la cookie firmada; los
// componentes nunca leen almacenamiento directamente.
type Sesion struct {
	UsuarioID int    `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
	RolID     int    `json:"rol_id"`
	Activo    bool   `json:"activo"`
	// Token opaco emitido por el backend; se reenvía como Bearer sin
	// validarlo localmente.
	Token string `json:"token"`
}

// EsAdmin compara el rol sin distinguir mayúsculas contra las dos
// convenciones históricas del backend.
func (s *Sesion) EsAdmin() bool {
	if s == nil {
		return false
	}
	rol := strings.ToUpper(s.Rol)
	return rol == "ADMIN" || rol == "ADMINISTRADOR"
}

// TieneRol verifica un rol específico, sin distinguir mayúsculas.
func (s *Sesion) TieneRol(rol string) bool {
	if s == nil {
		return false
	}
	return strings.EqualFold(s.Rol, rol)
}

// LoginResponse refleja la envoltura del backend. El usuario puede llegar
// bajo "user" o "usuario" según la versión del backend.
type LoginResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    map[string]interface{} `json:"user"`
	Usuario map[string]interface{} `json:"usuario"`
	Token   string                 `json:"token"`
}

// HealthStatus es el resultado del sondeo de salud del backend.
type HealthStatus struct {
	Success  bool   `json:"success"`
	Database string `json:"database"`
	Mensaje  string `json:"mensaje"`
	Endpoint string `json:"endpoint"`
}
