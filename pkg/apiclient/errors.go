package apiclient

import "errors"

// MensajeUsuario traduce un error del cliente a texto presentable: los
// fallos de transporte se reportan como problema de conexión y los errores
// del backend conservan su mensaje tal cual.
func MensajeUsuario(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if errors.Is(err, ErrSinRespuesta) {
		return "Error de conexión: " + err.Error()
	}
	return err.Error()
}
