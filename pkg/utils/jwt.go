package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SesionClaims lleva la sesión normalizada en la cookie firmada. El token
// del backend viaja opaco dentro de los claims; nunca se valida aquí.
type SesionClaims struct {
	UsuarioID int    `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
	RolID     int    `json:"rol_id"`
	Activo    bool   `json:"activo"`
	Token     string `json:"token"`
	jwt.RegisteredClaims
}

// GenerateSessionToken firma la cookie de sesión con HS256.
func GenerateSessionToken(claims SesionClaims, secret []byte, exp time.Time) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("session secret is missing")
	}
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateSessionToken parsea y verifica la cookie de sesión.
func ValidateSessionToken(tokenString string, secret []byte) (*SesionClaims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is missing")
	}
	claims := &SesionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
