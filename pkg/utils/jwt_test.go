package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	secret := []byte("secreto-de-prueba")
	claims := SesionClaims{
		UsuarioID: 7,
		Nombre:    "Laura Enfermera",
		Correo:    "laura@escom.mx",
		Rol:       "ADMIN",
		RolID:     1,
		Activo:    true,
		Token:     "token-del-backend",
	}

	firmado, err := GenerateSessionToken(claims, secret, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	parsed, err := ValidateSessionToken(firmado, secret)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if parsed.UsuarioID != 7 || parsed.Nombre != "Laura Enfermera" || parsed.Rol != "ADMIN" {
		t.Errorf("claims perdidos en el viaje: %+v", parsed)
	}
	if parsed.Token != "token-del-backend" {
		t.Errorf("el token opaco no sobrevivió: %q", parsed.Token)
	}
}

func TestSessionTokenConOtroSecretoFalla(t *testing.T) {
	firmado, err := GenerateSessionToken(SesionClaims{UsuarioID: 1}, []byte("uno"), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, err := ValidateSessionToken(firmado, []byte("otro")); err == nil {
		t.Error("un token firmado con otro secreto debe rechazarse")
	}
}

func TestSessionTokenExpiradoFalla(t *testing.T) {
	firmado, err := GenerateSessionToken(SesionClaims{UsuarioID: 1}, []byte("uno"), time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, err := ValidateSessionToken(firmado, []byte("uno")); err == nil {
		t.Error("un token expirado debe rechazarse")
	}
}

func TestSecretVacioFalla(t *testing.T) {
	if _, err := GenerateSessionToken(SesionClaims{}, nil, time.Now().Add(time.Hour)); err == nil {
		t.Error("firmar sin secreto debe fallar")
	}
	if _, err := ValidateSessionToken("lo-que-sea", nil); err == nil {
		t.Error("validar sin secreto debe fallar")
	}
}
