package services

import (
	"testing"

	"github.com/escom/enfermeria-web/internal/pacientes/models"
)

func TestValidarEmail(t *testing.T) {
	casos := []struct {
		email  string
		quiere bool
	}{
		{"", true}, // opcional
		{"ana@escom.mx", true},
		{"sin-arroba.mx", false},
		{"dos espacios@x.mx", false},
		{"a@b", false},
	}
	for _, caso := range casos {
		if got := ValidarEmail(caso.email); got != caso.quiere {
			t.Errorf("ValidarEmail(%q) = %v", caso.email, got)
		}
	}
}

func TestValidarTelefono(t *testing.T) {
	casos := []struct {
		telefono string
		quiere   bool
	}{
		{"", true}, // opcional
		{"5512345678", true},
		{"+52 5512345678", true},
		{"(55) 1234-5678", true},
		{"123", false},
		{"abcdefghij", false},
	}
	for _, caso := range casos {
		if got := ValidarTelefono(caso.telefono); got != caso.quiere {
			t.Errorf("ValidarTelefono(%q) = %v", caso.telefono, got)
		}
	}
}

func TestEdadClass(t *testing.T) {
	casos := []struct {
		edad   int
		quiere string
	}{
		{17, "edad-joven"},
		{18, "edad-adulto-joven"},
		{30, "edad-adulto-joven"},
		{31, "edad-adulto"},
		{50, "edad-adulto"},
		{51, "edad-mayor"},
	}
	for _, caso := range casos {
		if got := EdadClass(caso.edad); got != caso.quiere {
			t.Errorf("EdadClass(%d) = %q", caso.edad, got)
		}
	}
}

func TestFiltrarPacientes(t *testing.T) {
	snapshot := []models.Paciente{
		{PacienteNombre: "Ana López", PacienteEscuela: "ESCOM"},
		{PacienteNombre: "Bruno Díaz", PacienteEscuela: "ESIME"},
	}
	if got := FiltrarPacientes(snapshot, "escom"); len(got) != 1 || got[0].PacienteNombre != "Ana López" {
		t.Errorf("por escuela: %+v", got)
	}
	if got := FiltrarPacientes(snapshot, "bruno"); len(got) != 1 {
		t.Errorf("por nombre: %d", len(got))
	}
	if got := FiltrarPacientes(snapshot, ""); len(got) != 2 {
		t.Errorf("sin búsqueda regresa todo: %d", len(got))
	}
}
