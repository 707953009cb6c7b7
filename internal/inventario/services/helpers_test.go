package services

import (
	"testing"
	"time"

	"github.com/escom/enfermeria-web/internal/inventario/models"
)

func TestStockStatusClass(t *testing.T) {
	casos := []struct {
		stock, min int
		quiere     string
	}{
		{0, 5, "stock-agotado"},
		{3, 5, "stock-bajo"},
		{5, 5, "stock-bajo"},
		{6, 5, "stock-normal"},
	}
	for _, caso := range casos {
		if got := StockStatusClass(caso.stock, caso.min); got != caso.quiere {
			t.Errorf("StockStatusClass(%d, %d) = %q, se esperaba %q", caso.stock, caso.min, got, caso.quiere)
		}
	}
}

func TestDiasParaCaducar(t *testing.T) {
	ahora := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	casos := []struct {
		fecha  string
		quiere int
	}{
		{"2025-03-10", 0},
		{"2025-03-25", 15},
		{"2025-04-09", 30},
		{"2025-04-10", 31},
		{"2025-03-01", -9},
		{"2025-03-25T00:00:00", 15}, // con componente de hora
		{"", 0},
		{"no-es-fecha", 0},
	}
	for _, caso := range casos {
		if got := DiasParaCaducar(caso.fecha, ahora); got != caso.quiere {
			t.Errorf("DiasParaCaducar(%q) = %d, se esperaba %d", caso.fecha, got, caso.quiere)
		}
	}
}

func TestProntoACaducar(t *testing.T) {
	ahora := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	casos := []struct {
		fecha  string
		quiere bool
	}{
		{"2025-03-11", true},  // 1 día
		{"2025-04-09", true},  // 30 días
		{"2025-04-10", false}, // 31 días
		{"2025-03-10", false}, // ya caducó
		{"", false},
	}
	for _, caso := range casos {
		if got := ProntoACaducar(caso.fecha, ahora); got != caso.quiere {
			t.Errorf("ProntoACaducar(%q) = %v", caso.fecha, got)
		}
	}
}

func TestEstadoMostradoCaducidadManda(t *testing.T) {
	ahora := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Caducado por fecha aunque el registro diga disponible.
	if got := EstadoMostrado(models.MedicamentoDisponible, "2025-03-01", ahora); got != models.MedicamentoCaducado {
		t.Errorf("EstadoMostrado = %q", got)
	}
	// Con fecha futura se respeta el estado almacenado.
	if got := EstadoMostrado(models.MedicamentoReservado, "2025-06-01", ahora); got != models.MedicamentoReservado {
		t.Errorf("EstadoMostrado = %q", got)
	}
	// Sin fecha de caducidad no hay sustitución.
	if got := EstadoMostrado(models.MedicamentoDisponible, "", ahora); got != models.MedicamentoDisponible {
		t.Errorf("EstadoMostrado = %q", got)
	}
}

func TestFiltrarMedicamentos(t *testing.T) {
	snapshot := []models.Medicamento{
		{MedicamentoNom: "Paracetamol", MedicamentoLaboratorio: "Genfar", MedicamentoLote: "L-1", MedicamentoEstado: models.MedicamentoDisponible},
		{MedicamentoNom: "Ibuprofeno", MedicamentoLaboratorio: "Pfizer", MedicamentoLote: "L-2", MedicamentoEstado: models.MedicamentoAgotado},
		{MedicamentoNom: "Amoxicilina", MedicamentoLaboratorio: "Genfar", MedicamentoLote: "L-3", MedicamentoEstado: models.MedicamentoDisponible},
	}

	if got := FiltrarMedicamentos(snapshot, "genfar", ""); len(got) != 2 {
		t.Errorf("por laboratorio: %d resultados", len(got))
	}
	if got := FiltrarMedicamentos(snapshot, "l-2", ""); len(got) != 1 || got[0].MedicamentoNom != "Ibuprofeno" {
		t.Errorf("por lote: %+v", got)
	}
	if got := FiltrarMedicamentos(snapshot, "", models.MedicamentoAgotado); len(got) != 1 {
		t.Errorf("por estado: %d resultados", len(got))
	}
	if got := FiltrarMedicamentos(snapshot, "genfar", models.MedicamentoAgotado); len(got) != 0 {
		t.Errorf("texto y estado se combinan con AND: %d resultados", len(got))
	}
	if got := FiltrarMedicamentos(snapshot, "  PARACETAMOL  ", ""); len(got) != 1 {
		t.Errorf("la búsqueda debe recortar espacios e ignorar mayúsculas: %d", len(got))
	}
}

func TestFiltrarMateriales(t *testing.T) {
	snapshot := []models.Material{
		{MaterialNom: "Gasas", MaterialDesc: "Paquete estéril", MaterialEstado: models.MaterialDisponible},
		{MaterialNom: "Tijeras", MaterialDesc: "Acero inoxidable", MaterialEstado: models.MaterialMantenimiento},
	}
	if got := FiltrarMateriales(snapshot, "estéril", ""); len(got) != 1 || got[0].MaterialNom != "Gasas" {
		t.Errorf("por descripción: %+v", got)
	}
	if got := FiltrarMateriales(snapshot, "", models.MaterialMantenimiento); len(got) != 1 {
		t.Errorf("por estado: %d", len(got))
	}
}

func TestFormatDateForInput(t *testing.T) {
	if got := FormatDateForInput("2025-03-10T00:00:00"); got != "2025-03-10" {
		t.Errorf("FormatDateForInput = %q", got)
	}
	if got := FormatDateForInput(""); got != "" {
		t.Errorf("FormatDateForInput vacío = %q", got)
	}
}
