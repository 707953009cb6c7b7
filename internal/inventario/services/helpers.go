package services

import (
	"math"
	"strings"
	"time"

	"github.com/escom/enfermeria-web/internal/inventario/models"
)

// Clases de severidad de stock. La regla es la misma para medicamentos y
// materiales: 0 agotado, entre 1 y el mínimo bajo, arriba del mínimo normal.
func StockStatusClass(stock, stockMin int) string {
	if stock == 0 {
		return "stock-agotado"
	}
	if stock <= stockMin {
		return "stock-bajo"
	}
	return "stock-normal"
}

// DiasParaCaducar calcula ceil((fechaCaducidad − ahora) / 1 día). Una fecha
// vacía o no parseable cuenta como 0.
func DiasParaCaducar(fechaCaducidad string, ahora time.Time) int {
	if fechaCaducidad == "" {
		return 0
	}
	// El backend manda fechas tipo "2006-01-02" o "2006-01-02T15:04:05".
	soloFecha := strings.SplitN(fechaCaducidad, "T", 2)[0]
	caducidad, err := time.Parse("2006-01-02", soloFecha)
	if err != nil {
		return 0
	}
	diff := caducidad.Sub(ahora)
	return int(math.Ceil(diff.Hours() / 24))
}

// ProntoACaducar marca la ventana de advertencia: entre 1 y 30 días.
func ProntoACaducar(fechaCaducidad string, ahora time.Time) bool {
	dias := DiasParaCaducar(fechaCaducidad, ahora)
	return dias >= 1 && dias <= 30
}

// EstadoMostrado aplica la regla de caducidad sobre el estado almacenado:
// con 0 días o menos se muestra CADUCADO sin importar lo que diga el
// registro.
func EstadoMostrado(estado, fechaCaducidad string, ahora time.Time) string {
	if fechaCaducidad != "" && DiasParaCaducar(fechaCaducidad, ahora) <= 0 {
		return models.MedicamentoCaducado
	}
	return estado
}

func MedicamentoEstadoText(estado string) string {
	switch estado {
	case models.MedicamentoDisponible:
		return "Disponible"
	case models.MedicamentoAgotado:
		return "Agotado"
	case models.MedicamentoCaducado:
		return "Caducado"
	case models.MedicamentoReservado:
		return "Reservado"
	default:
		return estado
	}
}

func MedicamentoEstadoClass(estado string) string {
	switch estado {
	case models.MedicamentoDisponible:
		return "badge bg-success"
	case models.MedicamentoAgotado:
		return "badge bg-danger"
	case models.MedicamentoCaducado:
		return "badge bg-warning text-dark"
	case models.MedicamentoReservado:
		return "badge bg-info"
	default:
		return "badge bg-secondary"
	}
}

func MaterialEstadoText(estado string) string {
	switch estado {
	case models.MaterialDisponible:
		return "Disponible"
	case models.MaterialAgotado:
		return "Agotado"
	case models.MaterialDesgastado:
		return "Desgastado"
	case models.MaterialMantenimiento:
		return "En Mantenimiento"
	default:
		return estado
	}
}

func MaterialEstadoClass(estado string) string {
	switch estado {
	case models.MaterialDisponible:
		return "badge bg-success"
	case models.MaterialAgotado:
		return "badge bg-danger"
	case models.MaterialDesgastado:
		return "badge bg-warning text-dark"
	case models.MaterialMantenimiento:
		return "badge bg-info"
	default:
		return "badge bg-secondary"
	}
}

// FormatDateForInput recorta el timestamp del backend al formato que acepta
// un <input type="date">.
func FormatDateForInput(fecha string) string {
	if fecha == "" {
		return ""
	}
	return strings.SplitN(fecha, "T", 2)[0]
}

// FiltrarMedicamentos filtra el snapshot en memoria por texto y estado. El
// filtrado es local a la vista; el snapshot se descarta al navegar.
func FiltrarMedicamentos(snapshot []models.Medicamento, busqueda, estado string) []models.Medicamento {
	busqueda = strings.ToLower(strings.TrimSpace(busqueda))
	filtrados := make([]models.Medicamento, 0, len(snapshot))
	for _, m := range snapshot {
		if estado != "" && m.MedicamentoEstado != estado {
			continue
		}
		if busqueda != "" &&
			!strings.Contains(strings.ToLower(m.MedicamentoNom), busqueda) &&
			!strings.Contains(strings.ToLower(m.MedicamentoLaboratorio), busqueda) &&
			!strings.Contains(strings.ToLower(m.MedicamentoLote), busqueda) {
			continue
		}
		filtrados = append(filtrados, m)
	}
	return filtrados
}

func FiltrarMateriales(snapshot []models.Material, busqueda, estado string) []models.Material {
	busqueda = strings.ToLower(strings.TrimSpace(busqueda))
	filtrados := make([]models.Material, 0, len(snapshot))
	for _, m := range snapshot {
		if estado != "" && m.MaterialEstado != estado {
			continue
		}
		if busqueda != "" &&
			!strings.Contains(strings.ToLower(m.MaterialNom), busqueda) &&
			!strings.Contains(strings.ToLower(m.MaterialDesc), busqueda) {
			continue
		}
		filtrados = append(filtrados, m)
	}
	return filtrados
}
