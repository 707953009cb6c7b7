package services

import (
	"regexp"
	"testing"

	"github.com/escom/enfermeria-web/internal/recetas/models"
)

func formValida() models.RecetaFormData {
	return models.RecetaFormData{
		PacienteID: 1,
		RecetaDiag: "Faringitis",
		Detalles: []models.DetalleRecetaFormData{
			{DetRecetaMed: "Paracetamol", DetRecetaCant: 2},
		},
	}
}

func TestValidarFormAceptaFormCompleta(t *testing.T) {
	if err := ValidarForm(formValida()); err != nil {
		t.Errorf("ValidarForm: %v", err)
	}
}

// La validación reporta una sola violación a la vez, en orden fijo.
func TestValidarFormOrdenDeMensajes(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*models.RecetaFormData)
		quiere string
	}{
		{
			"sin paciente",
			func(f *models.RecetaFormData) { f.PacienteID = 0 },
			"Debe seleccionar un paciente",
		},
		{
			"sin diagnóstico",
			func(f *models.RecetaFormData) { f.RecetaDiag = "   " },
			"El diagnóstico es requerido",
		},
		{
			"sin líneas",
			func(f *models.RecetaFormData) { f.Detalles = nil },
			"Debe agregar al menos un medicamento",
		},
		{
			"línea sin nombre",
			func(f *models.RecetaFormData) { f.Detalles[0].DetRecetaMed = " " },
			"Todos los medicamentos deben tener un nombre",
		},
		{
			"cantidad inválida",
			func(f *models.RecetaFormData) { f.Detalles[0].DetRecetaCant = 0 },
			"La cantidad debe ser mayor a 0",
		},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			form := formValida()
			caso.mutar(&form)
			err := ValidarForm(form)
			if err == nil || err.Error() != caso.quiere {
				t.Errorf("ValidarForm = %v, se esperaba %q", err, caso.quiere)
			}
		})
	}
}

// Con todo vacío gana la primera regla: el paciente.
func TestValidarFormPrimeraViolacionGana(t *testing.T) {
	err := ValidarForm(models.RecetaFormData{})
	if err == nil || err.Error() != "Debe seleccionar un paciente" {
		t.Errorf("ValidarForm = %v", err)
	}
}

// Los nombres se revisan en todas las líneas antes que cualquier cantidad.
func TestValidarFormNombresAntesQueCantidades(t *testing.T) {
	form := formValida()
	form.Detalles = append(form.Detalles, models.DetalleRecetaFormData{DetRecetaMed: "", DetRecetaCant: 3})
	form.Detalles[0].DetRecetaCant = 0 // la primera línea tiene cantidad inválida

	err := ValidarForm(form)
	if err == nil || err.Error() != "Todos los medicamentos deben tener un nombre" {
		t.Errorf("ValidarForm = %v", err)
	}
}

func TestGenerarFolioFormato(t *testing.T) {
	patron := regexp.MustCompile(`^REC-\d{6}-\d{3}$`)
	for i := 0; i < 20; i++ {
		if folio := GenerarFolio(); !patron.MatchString(folio) {
			t.Fatalf("folio con formato inesperado: %q", folio)
		}
	}
}

func TestEstadoTextYClass(t *testing.T) {
	if got := EstadoText(models.RecetaActiva); got != "Activa" {
		t.Errorf("EstadoText = %q", got)
	}
	if got := EstadoText("RARO"); got != "RARO" {
		t.Errorf("un estado desconocido se muestra tal cual: %q", got)
	}
	if got := EstadoClass(models.RecetaCancelada); got != "badge bg-danger" {
		t.Errorf("EstadoClass = %q", got)
	}
}

func TestFiltrarRecetas(t *testing.T) {
	snapshot := []models.Receta{
		{RecetaFolio: "REC-250301-001", RecetaDiag: "Gripe", PacienteNombre: "Ana", RecetaEstado: models.RecetaActiva},
		{RecetaFolio: "REC-250302-002", RecetaDiag: "Esguince", PacienteNombre: "Bruno", RecetaEstado: models.RecetaCompletada},
	}
	if got := FiltrarRecetas(snapshot, "gripe", ""); len(got) != 1 {
		t.Errorf("por diagnóstico: %d", len(got))
	}
	if got := FiltrarRecetas(snapshot, "ana", ""); len(got) != 1 {
		t.Errorf("por paciente: %d", len(got))
	}
	if got := FiltrarRecetas(snapshot, "", models.RecetaCompletada); len(got) != 1 || got[0].PacienteNombre != "Bruno" {
		t.Errorf("por estado: %+v", got)
	}
	if got := FiltrarRecetas(snapshot, "rec-", models.RecetaActiva); len(got) != 1 {
		t.Errorf("texto y estado combinados: %d", len(got))
	}
}
