package models

// Receta es la raíz del agregado; sus líneas viajan en DetalleReceta.
type Receta struct {
	RecetaID       int    `json:"recetaId"`
	RecetaFolio    string `json:"recetaFolio"`
	RecetaFecha    string `json:"recetaFecha"`
	RecetaDiag     string `json:"recetaDiag"`
	RecetaObs      string `json:"recetaObs"`
	RecetaEstado   string `json:"recetaEstado"`
	PacienteID     int    `json:"pacienteId"`
	UsuarioID      int    `json:"usuarioId"`
	PacienteNombre string `json:"pacienteNombre,omitempty"`
	UsuarioNombre  string `json:"usuarioNombre,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// Estados válidos de receta. Solo las ACTIVAS son editables en la vista.
const (
	RecetaActiva     = "ACTIVA"
	RecetaCompletada = "COMPLETADA"
	RecetaCancelada  = "CANCELADA"
)

// DetalleReceta es una línea de la receta. Puede referir un medicamento del
// catálogo (medicamentoId) o traer solo el nombre libre; ambos pueden venir
// y el backend decide cuál manda.
type DetalleReceta struct {
	DetRecetaID           int    `json:"detRecetaId"`
	DetRecetaMed          string `json:"detRecetaMed"`
	DetRecetaCant         int    `json:"detRecetaCant"`
	DetRecetaDosis        string `json:"detRecetaDosis"`
	DetRecetaDur          string `json:"detRecetaDur"`
	DetRecetaIndicaciones string `json:"detRecetaIndicaciones"`
	RecetaID              int    `json:"recetaId"`
	MedicamentoID         *int   `json:"medicamentoId"`
	MedicamentoNombre     string `json:"medicamentoNombre,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
}

// RecetaCompleta es la forma agregada que entrega /recetas/{id}/completa.
type RecetaCompleta struct {
	Receta   Receta          `json:"receta"`
	Detalles []DetalleReceta `json:"detalles"`
}

type RecetaFormData struct {
	RecetaDiag string                  `json:"recetaDiag"`
	RecetaObs  string                  `json:"recetaObs"`
	PacienteID int                     `json:"pacienteId"`
	Detalles   []DetalleRecetaFormData `json:"detalles"`
}

type DetalleRecetaFormData struct {
	DetRecetaMed          string `json:"detRecetaMed"`
	DetRecetaCant         int    `json:"detRecetaCant"`
	DetRecetaDosis        string `json:"detRecetaDosis"`
	DetRecetaDur          string `json:"detRecetaDur"`
	DetRecetaIndicaciones string `json:"detRecetaIndicaciones"`
	MedicamentoID         *int   `json:"medicamentoId"`
}

// NuevoDetalle es la línea vacía que se siembra al crear una receta nueva.
func NuevoDetalle() DetalleRecetaFormData {
	return DetalleRecetaFormData{DetRecetaCant: 1}
}

type RecetaResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Receta         *Receta         `json:"receta,omitempty"`
	Recetas        []Receta        `json:"recetas,omitempty"`
	RecetaCompleta *RecetaCompleta `json:"recetaCompleta,omitempty"`
	Total          int             `json:"total,omitempty"`
	TotalRecetas   int             `json:"totalRecetas,omitempty"`
	Activas        int             `json:"activas,omitempty"`
	Completadas    int             `json:"completadas,omitempty"`
}
