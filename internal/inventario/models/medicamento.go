package models

// Medicamento refleja el registro que entrega el backend. Los nombres de
// campo JSON son contrato con el API y no deben cambiarse.
type Medicamento struct {
	MedicamentoID          int     `json:"medicamentoId"`
	MedicamentoNom         string  `json:"medicamentoNom"`
	MedicamentoDesc        string  `json:"medicamentoDesc"`
	MedicamentoFecComp     string  `json:"medicamentoFecComp"`
	MedicamentoFecCad      string  `json:"medicamentoFecCad"`
	MedicamentoLote        string  `json:"medicamentoLote"`
	MedicamentoLaboratorio string  `json:"medicamentoLaboratorio"`
	MedicamentoEstado      string  `json:"medicamentoEstado"`
	MedicamentoStock       int     `json:"medicamentoStock"`
	MedicamentoStockMin    int     `json:"medicamentoStockMin"`
	MedicamentoPrecio      float64 `json:"medicamentoPrecio"`
	CategoriaID            int     `json:"categoriaId"`
	CategoriaNombre        string  `json:"categoriaNombre"`
	CreatedAt              string  `json:"created_at,omitempty"`
	UpdatedAt              string  `json:"updated_at,omitempty"`
}

// Estados válidos de medicamento.
const (
	MedicamentoDisponible = "DISPONIBLE"
	MedicamentoAgotado    = "AGOTADO"
	MedicamentoCaducado   = "CADUCADO"
	MedicamentoReservado  = "RESERVADO"
)

type MedicamentoFormData struct {
	MedicamentoNom         string  `json:"medicamentoNom"`
	MedicamentoDesc        string  `json:"medicamentoDesc"`
	MedicamentoFecComp     string  `json:"medicamentoFecComp"`
	MedicamentoFecCad      string  `json:"medicamentoFecCad"`
	MedicamentoLote        string  `json:"medicamentoLote"`
	MedicamentoLaboratorio string  `json:"medicamentoLaboratorio"`
	MedicamentoEstado      string  `json:"medicamentoEstado"`
	MedicamentoStock       int     `json:"medicamentoStock"`
	MedicamentoStockMin    int     `json:"medicamentoStockMin"`
	MedicamentoPrecio      float64 `json:"medicamentoPrecio"`
	CategoriaID            int     `json:"categoriaId"`
}

type MedicamentoResponse struct {
	Success           bool          `json:"success"`
	Message           string        `json:"message"`
	Medicamento       *Medicamento  `json:"medicamento,omitempty"`
	Medicamentos      []Medicamento `json:"medicamentos,omitempty"`
	Total             int           `json:"total,omitempty"`
	TotalMedicamentos int           `json:"totalMedicamentos,omitempty"`
	StockBajo         int           `json:"stockBajo,omitempty"`
	ProximosCaducar   int           `json:"proximosCaducar,omitempty"`
}
