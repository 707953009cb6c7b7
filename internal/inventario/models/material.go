package models

type Material struct {
	MaterialID       int     `json:"materialId"`
	MaterialNom      string  `json:"materialNom"`
	MaterialDesc     string  `json:"materialDesc"`
	MaterialFecComp  string  `json:"materialFecComp"`
	MaterialEstado   string  `json:"materialEstado"`
	MaterialStock    int     `json:"materialStock"`
	MaterialStockMin int     `json:"materialStockMin"`
	MaterialPrecio   float64 `json:"materialPrecio"`
	CategoriaID      int     `json:"categoriaId"`
	CategoriaNombre  string  `json:"categoriaNombre"`
	CreatedAt        string  `json:"created_at,omitempty"`
	UpdatedAt        string  `json:"updated_at,omitempty"`
}

// Estados válidos de material.
const (
	MaterialDisponible    = "DISPONIBLE"
	MaterialAgotado       = "AGOTADO"
	MaterialDesgastado    = "DESGASTADO"
	MaterialMantenimiento = "MANTENIMIENTO"
)

type MaterialFormData struct {
	MaterialNom      string  `json:"materialNom"`
	MaterialDesc     string  `json:"materialDesc"`
	MaterialFecComp  string  `json:"materialFecComp"`
	MaterialEstado   string  `json:"materialEstado"`
	MaterialStock    int     `json:"materialStock"`
	MaterialStockMin int     `json:"materialStockMin"`
	MaterialPrecio   float64 `json:"materialPrecio"`
	CategoriaID      int     `json:"categoriaId"`
}

type MaterialResponse struct {
	Success         bool       `json:"success"`
	Message         string     `json:"message"`
	Material        *Material  `json:"material,omitempty"`
	Materiales      []Material `json:"materiales,omitempty"`
	Total           int        `json:"total,omitempty"`
	TotalMateriales int        `json:"totalMateriales,omitempty"`
	StockBajo       int        `json:"stockBajo,omitempty"`
	EnMantenimiento int        `json:"enMantenimiento,omitempty"`
}
