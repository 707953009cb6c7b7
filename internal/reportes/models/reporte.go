package models

// OpcionesFiltro son los meses y años que ofrece el backend para filtrar
// reportes.
type OpcionesFiltro struct {
	Meses     []string `json:"meses"`
	Años      []int    `json:"años"`
	MesActual int      `json:"mesActual"`
	AñoActual int      `json:"añoActual"`
}

// EstadisticasReporte es la vista previa consolidada que alimenta el
// dashboard y la página de reportes.
type EstadisticasReporte struct {
	Medicamentos    int `json:"medicamentos"`
	Materiales      int `json:"materiales"`
	Recetas         int `json:"recetas"`
	Pacientes       int `json:"pacientes"`
	StockBajo       int `json:"stockBajo"`
	ProximosCaducar int `json:"proximosCaducar"`
}

type EstadisticasResponse struct {
	Estadisticas EstadisticasReporte `json:"estadisticas"`
	Periodo      string              `json:"periodo"`
}
