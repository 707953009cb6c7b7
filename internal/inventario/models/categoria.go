package models

// Categoria es compartida por medicamentos y materiales.
type Categoria struct {
	CategoriaID   int    `json:"categoriaId"`
	CategoriaNom  string `json:"categoriaNom"`
	CategoriaDesc string `json:"categoriaDesc"`
}

type CategoriaResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Categorias []Categoria `json:"categorias"`
}
