package domain

import (
	"net/url"
	"strconv"
)

// PetStatus is the backend's lifecycle state for a pet.
type PetStatus string

const (
	PetAvailable  PetStatus = "DISPONIBLE"
	PetInAdoption PetStatus = "EN_PROCESO_ADOPCION"
	PetAdopted    PetStatus = "ADOPTADO"
)

// Category groups pets by species.
type Category struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Pet is an animal in the adoption inventory, field names per the backend
// wire contract.
type Pet struct {
	ID          int       `json:"id"`
	Nombre      string    `json:"nombre"`
	Raza        string    `json:"raza"`
	Color       string    `json:"color,omitempty"`
	Peso        float64   `json:"peso,omitempty"`
	Estatura    float64   `json:"estatura,omitempty"`
	Descripcion string    `json:"descripcion,omitempty"`
	Estado      PetStatus `json:"estado"`
	Categoria   *Category `json:"categoria,omitempty"`
}

// PetInput creates or updates a pet.
type PetInput struct {
	Nombre      string    `json:"nombre" validate:"required"`
	Raza        string    `json:"raza" validate:"required"`
	CategoriaID int       `json:"categoriaId" validate:"required"`
	Color       string    `json:"color,omitempty"`
	Peso        float64   `json:"peso,omitempty"`
	Estatura    float64   `json:"estatura,omitempty"`
	Descripcion string    `json:"descripcion,omitempty"`
	NuevoEstado PetStatus `json:"nuevoEstado,omitempty"`
}

// PetFilter narrows a pet listing. Zero values are omitted from the query.
type PetFilter struct {
	Estado      PetStatus
	CategoriaID int
}

// Query encodes the filter as URL query parameters.
func (f PetFilter) Query() string {
	params := url.Values{}
	if f.Estado != "" {
		params.Set("estado", string(f.Estado))
	}
	if f.CategoriaID != 0 {
		params.Set("categoriaId", strconv.Itoa(f.CategoriaID))
	}
	return params.Encode()
}
