package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// DuplicateCompanyRequest entrada del endpoint de duplicación de empresa.
// Cada flag indica si el sub-recurso correspondiente se clona desde la
// empresa de origen. Si Estados es false, la nueva empresa se siembra con
// los cuatro estados canónicos.
type DuplicateCompanyRequest struct {
	Name       string `json:"name" validate:"required"`
	Estados    bool   `json:"estados"`
	Categorias bool   `json:"categorias"`
	Productos  bool   `json:"productos"`
	Clientes   bool   `json:"clientes"`
	Remitos    bool   `json:"remitos"`
	Usuarios   bool   `json:"usuarios"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
