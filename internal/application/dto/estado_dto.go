package dto

import "time"

// CreateEstadoRequest entrada para crear un estado de remito.
type CreateEstadoRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Icon        string `json:"icon"`
	IsDefault   bool   `json:"is_default"`
	SortOrder   int    `json:"sort_order" validate:"min=0"`
}

// UpdateEstadoRequest entrada para actualizar un estado de remito.
type UpdateEstadoRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
	IsDefault   *bool   `json:"is_default"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,min=0"`
}

// EstadoResponse salida de un estado de remito.
type EstadoResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
