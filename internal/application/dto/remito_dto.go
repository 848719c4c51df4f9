package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemitoItemRequest línea de un remito a crear. Si UnitPrice es cero se toma
// el precio vigente del producto.
type RemitoItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateRemitoRequest entrada para crear un remito con sus líneas.
type CreateRemitoRequest struct {
	ClientID *string             `json:"client_id"`
	Estado   string              `json:"estado"` // vacío = estado default de la empresa
	Notes    string              `json:"notes"`
	Items    []RemitoItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateRemitoRequest entrada para actualizar cabecera de un remito.
type UpdateRemitoRequest struct {
	ClientID *string `json:"client_id"`
	Estado   *string `json:"estado"`
	Notes    *string `json:"notes"`
}

// RemitoItemResponse línea de remito en respuestas.
type RemitoItemResponse struct {
	ID                 string          `json:"id"`
	RemitoID           *string         `json:"remito_id"`
	ProductID          *string         `json:"product_id"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	LineTotal          decimal.Decimal `json:"line_total"`
	ProductName        string          `json:"product_name"`
	ProductDescription string          `json:"product_description"`
}

// RemitoResponse cabecera + líneas de un remito.
type RemitoResponse struct {
	ID          string               `json:"id"`
	CompanyID   string               `json:"company_id"`
	Number      int                  `json:"number"`
	ClientID    *string              `json:"client_id"`
	Estado      string               `json:"estado"`
	Notes       string               `json:"notes"`
	CreatedByID string               `json:"created_by_id"`
	Items       []RemitoItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// RemitoListResponse lista paginada de remitos (solo cabeceras).
type RemitoListResponse struct {
	Items []RemitoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
