package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
// CategoryID es nil si el producto no tiene categoría asignada.
type Product struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
