package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Remito representa la cabecera de un remito (nota de entrega).
//
// Estado almacena normalmente el ID de un EstadoRemito de la misma empresa.
// No es una foreign key: al clonar una empresa, si el estado de origen no
// tiene equivalente por nombre en destino, se conserva el valor original
// como fallback (ver caso de uso de duplicación).
type Remito struct {
	ID          string
	CompanyID   string
	Number      int
	ClientID    *string
	Estado      string
	Notes       string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RemitoItem representa una línea de un remito. ProductName y
// ProductDescription son snapshots desnormalizados tomados al momento de la
// escritura, para que el remito siga siendo legible aunque el producto cambie
// o se elimine.
type RemitoItem struct {
	ID                 string
	RemitoID           *string
	ProductID          *string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	LineTotal          decimal.Decimal
	ProductName        string
	ProductDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
