package usecase

import (
	"context"

	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// RemitoTxRunner ejecuta una función dentro de una transacción que incluye los
// repos necesarios para crear un remito con sus líneas (numeración secuencial
// y escritura de cabecera + detalle de forma atómica).
type RemitoTxRunner interface {
	RunRemito(ctx context.Context, fn func(
		remitoRepo repository.RemitoRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// RemitoPDFGenerator genera la representación imprimible de un remito.
// La implementación (Maroto) vive en infrastructure.
type RemitoPDFGenerator interface {
	GenerateRemitoPDF(
		ctx context.Context,
		remito *entity.Remito,
		company *entity.Company,
		client *entity.Client,
		estadoName string,
		items []*entity.RemitoItem,
	) ([]byte, error)
}
