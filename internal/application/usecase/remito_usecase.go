package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// RemitoUseCase crea y consulta remitos. La creación asigna el número
// secuencial de la empresa y escribe cabecera + líneas en una sola
// transacción (vía RemitoTxRunner).
type RemitoUseCase struct {
	txRunner   RemitoTxRunner
	remitoRepo repository.RemitoRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	estadoRepo  repository.EstadoRepository
}

// NewRemitoUseCase construye el caso de uso.
func NewRemitoUseCase(
	txRunner RemitoTxRunner,
	remitoRepo repository.RemitoRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	estadoRepo repository.EstadoRepository,
) *RemitoUseCase {
	return &RemitoUseCase{
		txRunner:    txRunner,
		remitoRepo:  remitoRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		estadoRepo:  estadoRepo,
	}
}

// Create valida cliente/productos de la empresa, toma snapshots de nombre y
// descripción de cada producto, calcula line_total = quantity * unit_price y
// persiste todo de forma atómica. Si no viene estado, usa el default de la
// empresa.
func (uc *RemitoUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateRemitoRequest) (*dto.RemitoResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validar cliente (opcional) y que sea de la empresa
	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		if client.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	// Resolver estado: el indicado (debe ser de la empresa) o el default
	estadoID := in.Estado
	if estadoID == "" {
		def, err := uc.estadoRepo.GetDefaultByCompany(companyID)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, domain.ErrConflict // empresa sin estado default
		}
		estadoID = def.ID
	} else {
		estado, err := uc.estadoRepo.GetByID(estadoID)
		if err != nil {
			return nil, err
		}
		if estado == nil || estado.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	// Validar productos y precios (fuera de la tx, solo lectura)
	productsByID := make(map[string]*entity.Product)
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsZero() {
			in.Items[i].UnitPrice = product.Price
		}
		productsByID[item.ProductID] = product
	}

	now := time.Now()
	remitoID := uuid.New().String()
	var remito *entity.Remito
	var items []*entity.RemitoItem

	err := uc.txRunner.RunRemito(ctx, func(
		remitoRepo repository.RemitoRepository,
		_ repository.ProductRepository,
	) error {
		number, err := remitoRepo.NextNumber(companyID)
		if err != nil {
			return err
		}
		remito = &entity.Remito{
			ID:          remitoID,
			CompanyID:   companyID,
			Number:      number,
			ClientID:    in.ClientID,
			Estado:      estadoID,
			Notes:       in.Notes,
			CreatedByID: userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := remitoRepo.Create(remito); err != nil {
			return err
		}
		for _, reqItem := range in.Items {
			product := productsByID[reqItem.ProductID]
			productID := reqItem.ProductID
			rid := remitoID
			item := &entity.RemitoItem{
				ID:                 uuid.New().String(),
				RemitoID:           &rid,
				ProductID:          &productID,
				Quantity:           reqItem.Quantity,
				UnitPrice:          reqItem.UnitPrice,
				LineTotal:          reqItem.Quantity.Mul(reqItem.UnitPrice),
				ProductName:        product.Name,
				ProductDescription: product.Description,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
			if err := remitoRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return remitoToResponse(remito, items), nil
}

// GetByID obtiene un remito de la empresa, con sus líneas.
func (uc *RemitoUseCase) GetByID(companyID, id string) (*dto.RemitoResponse, error) {
	remito, err := uc.remitoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if remito == nil || remito.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.remitoRepo.GetItemsByRemito(id)
	if err != nil {
		return nil, err
	}
	return remitoToResponse(remito, items), nil
}

// List lista remitos de la empresa (solo cabeceras).
func (uc *RemitoUseCase) List(companyID string, limit, offset int) (*dto.RemitoListResponse, error) {
	list, err := uc.remitoRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RemitoResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *remitoToResponse(r, nil))
	}
	return &dto.RemitoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza la cabecera de un remito de la empresa.
func (uc *RemitoUseCase) Update(companyID, id string, in dto.UpdateRemitoRequest) (*dto.RemitoResponse, error) {
	remito, err := uc.remitoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if remito == nil || remito.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.ClientID != nil {
		if *in.ClientID == "" {
			remito.ClientID = nil
		} else {
			client, err := uc.clientRepo.GetByID(*in.ClientID)
			if err != nil {
				return nil, err
			}
			if client == nil || client.CompanyID != companyID {
				return nil, domain.ErrNotFound
			}
			remito.ClientID = in.ClientID
		}
	}
	if in.Estado != nil {
		estado, err := uc.estadoRepo.GetByID(*in.Estado)
		if err != nil {
			return nil, err
		}
		if estado == nil || estado.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		remito.Estado = *in.Estado
	}
	if in.Notes != nil {
		remito.Notes = *in.Notes
	}
	remito.UpdatedAt = time.Now()
	if err := uc.remitoRepo.Update(remito); err != nil {
		return nil, err
	}
	items, err := uc.remitoRepo.GetItemsByRemito(id)
	if err != nil {
		return nil, err
	}
	return remitoToResponse(remito, items), nil
}

// Delete elimina un remito de la empresa (las líneas caen por cascade).
func (uc *RemitoUseCase) Delete(companyID, id string) error {
	remito, err := uc.remitoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if remito == nil || remito.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.remitoRepo.Delete(id)
}

func remitoToResponse(r *entity.Remito, items []*entity.RemitoItem) *dto.RemitoResponse {
	out := &dto.RemitoResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Number:      r.Number,
		ClientID:    r.ClientID,
		Estado:      r.Estado,
		Notes:       r.Notes,
		CreatedByID: r.CreatedByID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.RemitoItemResponse{
			ID:                 it.ID,
			RemitoID:           it.RemitoID,
			ProductID:          it.ProductID,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			LineTotal:          it.LineTotal,
			ProductName:        it.ProductName,
			ProductDescription: it.ProductDescription,
		})
	}
	return out
}
