package usecase

import (
	"context"
	"fmt"

	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// RemitoPDFUseCase genera la versión imprimible (PDF) de un remito.
type RemitoPDFUseCase struct {
	remitoRepo  repository.RemitoRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	estadoRepo  repository.EstadoRepository
	generator   RemitoPDFGenerator
}

// NewRemitoPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewRemitoPDFUseCase(
	remitoRepo repository.RemitoRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	estadoRepo repository.EstadoRepository,
	generator RemitoPDFGenerator,
) *RemitoPDFUseCase {
	return &RemitoPDFUseCase{
		remitoRepo:  remitoRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		estadoRepo:  estadoRepo,
		generator:   generator,
	}
}

// DownloadRemitoPDF recupera el remito con sus líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el remito no existe.
//   - domain.ErrForbidden        si el remito no pertenece a la empresa del token.
func (uc *RemitoPDFUseCase) DownloadRemitoPDF(ctx context.Context, companyID, remitoID string) (pdfBytes []byte, filename string, err error) {
	remito, err := uc.remitoRepo.GetByID(remitoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener remito: %w", err)
	}
	if remito == nil {
		return nil, "", domain.ErrNotFound
	}
	if remito.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}

	// Cliente opcional: el remito puede no tener destinatario
	var client *entity.Client
	if remito.ClientID != nil {
		client, err = uc.clientRepo.GetByID(*remito.ClientID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
		}
	}

	// El campo Estado guarda normalmente el ID de un estado; si no resuelve
	// (caso fallback de la duplicación) se imprime el valor crudo.
	estadoName := remito.Estado
	if estado, err := uc.estadoRepo.GetByID(remito.Estado); err == nil && estado != nil {
		estadoName = estado.Name
	}

	items, err := uc.remitoRepo.GetItemsByRemito(remitoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	bytes, err := uc.generator.GenerateRemitoPDF(ctx, remito, company, client, estadoName, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	filename = fmt.Sprintf("remito-%d.pdf", remito.Number)
	return bytes, filename, nil
}
