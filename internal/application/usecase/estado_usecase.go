package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// EstadoUseCase casos de uso CRUD de estados de remito.
type EstadoUseCase struct {
	repo repository.EstadoRepository
}

// NewEstadoUseCase construye el caso de uso.
func NewEstadoUseCase(repo repository.EstadoRepository) *EstadoUseCase {
	return &EstadoUseCase{repo: repo}
}

// Create crea un estado. Si IsDefault es true, desmarca el default anterior
// para mantener un único default por empresa.
func (uc *EstadoUseCase) Create(companyID string, in dto.CreateEstadoRequest) (*dto.EstadoResponse, error) {
	now := time.Now()
	if in.IsDefault {
		if err := uc.clearDefault(companyID, now); err != nil {
			return nil, err
		}
	}
	estado := &entity.EstadoRemito{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		IsActive:    true,
		IsDefault:   in.IsDefault,
		SortOrder:   in.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(estado); err != nil {
		return nil, err
	}
	return estadoToResponse(estado), nil
}

// GetByID obtiene un estado de la empresa.
func (uc *EstadoUseCase) GetByID(companyID, id string) (*dto.EstadoResponse, error) {
	estado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if estado == nil || estado.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return estadoToResponse(estado), nil
}

// List lista los estados de la empresa ordenados por sort_order.
func (uc *EstadoUseCase) List(companyID string) ([]dto.EstadoResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EstadoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *estadoToResponse(e))
	}
	return items, nil
}

// Update actualiza un estado de la empresa.
func (uc *EstadoUseCase) Update(companyID, id string, in dto.UpdateEstadoRequest) (*dto.EstadoResponse, error) {
	estado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if estado == nil || estado.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if in.IsDefault != nil && *in.IsDefault && !estado.IsDefault {
		if err := uc.clearDefault(companyID, now); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		estado.Name = *in.Name
	}
	if in.Description != nil {
		estado.Description = *in.Description
	}
	if in.Color != nil {
		estado.Color = *in.Color
	}
	if in.Icon != nil {
		estado.Icon = *in.Icon
	}
	if in.IsActive != nil {
		estado.IsActive = *in.IsActive
	}
	if in.IsDefault != nil {
		estado.IsDefault = *in.IsDefault
	}
	if in.SortOrder != nil {
		estado.SortOrder = *in.SortOrder
	}
	estado.UpdatedAt = now
	if err := uc.repo.Update(estado); err != nil {
		return nil, err
	}
	return estadoToResponse(estado), nil
}

// Delete elimina un estado de la empresa. No se permite borrar el default.
func (uc *EstadoUseCase) Delete(companyID, id string) error {
	estado, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if estado == nil || estado.CompanyID != companyID {
		return domain.ErrNotFound
	}
	if estado.IsDefault {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func (uc *EstadoUseCase) clearDefault(companyID string, now time.Time) error {
	current, err := uc.repo.GetDefaultByCompany(companyID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	current.IsDefault = false
	current.UpdatedAt = now
	return uc.repo.Update(current)
}

func estadoToResponse(e *entity.EstadoRemito) *dto.EstadoResponse {
	return &dto.EstadoResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		Name:        e.Name,
		Description: e.Description,
		Color:       e.Color,
		Icon:        e.Icon,
		IsActive:    e.IsActive,
		IsDefault:   e.IsDefault,
		SortOrder:   e.SortOrder,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
