package repository

import "github.com/remitospro/remitos-api/internal/domain/entity"

// EstadoRepository define el puerto de persistencia para EstadoRemito.
type EstadoRepository interface {
	Create(estado *entity.EstadoRemito) error
	GetByID(id string) (*entity.EstadoRemito, error)
	// ListByCompany devuelve los estados ordenados por sort_order.
	ListByCompany(companyID string) ([]*entity.EstadoRemito, error)
	GetDefaultByCompany(companyID string) (*entity.EstadoRemito, error)
	Update(estado *entity.EstadoRemito) error
	Delete(id string) error
}
