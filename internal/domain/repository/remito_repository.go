package repository

import "github.com/remitospro/remitos-api/internal/domain/entity"

// RemitoRepository define el puerto de persistencia para Remito y sus líneas.
type RemitoRepository interface {
	Create(remito *entity.Remito) error
	CreateItem(item *entity.RemitoItem) error
	GetByID(id string) (*entity.Remito, error)
	// ListByCompany con limit <= 0 devuelve todas las filas (orden por number).
	ListByCompany(companyID string, limit, offset int) ([]*entity.Remito, error)
	GetItemsByRemito(remitoID string) ([]*entity.RemitoItem, error)
	// ListItemsByCompany devuelve en una sola consulta todas las líneas de
	// todos los remitos de la empresa (join con remitos; usado por la
	// duplicación de empresas para evitar N consultas).
	ListItemsByCompany(companyID string) ([]*entity.RemitoItem, error)
	// NextNumber devuelve el próximo número secuencial de remito de la
	// empresa. Debe llamarse dentro de la misma transacción que Create.
	NextNumber(companyID string) (int, error)
	Update(remito *entity.Remito) error
	Delete(id string) error
}
