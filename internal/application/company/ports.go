package company

import (
	"context"

	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a la misma transacción que la
// duplicación necesita. Se pasa como struct porque la cascada toca todas las
// tablas de negocio.
type TxRepos struct {
	Companies  repository.CompanyRepository
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Clients    repository.ClientRepository
	Estados    repository.EstadoRepository
	Remitos    repository.RemitoRepository
}

// CloneTxRunner ejecuta la cascada de duplicación completa dentro de una
// única transacción: si cualquier paso falla, no queda ni la empresa nueva ni
// ningún sub-recurso parcialmente insertado.
type CloneTxRunner interface {
	RunClone(ctx context.Context, fn func(repos TxRepos) error) error
}
