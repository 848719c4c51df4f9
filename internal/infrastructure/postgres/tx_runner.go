package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/remitospro/remitos-api/internal/application/company"
	"github.com/remitospro/remitos-api/internal/application/usecase"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.RemitoTxRunner y company.CloneTxRunner.
var _ usecase.RemitoTxRunner = (*TxRunner)(nil)
var _ company.CloneTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRemito inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunRemito(ctx context.Context, fn func(
	remitoRepo repository.RemitoRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	remitoRepo := NewRemitoRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(remitoRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunClone inicia una transacción con todos los repos de negocio (cascada de
// duplicación de empresa). Si fn falla, el rollback descarta la empresa nueva
// y todo lo insertado bajo ella.
func (r *TxRunner) RunClone(ctx context.Context, fn func(repos company.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := company.TxRepos{
		Companies:  NewCompanyRepository(tx),
		Users:      NewUserRepository(tx),
		Categories: NewCategoryRepository(tx),
		Products:   NewProductRepository(tx),
		Clients:    NewClientRepository(tx),
		Estados:    NewEstadoRepository(tx),
		Remitos:    NewRemitoRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
