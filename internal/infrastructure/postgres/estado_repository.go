package postgres

import (
	"context"
	"fmt"

	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

var _ repository.EstadoRepository = (*EstadoRepo)(nil)

const estadoColumns = `id, company_id, name, description, color, icon, is_active, is_default, sort_order, created_at, updated_at`

// EstadoRepo implementación del puerto EstadoRepository sobre PostgreSQL (usable con pool o tx).
type EstadoRepo struct {
	q Querier
}

// NewEstadoRepository construye el adaptador de persistencia para estados de remito.
func NewEstadoRepository(q Querier) *EstadoRepo {
	return &EstadoRepo{q: q}
}

// Create persiste un nuevo estado.
func (r *EstadoRepo) Create(estado *entity.EstadoRemito) error {
	query := `
		INSERT INTO estados_remito (` + estadoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		estado.ID, estado.CompanyID, estado.Name, estado.Description, estado.Color, estado.Icon,
		estado.IsActive, estado.IsDefault, estado.SortOrder, estado.CreatedAt, estado.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert estado: %w", err)
	}
	return nil
}

// GetByID obtiene un estado por ID.
func (r *EstadoRepo) GetByID(id string) (*entity.EstadoRemito, error) {
	query := `SELECT ` + estadoColumns + ` FROM estados_remito WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByCompany lista los estados de una empresa ordenados por sort_order.
func (r *EstadoRepo) ListByCompany(companyID string) ([]*entity.EstadoRemito, error) {
	query := `SELECT ` + estadoColumns + ` FROM estados_remito WHERE company_id = $1 ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list estados: %w", err)
	}
	defer rows.Close()
	var list []*entity.EstadoRemito
	for rows.Next() {
		var e entity.EstadoRemito
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Description, &e.Color, &e.Icon,
			&e.IsActive, &e.IsDefault, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// GetDefaultByCompany devuelve el estado marcado como default de la empresa,
// o nil si no hay ninguno.
func (r *EstadoRepo) GetDefaultByCompany(companyID string) (*entity.EstadoRemito, error) {
	query := `SELECT ` + estadoColumns + ` FROM estados_remito WHERE company_id = $1 AND is_default = true LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID))
}

// Update actualiza un estado.
func (r *EstadoRepo) Update(estado *entity.EstadoRemito) error {
	query := `
		UPDATE estados_remito
		SET name = $2, description = $3, color = $4, icon = $5, is_active = $6, is_default = $7, sort_order = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		estado.ID, estado.Name, estado.Description, estado.Color, estado.Icon,
		estado.IsActive, estado.IsDefault, estado.SortOrder, estado.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	return nil
}

// Delete elimina un estado por ID.
func (r *EstadoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM estados_remito WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete estado: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *EstadoRepo) scanOne(row rowScanner) (*entity.EstadoRemito, error) {
	var e entity.EstadoRemito
	err := row.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Description, &e.Color, &e.Icon,
		&e.IsActive, &e.IsDefault, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estado: %w", err)
	}
	return &e, nil
}
