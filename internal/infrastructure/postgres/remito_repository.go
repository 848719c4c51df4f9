package postgres

import (
	"context"
	"fmt"

	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

var _ repository.RemitoRepository = (*RemitoRepo)(nil)

const remitoColumns = `id, company_id, number, client_id, estado, notes, created_by_id, created_at, updated_at`

const remitoItemColumns = `id, remito_id, product_id, quantity, unit_price, line_total, product_name, product_description, created_at, updated_at`

// RemitoRepo implementación del puerto RemitoRepository sobre PostgreSQL (usable con pool o tx).
type RemitoRepo struct {
	q Querier
}

// NewRemitoRepository construye el adaptador de persistencia para remitos.
func NewRemitoRepository(q Querier) *RemitoRepo {
	return &RemitoRepo{q: q}
}

// Create persiste la cabecera de un remito. La numeración viene de NextNumber
// dentro de la misma transacción.
func (r *RemitoRepo) Create(remito *entity.Remito) error {
	query := `
		INSERT INTO remitos (` + remitoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		remito.ID, remito.CompanyID, remito.Number, remito.ClientID, remito.Estado,
		remito.Notes, remito.CreatedByID, remito.CreatedAt, remito.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert remito: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de remito.
func (r *RemitoRepo) CreateItem(item *entity.RemitoItem) error {
	query := `
		INSERT INTO remito_items (` + remitoItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RemitoID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal,
		item.ProductName, item.ProductDescription, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert remito item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un remito por ID.
func (r *RemitoRepo) GetByID(id string) (*entity.Remito, error) {
	query := `SELECT ` + remitoColumns + ` FROM remitos WHERE id = $1`
	var rm entity.Remito
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rm.ID, &rm.CompanyID, &rm.Number, &rm.ClientID, &rm.Estado,
		&rm.Notes, &rm.CreatedByID, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remito: %w", err)
	}
	return &rm, nil
}

// ListByCompany lista remitos por empresa ordenados por número descendente
// (limit <= 0 = sin límite).
func (r *RemitoRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Remito, error) {
	query := `
		SELECT ` + remitoColumns + ` FROM remitos WHERE company_id = $1
		ORDER BY number DESC LIMIT NULLIF($2, 0) OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list remitos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Remito
	for rows.Next() {
		var rm entity.Remito
		if err := rows.Scan(&rm.ID, &rm.CompanyID, &rm.Number, &rm.ClientID, &rm.Estado,
			&rm.Notes, &rm.CreatedByID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		list = append(list, &rm)
	}
	return list, rows.Err()
}

// GetItemsByRemito devuelve las líneas de un remito en orden de creación.
func (r *RemitoRepo) GetItemsByRemito(remitoID string) ([]*entity.RemitoItem, error) {
	query := `SELECT ` + remitoItemColumns + ` FROM remito_items WHERE remito_id = $1 ORDER BY created_at, id`
	return r.queryItems(query, remitoID)
}

// ListItemsByCompany devuelve todas las líneas de todos los remitos de la
// empresa en una sola consulta (join con remitos).
func (r *RemitoRepo) ListItemsByCompany(companyID string) ([]*entity.RemitoItem, error) {
	query := `
		SELECT i.id, i.remito_id, i.product_id, i.quantity, i.unit_price, i.line_total,
		       i.product_name, i.product_description, i.created_at, i.updated_at
		FROM remito_items i
		JOIN remitos r ON r.id = i.remito_id
		WHERE r.company_id = $1
		ORDER BY i.created_at, i.id`
	return r.queryItems(query, companyID)
}

// NextNumber devuelve el próximo número secuencial de remito de la empresa.
// Sólo es seguro dentro de la transacción que luego inserta el remito.
func (r *RemitoRepo) NextNumber(companyID string) (int, error) {
	var next int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(number), 0) + 1 FROM remitos WHERE company_id = $1`, companyID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next remito number: %w", err)
	}
	return next, nil
}

// Update actualiza la cabecera de un remito (el número no cambia).
func (r *RemitoRepo) Update(remito *entity.Remito) error {
	query := `
		UPDATE remitos SET client_id = $2, estado = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		remito.ID, remito.ClientID, remito.Estado, remito.Notes, remito.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update remito: %w", err)
	}
	return nil
}

// Delete elimina un remito; sus líneas caen por ON DELETE CASCADE.
func (r *RemitoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM remitos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete remito: %w", err)
	}
	return nil
}

func (r *RemitoRepo) queryItems(query string, args ...any) ([]*entity.RemitoItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list remito items: %w", err)
	}
	defer rows.Close()
	var list []*entity.RemitoItem
	for rows.Next() {
		var it entity.RemitoItem
		if err := rows.Scan(&it.ID, &it.RemitoID, &it.ProductID, &it.Quantity, &it.UnitPrice,
			&it.LineTotal, &it.ProductName, &it.ProductDescription, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan remito item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
