package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductHistoryRepository = (*ProductHistoryRepo)(nil)

// ProductHistoryRepo historial de traslados sobre PostgreSQL, append-only
// (usable con pool o tx).
type ProductHistoryRepo struct {
	q Querier
}

// NewProductHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductHistoryRepository(q Querier) *ProductHistoryRepo {
	return &ProductHistoryRepo{q: q}
}

// Create inserta un registro de traslado. Debe ejecutarse en la misma tx del movimiento.
func (r *ProductHistoryRepo) Create(history *entity.ProductHistory) error {
	query := `
		INSERT INTO product_history (id, product_id, warehouse_old_id, warehouse_new_id, amount, last_update)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		history.ID, history.ProductID, history.WarehouseOldID, history.WarehouseNewID,
		history.Amount, history.LastUpdate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert product history: %w", err)
	}
	return nil
}

// List lista el historial más reciente primero.
func (r *ProductHistoryRepo) List(limit, offset int) ([]*entity.ProductHistory, error) {
	query := `
		SELECT id, product_id, warehouse_old_id, warehouse_new_id, amount, last_update
		FROM product_history ORDER BY last_update DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product history: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductHistory
	for rows.Next() {
		var h entity.ProductHistory
		if err := rows.Scan(&h.ID, &h.ProductID, &h.WarehouseOldID, &h.WarehouseNewID, &h.Amount, &h.LastUpdate); err != nil {
			return nil, fmt.Errorf("scan product history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
