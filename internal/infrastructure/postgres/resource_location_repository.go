package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ResourceLocationRepository = (*ResourceLocationRepo)(nil)

// ResourceLocationRepo libro de stock de materia prima sobre PostgreSQL
// (usable con pool o tx).
type ResourceLocationRepo struct {
	q Querier
}

// NewResourceLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResourceLocationRepository(q Querier) *ResourceLocationRepo {
	return &ResourceLocationRepo{q: q}
}

// Get obtiene el stock de un recurso en una bodega. nil si no hay fila.
func (r *ResourceLocationRepo) Get(resourceID, warehouseID string) (*entity.ResourceLocation, error) {
	query := `
		SELECT resource_id, warehouse_id, amount, updated_at
		FROM resource_locations WHERE resource_id = $1 AND warehouse_id = $2`
	var l entity.ResourceLocation
	err := r.q.QueryRow(context.Background(), query, resourceID, warehouseID).Scan(
		&l.ResourceID, &l.WarehouseID, &l.Amount, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource location: %w", err)
	}
	return &l, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). nil si no hay fila.
func (r *ResourceLocationRepo) GetForUpdate(resourceID, warehouseID string) (*entity.ResourceLocation, error) {
	query := `
		SELECT resource_id, warehouse_id, amount, updated_at
		FROM resource_locations WHERE resource_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var l entity.ResourceLocation
	err := r.q.QueryRow(context.Background(), query, resourceID, warehouseID).Scan(
		&l.ResourceID, &l.WarehouseID, &l.Amount, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource location for update: %w", err)
	}
	return &l, nil
}

// Insert crea la fila para un par (recurso, bodega) que aún no existe.
func (r *ResourceLocationRepo) Insert(loc *entity.ResourceLocation) error {
	query := `
		INSERT INTO resource_locations (resource_id, warehouse_id, amount, updated_at)
		VALUES ($1, $2, $3, now())`
	_, err := r.q.Exec(context.Background(), query, loc.ResourceID, loc.WarehouseID, loc.Amount)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert resource location: %w", err)
	}
	return nil
}

// Upsert inserta o fija la cantidad en stock (por recurso y bodega).
func (r *ResourceLocationRepo) Upsert(loc *entity.ResourceLocation) error {
	query := `
		INSERT INTO resource_locations (resource_id, warehouse_id, amount, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (resource_id, warehouse_id)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, loc.ResourceID, loc.WarehouseID, loc.Amount)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("upsert resource location: %w", err)
	}
	return nil
}

// Adjust aplica un delta en una sola sentencia condicional (nunca baja de cero).
func (r *ResourceLocationRepo) Adjust(resourceID, warehouseID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE resource_locations
		SET amount = amount + $3, updated_at = now()
		WHERE resource_id = $1 AND warehouse_id = $2 AND amount + $3 >= 0
		RETURNING amount`
	var newAmount decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, resourceID, warehouseID, delta).Scan(&newAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			loc, getErr := r.Get(resourceID, warehouseID)
			if getErr != nil {
				return decimal.Zero, getErr
			}
			if loc == nil {
				return decimal.Zero, domain.ErrNotFound
			}
			return decimal.Zero, &domain.InsufficientStockError{ItemID: resourceID, WarehouseID: warehouseID}
		}
		return decimal.Zero, fmt.Errorf("adjust resource location: %w", err)
	}
	return newAmount, nil
}

// ListByWarehouse lista los recursos almacenados en una bodega.
func (r *ResourceLocationRepo) ListByWarehouse(warehouseID string) ([]*entity.ResourceLocation, error) {
	query := `
		SELECT resource_id, warehouse_id, amount, updated_at
		FROM resource_locations WHERE warehouse_id = $1 ORDER BY resource_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list resource locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ResourceLocation
	for rows.Next() {
		var l entity.ResourceLocation
		if err := rows.Scan(&l.ResourceID, &l.WarehouseID, &l.Amount, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resource location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
