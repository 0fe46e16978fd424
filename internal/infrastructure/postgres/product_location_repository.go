package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductLocationRepository = (*ProductLocationRepo)(nil)

// ProductLocationRepo libro de stock de producto terminado sobre PostgreSQL
// (usable con pool o tx).
type ProductLocationRepo struct {
	q Querier
}

// NewProductLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductLocationRepository(q Querier) *ProductLocationRepo {
	return &ProductLocationRepo{q: q}
}

// Get obtiene el stock de un producto en una bodega. nil si no hay fila.
func (r *ProductLocationRepo) Get(productID, warehouseID string) (*entity.ProductLocation, error) {
	query := `
		SELECT product_id, warehouse_id, amount, updated_at
		FROM product_locations WHERE product_id = $1 AND warehouse_id = $2`
	var l entity.ProductLocation
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&l.ProductID, &l.WarehouseID, &l.Amount, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product location: %w", err)
	}
	return &l, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). nil si no hay fila.
func (r *ProductLocationRepo) GetForUpdate(productID, warehouseID string) (*entity.ProductLocation, error) {
	query := `
		SELECT product_id, warehouse_id, amount, updated_at
		FROM product_locations WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var l entity.ProductLocation
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&l.ProductID, &l.WarehouseID, &l.Amount, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product location for update: %w", err)
	}
	return &l, nil
}

// Insert crea la fila para un par (producto, bodega) que aún no existe.
func (r *ProductLocationRepo) Insert(loc *entity.ProductLocation) error {
	query := `
		INSERT INTO product_locations (product_id, warehouse_id, amount, updated_at)
		VALUES ($1, $2, $3, now())`
	_, err := r.q.Exec(context.Background(), query, loc.ProductID, loc.WarehouseID, loc.Amount)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert product location: %w", err)
	}
	return nil
}

// Upsert inserta o fija la cantidad en stock (por producto y bodega).
func (r *ProductLocationRepo) Upsert(loc *entity.ProductLocation) error {
	query := `
		INSERT INTO product_locations (product_id, warehouse_id, amount, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, loc.ProductID, loc.WarehouseID, loc.Amount)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("upsert product location: %w", err)
	}
	return nil
}

// Adjust aplica un delta en una sola sentencia condicional: la fila queda
// bloqueada por el UPDATE y nunca baja de cero. Distingue fila inexistente
// (ErrNotFound) de stock insuficiente (InsufficientStockError).
func (r *ProductLocationRepo) Adjust(productID, warehouseID string, delta int64) (int64, error) {
	query := `
		UPDATE product_locations
		SET amount = amount + $3, updated_at = now()
		WHERE product_id = $1 AND warehouse_id = $2 AND amount + $3 >= 0
		RETURNING amount`
	var newAmount int64
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, delta).Scan(&newAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Sin fila afectada: o no existe o el delta la dejaría negativa.
			loc, getErr := r.Get(productID, warehouseID)
			if getErr != nil {
				return 0, getErr
			}
			if loc == nil {
				return 0, domain.ErrNotFound
			}
			return 0, &domain.InsufficientStockError{ItemID: productID, WarehouseID: warehouseID}
		}
		return 0, fmt.Errorf("adjust product location: %w", err)
	}
	return newAmount, nil
}

// List lista todas las ubicaciones ordenadas por bodega.
func (r *ProductLocationRepo) List() ([]*entity.ProductLocation, error) {
	query := `
		SELECT product_id, warehouse_id, amount, updated_at
		FROM product_locations ORDER BY warehouse_id, product_id`
	return r.queryLocations(query)
}

// ListByProduct lista las ubicaciones de un producto en todas las bodegas.
func (r *ProductLocationRepo) ListByProduct(productID string) ([]*entity.ProductLocation, error) {
	query := `
		SELECT product_id, warehouse_id, amount, updated_at
		FROM product_locations WHERE product_id = $1 ORDER BY warehouse_id`
	return r.queryLocations(query, productID)
}

// ListWarehouseProducts lista los productos de una bodega con su cantidad (join con products).
func (r *ProductLocationRepo) ListWarehouseProducts(warehouseID string) ([]*repository.WarehouseProduct, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.unit_id, p.price, p.last_updated, pl.amount
		FROM product_locations pl
		JOIN products p ON p.id = pl.product_id
		WHERE pl.warehouse_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list warehouse products: %w", err)
	}
	defer rows.Close()
	var list []*repository.WarehouseProduct
	for rows.Next() {
		var p entity.Product
		var amount int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.UnitID, &p.Price, &p.LastUpdated, &amount); err != nil {
			return nil, fmt.Errorf("scan warehouse product: %w", err)
		}
		list = append(list, &repository.WarehouseProduct{Product: &p, Amount: amount})
	}
	return list, rows.Err()
}

func (r *ProductLocationRepo) queryLocations(query string, args ...any) ([]*entity.ProductLocation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductLocation
	for rows.Next() {
		var l entity.ProductLocation
		if err := rows.Scan(&l.ProductID, &l.WarehouseID, &l.Amount, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
