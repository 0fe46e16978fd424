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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// CreateDetail persiste la cabecera de la orden.
func (r *OrderRepo) CreateDetail(detail *entity.OrderDetail) error {
	query := `
		INSERT INTO order_details (id, costumer_id, user_id, total_price, paid, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.CostumerID, detail.UserID, detail.TotalPrice,
		detail.Paid, detail.CreatedAt, detail.IsActive,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert order detail: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la orden.
func (r *OrderRepo) CreateLine(line *entity.Order) error {
	query := `
		INSERT INTO orders (id, product_id, warehouse_id, order_detail_id, count)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ProductID, line.WarehouseID, line.OrderDetailID, line.Count,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetDetailByID(id string) (*entity.OrderDetail, error) {
	query := `
		SELECT id, costumer_id, user_id, total_price, paid, created_at, is_active
		FROM order_details WHERE id = $1`
	var d entity.OrderDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CostumerID, &d.UserID, &d.TotalPrice, &d.Paid, &d.CreatedAt, &d.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order detail: %w", err)
	}
	return &d, nil
}

func (r *OrderRepo) ListLinesByDetail(orderDetailID string) ([]*entity.Order, error) {
	query := `
		SELECT id, product_id, warehouse_id, order_detail_id, count
		FROM orders WHERE order_detail_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderDetailID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.WarehouseID, &o.OrderDetailID, &o.Count); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *OrderRepo) ListDetailsByCostumer(costumerID string) ([]*entity.OrderDetail, error) {
	query := `
		SELECT id, costumer_id, user_id, total_price, paid, created_at, is_active
		FROM order_details WHERE costumer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, costumerID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.ID, &d.CostumerID, &d.UserID, &d.TotalPrice, &d.Paid, &d.CreatedAt, &d.IsActive); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// SetDetailInactive marca la cabecera como despachada dentro de la tx del
// caller. El UPDATE es condicional sobre is_active y toma el lock de la fila:
// de dos confirmaciones concurrentes solo una afecta filas, la otra recibe
// ErrAlreadyConfirmed (el caller ya verificó existencia en la misma tx).
func (r *OrderRepo) SetDetailInactive(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE order_details SET is_active = false WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("set order detail inactive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyConfirmed
	}
	return nil
}
