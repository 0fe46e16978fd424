package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.CompositeRepository = (*CompositeRepo)(nil)

// CompositeRepo implementación de CompositeRepository (usable con pool o tx).
type CompositeRepo struct {
	q Querier
}

// NewCompositeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompositeRepository(q Querier) *CompositeRepo {
	return &CompositeRepo{q: q}
}

const compositeColumns = `id, employee_id, equipment_id, resource_id, resource_amount, product_id, product_amount, start_at, end_at`

// Create persiste un proceso de fabricación recién iniciado (end_at NULL).
func (r *CompositeRepo) Create(composite *entity.Composite) error {
	query := `
		INSERT INTO composites (` + compositeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		composite.ID, composite.EmployeeID, composite.EquipmentID, composite.ResourceID,
		composite.ResourceAmount, composite.ProductID, composite.ProductAmount,
		composite.StartAt, composite.EndAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert composite: %w", err)
	}
	return nil
}

func (r *CompositeRepo) GetByID(id string) (*entity.Composite, error) {
	query := `SELECT ` + compositeColumns + ` FROM composites WHERE id = $1`
	var c entity.Composite
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmployeeID, &c.EquipmentID, &c.ResourceID, &c.ResourceAmount,
		&c.ProductID, &c.ProductAmount, &c.StartAt, &c.EndAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get composite: %w", err)
	}
	return &c, nil
}

// End cierra el proceso solo si sigue en curso (end_at IS NULL). La condición
// en el WHERE hace del cierre una operación idempotente: cero filas afectadas
// significa "ya finalizado o inexistente" y se reporta con false, no con error.
func (r *CompositeRepo) End(id, productID string, productAmount int64, endAt time.Time) (bool, error) {
	query := `
		UPDATE composites
		SET product_id = $2, product_amount = $3, end_at = $4
		WHERE id = $1 AND end_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id, productID, productAmount, endAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrReferenceNotFound
		}
		return false, fmt.Errorf("end composite: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListRunning lista los procesos en curso (end_at IS NULL).
func (r *CompositeRepo) ListRunning() ([]*entity.Composite, error) {
	query := `SELECT ` + compositeColumns + ` FROM composites WHERE end_at IS NULL ORDER BY start_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list running composites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Composite
	for rows.Next() {
		var c entity.Composite
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.EquipmentID, &c.ResourceID, &c.ResourceAmount,
			&c.ProductID, &c.ProductAmount, &c.StartAt, &c.EndAt); err != nil {
			return nil, fmt.Errorf("scan composite: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
