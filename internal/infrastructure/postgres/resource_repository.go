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

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implementación de ResourceRepository (usable con pool o tx).
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

func (r *ResourceRepo) Create(resource *entity.Resource) error {
	query := `INSERT INTO resources (id, name, description, unit_id) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		resource.ID, resource.Name, resource.Description, resource.UnitID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

func (r *ResourceRepo) GetByID(id string) (*entity.Resource, error) {
	query := `SELECT id, name, description, unit_id FROM resources WHERE id = $1`
	var res entity.Resource
	err := r.q.QueryRow(context.Background(), query, id).Scan(&res.ID, &res.Name, &res.Description, &res.UnitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &res, nil
}

func (r *ResourceRepo) List() ([]*entity.Resource, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, unit_id FROM resources ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()
	var list []*entity.Resource
	for rows.Next() {
		var res entity.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Description, &res.UnitID); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}
