package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación de EquipmentRepository (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `INSERT INTO equipment (id, name, description) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, equipment.ID, equipment.Name, equipment.Description)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	query := `SELECT id, name, description FROM equipment WHERE id = $1`
	var e entity.Equipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.Name, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepo) List() ([]*entity.Equipment, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, description FROM equipment ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
