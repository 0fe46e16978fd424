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

var _ repository.CostumerRepository = (*CostumerRepo)(nil)

// CostumerRepo implementación de CostumerRepository (usable con pool o tx).
type CostumerRepo struct {
	q Querier
}

// NewCostumerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostumerRepository(q Querier) *CostumerRepo {
	return &CostumerRepo{q: q}
}

// Create persiste un nuevo cliente. Phone y email tienen constraint único.
func (r *CostumerRepo) Create(costumer *entity.Costumer) error {
	query := `
		INSERT INTO costumers (id, firstname, lastname, phone, email, created_at, last_login, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		costumer.ID, costumer.Firstname, costumer.Lastname, costumer.Phone, costumer.Email,
		costumer.CreatedAt, costumer.LastLogin, costumer.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert costumer: %w", err)
	}
	return nil
}

func (r *CostumerRepo) GetByID(id string) (*entity.Costumer, error) {
	query := `
		SELECT id, firstname, lastname, phone, email, created_at, last_login, user_id
		FROM costumers WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByPhoneOrEmail chequeo de unicidad previo al insert.
func (r *CostumerRepo) GetByPhoneOrEmail(phone, email string) (*entity.Costumer, error) {
	query := `
		SELECT id, firstname, lastname, phone, email, created_at, last_login, user_id
		FROM costumers WHERE phone = $1 OR email = $2`
	return r.queryOne(query, phone, email)
}

func (r *CostumerRepo) List(limit, offset int) ([]*entity.Costumer, error) {
	query := `
		SELECT id, firstname, lastname, phone, email, created_at, last_login, user_id
		FROM costumers ORDER BY lastname, firstname LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list costumers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Costumer
	for rows.Next() {
		var c entity.Costumer
		if err := rows.Scan(&c.ID, &c.Firstname, &c.Lastname, &c.Phone, &c.Email, &c.CreatedAt, &c.LastLogin, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan costumer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CostumerRepo) queryOne(query string, args ...any) (*entity.Costumer, error) {
	var c entity.Costumer
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Firstname, &c.Lastname, &c.Phone, &c.Email, &c.CreatedAt, &c.LastLogin, &c.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get costumer: %w", err)
	}
	return &c, nil
}
