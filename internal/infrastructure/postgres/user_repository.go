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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, firstname, lastname, login, email, phone, password, warehouse_id, shift_id, role, last_updated`

// Create persiste un nuevo empleado. Login y email tienen constraint único.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Firstname, user.Lastname, user.Login, user.Email, user.Phone,
		user.Password, user.WarehouseID, user.ShiftID, user.Role, user.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepo) GetByLogin(login string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE login = $1`, login)
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// UpdateLastUpdated marca actividad del usuario (se usa en el login).
func (r *UserRepo) UpdateLastUpdated(id string, t time.Time) error {
	_, err := r.q.Exec(context.Background(), `UPDATE users SET last_updated = $2 WHERE id = $1`, id, t)
	if err != nil {
		return fmt.Errorf("update user last_updated: %w", err)
	}
	return nil
}

func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+userColumns+` FROM users ORDER BY lastname, firstname`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Login, &u.Email, &u.Phone,
			&u.Password, &u.WarehouseID, &u.ShiftID, &u.Role, &u.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) queryOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Firstname, &u.Lastname, &u.Login, &u.Email, &u.Phone,
		&u.Password, &u.WarehouseID, &u.ShiftID, &u.Role, &u.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
