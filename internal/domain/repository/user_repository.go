package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para empleados.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByLogin(login string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdateLastUpdated(id string, t time.Time) error
	List() ([]*entity.User, error)
}
