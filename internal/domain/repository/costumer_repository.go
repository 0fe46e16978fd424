package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// CostumerRepository puerto de persistencia para clientes.
type CostumerRepository interface {
	Create(costumer *entity.Costumer) error
	GetByID(id string) (*entity.Costumer, error)
	// GetByPhoneOrEmail chequeo de unicidad previo al insert.
	GetByPhoneOrEmail(phone, email string) (*entity.Costumer, error)
	List(limit, offset int) ([]*entity.Costumer, error)
}
