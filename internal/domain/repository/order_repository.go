package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes (cabecera + líneas).
type OrderRepository interface {
	CreateDetail(detail *entity.OrderDetail) error
	CreateLine(line *entity.Order) error
	GetDetailByID(id string) (*entity.OrderDetail, error)
	ListLinesByDetail(orderDetailID string) ([]*entity.Order, error)
	ListDetailsByCostumer(costumerID string) ([]*entity.OrderDetail, error)
	// SetDetailInactive marca la cabecera como despachada (is_active = false).
	// Es condicional: si la cabecera ya estaba inactiva devuelve
	// domain.ErrAlreadyConfirmed sin tocar nada.
	SetDetailInactive(id string) error
}
