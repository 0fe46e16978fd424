package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductHistoryRepository puerto del historial de traslados (append-only).
type ProductHistoryRepository interface {
	Create(history *entity.ProductHistory) error
	List(limit, offset int) ([]*entity.ProductHistory, error)
}
