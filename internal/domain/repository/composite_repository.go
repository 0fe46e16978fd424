package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// CompositeRepository puerto de persistencia para procesos de fabricación.
type CompositeRepository interface {
	Create(composite *entity.Composite) error
	GetByID(id string) (*entity.Composite, error)
	// End fija product_id, product_amount y end_at solo si end_at sigue en NULL.
	// Retorna false (sin error) si no afectó filas: proceso ya finalizado o inexistente.
	End(id, productID string, productAmount int64, endAt time.Time) (bool, error)
	ListRunning() ([]*entity.Composite, error)
}
