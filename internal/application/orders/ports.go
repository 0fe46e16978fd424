package orders

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la confirmación de una orden
// (descuentos de stock + flag is_active) sea todo-o-nada.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		locRepo repository.ProductLocationRepository,
	) error) error
}
