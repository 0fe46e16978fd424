package stock

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta un traslado dentro de una transacción: el descuento en la
// bodega origen, el abono en la destino y el registro de historial son
// todo-o-nada. La suma total de stock del producto no cambia con un traslado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		locRepo repository.ProductLocationRepository,
		histRepo repository.ProductHistoryRepository,
	) error) error
}
