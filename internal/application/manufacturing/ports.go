package manufacturing

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta el inicio de un proceso de fabricación dentro de una
// transacción: la reserva de materia prima y el alta del proceso son
// todo-o-nada, de modo que nunca queda recurso descontado sin proceso creado
// ni proceso creado sin su recurso descontado.
type TxRunner interface {
	RunManufacturing(ctx context.Context, fn func(
		compositeRepo repository.CompositeRepository,
		resLocRepo repository.ResourceLocationRepository,
	) error) error
}
