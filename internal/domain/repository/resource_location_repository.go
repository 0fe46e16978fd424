package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ResourceLocationRepository puerto del libro de stock de materia prima.
// Mismas reglas que ProductLocationRepository: nil si no hay fila, Adjust
// condicional en una sola sentencia.
type ResourceLocationRepository interface {
	Get(resourceID, warehouseID string) (*entity.ResourceLocation, error)
	GetForUpdate(resourceID, warehouseID string) (*entity.ResourceLocation, error)
	Insert(loc *entity.ResourceLocation) error
	Upsert(loc *entity.ResourceLocation) error
	Adjust(resourceID, warehouseID string, delta decimal.Decimal) (decimal.Decimal, error)
	ListByWarehouse(warehouseID string) ([]*entity.ResourceLocation, error)
}
