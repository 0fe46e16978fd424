package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// WarehouseProduct fila del inventario de una bodega: producto más su cantidad.
type WarehouseProduct struct {
	Product *entity.Product
	Amount  int64
}

// ProductLocationRepository puerto del libro de stock de producto terminado.
// Get/GetForUpdate devuelven nil (sin error) si no existe fila para el par.
// Usado dentro de transacciones para garantizar consistencia.
type ProductLocationRepository interface {
	Get(productID, warehouseID string) (*entity.ProductLocation, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.ProductLocation, error)
	Insert(loc *entity.ProductLocation) error
	Upsert(loc *entity.ProductLocation) error
	// Adjust aplica un delta atómico en una sola sentencia condicional.
	// Retorna domain.ErrInsufficientStock si amount+delta < 0 y
	// domain.ErrNotFound si la fila no existe.
	Adjust(productID, warehouseID string, delta int64) (int64, error)
	List() ([]*entity.ProductLocation, error)
	ListByProduct(productID string) ([]*entity.ProductLocation, error)
	ListWarehouseProducts(warehouseID string) ([]*WarehouseProduct, error)
}
