package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetail cabecera de una orden de venta.
// IsActive=true significa creada pero no despachada; pasa a false exactamente
// una vez al confirmarse (descuento de stock).
type OrderDetail struct {
	ID         string
	CostumerID string
	UserID     string // vendedor que registró la orden
	TotalPrice decimal.Decimal
	Paid       decimal.Decimal
	CreatedAt  time.Time
	IsActive   bool
}

// Order línea de una orden: producto, bodega de despacho y cantidad.
// Inmutable después de creada.
type Order struct {
	ID            string
	ProductID     string
	WarehouseID   string
	OrderDetailID string
	Count         int64
}
