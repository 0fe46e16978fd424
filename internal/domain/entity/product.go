package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado del catálogo.
// El stock se maneja por bodega en ProductLocation; aquí solo datos de referencia.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	UnitID      string
	Price       decimal.Decimal // precio de venta, >= 0
	LastUpdated time.Time       // se actualiza en cada patch del catálogo
}
