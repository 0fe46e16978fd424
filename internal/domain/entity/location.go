package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductLocation stock de un producto terminado en una bodega.
// Una fila por par (producto, bodega); invariante: Amount >= 0.
type ProductLocation struct {
	ProductID   string
	WarehouseID string
	Amount      int64
	UpdatedAt   time.Time
}

// ResourceLocation stock de materia prima en una bodega.
// Mismo invariante que ProductLocation; cantidades fraccionarias (kg, lt).
type ResourceLocation struct {
	ResourceID  string
	WarehouseID string
	Amount      decimal.Decimal
	UpdatedAt   time.Time
}

// ProductHistory registro inmutable de un traslado de producto entre bodegas.
// Se escribe exactamente una vez por traslado exitoso, en la misma transacción.
type ProductHistory struct {
	ID             string
	ProductID      string
	WarehouseOldID string
	WarehouseNewID string
	Amount         int64
	LastUpdate     time.Time
}
