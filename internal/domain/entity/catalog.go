package entity

import "github.com/shopspring/decimal"

// Category agrupa productos (datos de referencia, solo lectura desde el núcleo).
type Category struct {
	ID          string
	Name        string
	Description string
}

// Unit unidad de medida para productos y recursos.
type Unit struct {
	ID   string
	Code string // código único (ej. "kg", "lt", "und")
	Name string
}

// Resource materia prima consumida por los procesos de fabricación.
type Resource struct {
	ID          string
	Name        string
	Description string
	UnitID      string
}

// Equipment equipo usado en un proceso de fabricación.
type Equipment struct {
	ID          string
	Name        string
	Description string
}

// Recipe línea de la lista de materiales: cantidad de recurso por unidad de producto.
// Invariante: Amount > 0.
type Recipe struct {
	ID         string
	ProductID  string
	ResourceID string
	Amount     decimal.Decimal
}
