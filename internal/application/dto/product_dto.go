package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" validate:"required"`
	UnitID      string          `json:"unit_id" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest patch parcial: solo los campos no nulos se aplican.
// Cualquier patch, aunque sea vacío, refresca last_updated.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category_id"`
	UnitID      *string          `json:"unit_id"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto con sus referencias expandidas.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Unit        *UnitResponse     `json:"unit,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	LastUpdated time.Time         `json:"last_updated"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// WarehouseProductResponse producto con la cantidad disponible en una bodega.
type WarehouseProductResponse struct {
	ProductResponse
	Amount int64 `json:"amount"`
}
