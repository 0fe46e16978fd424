package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateUnitRequest entrada para crear una unidad de medida.
type CreateUnitRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateResourceRequest entrada para crear una materia prima.
type CreateResourceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	UnitID      string `json:"unit_id" validate:"required"`
}

// ResourceResponse salida de una materia prima.
type ResourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitID      string `json:"unit_id"`
}

// CreateEquipmentRequest entrada para registrar un equipo.
type CreateEquipmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RecipeLineRequest línea de la lista de materiales de un producto.
type RecipeLineRequest struct {
	ResourceID string          `json:"resource_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount"` // > 0
}

// CreateRecipeRequest entrada para registrar la receta completa de un producto.
type CreateRecipeRequest struct {
	ProductID string              `json:"product_id" validate:"required"`
	Lines     []RecipeLineRequest `json:"lines" validate:"required,min=1"`
}

// RecipeLineResponse salida de una línea de receta.
type RecipeLineResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	ResourceID string          `json:"resource_id"`
	Amount     decimal.Decimal `json:"amount"`
}
