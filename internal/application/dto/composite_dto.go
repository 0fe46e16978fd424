package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartCompositeRequest body para iniciar un proceso de fabricación.
// El empleado se toma del token; la bodega es la bodega base del empleado.
type StartCompositeRequest struct {
	EquipmentID    string          `json:"equipment_id" validate:"required"`
	ResourceID     string          `json:"resource_id" validate:"required"`
	ResourceAmount decimal.Decimal `json:"resource_amount"` // > 0
}

// EndCompositeRequest body para finalizar un proceso: producto obtenido y cantidad.
type EndCompositeRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	ProductAmount int64  `json:"product_amount" validate:"min=1"`
}

// CompositeResponse estado de un proceso de fabricación.
type CompositeResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EquipmentID    string          `json:"equipment_id"`
	ResourceID     string          `json:"resource_id"`
	ResourceAmount decimal.Decimal `json:"resource_amount"`
	ProductID      *string         `json:"product_id,omitempty"`
	ProductAmount  *int64          `json:"product_amount,omitempty"`
	StartAt        time.Time       `json:"start_at"`
	EndAt          *time.Time      `json:"end_at,omitempty"`
}
