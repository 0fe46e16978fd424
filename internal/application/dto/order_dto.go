package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden: producto y cantidad solicitada.
type OrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CostumerID  string             `json:"costumer_id" validate:"required"`
	WarehouseID string             `json:"warehouse_id" validate:"required"`
	Lines       []OrderLineRequest `json:"lines" validate:"required,min=1"`
	Paid        decimal.Decimal    `json:"paid"`
}

// CreateOrderResponse confirma la creación con el ID de la cabecera y el total.
type CreateOrderResponse struct {
	Success    bool            `json:"success"`
	OrderID    string          `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderLineResponse línea de una orden en consultas.
type OrderLineResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Count       int64  `json:"count"`
}

// CostumerOrderResponse cabecera de orden con sus líneas anidadas.
type CostumerOrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Paid       decimal.Decimal     `json:"paid"`
	CreatedAt  time.Time           `json:"created_at"`
	IsActive   bool                `json:"is_active"`
	Products   []OrderLineResponse `json:"products"`
}
