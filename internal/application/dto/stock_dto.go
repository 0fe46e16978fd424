package dto

import "time"

// AddProductLocationRequest body para crear o fijar el stock de un producto en una bodega.
type AddProductLocationRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Amount      int64  `json:"amount" validate:"min=0"`
}

// ProductLocationResponse stock de un producto en una bodega.
type ProductLocationResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Amount      int64     `json:"amount"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransferStockRequest body para POST /api/stock/transfer.
type TransferStockRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	FromWarehouseID string `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string `json:"to_warehouse_id" validate:"required"`
	Amount          int64  `json:"amount" validate:"min=1"`
}

// HistoryResponse registro del historial de traslados.
type HistoryResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	WarehouseOldID string    `json:"warehouse_old_id"`
	WarehouseNewID string    `json:"warehouse_new_id"`
	Amount         int64     `json:"amount"`
	LastUpdate     time.Time `json:"last_update"`
}
