package dto

import "github.com/shopspring/decimal"

// StockReportRowDTO fila del reporte global: producto por bodega con valorización.
type StockReportRowDTO struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Amount        int64           `json:"amount"`
	Price         decimal.Decimal `json:"price"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// StockReportResponse reporte global de stock con el total valorizado.
type StockReportResponse struct {
	Rows       []StockReportRowDTO `json:"rows"`
	TotalValue decimal.Decimal     `json:"total_value"`
}
