package repository

import "github.com/shopspring/decimal"

// StockReportRow fila del reporte global de stock: producto por bodega con su
// valorización (amount * price).
type StockReportRow struct {
	WarehouseID   string
	WarehouseName string
	ProductID     string
	ProductName   string
	Amount        int64
	Price         decimal.Decimal
	StockValue    decimal.Decimal
}

// ReportRepository consultas agregadas de solo lectura para reportes.
type ReportRepository interface {
	StockSummary() ([]*StockReportRow, error)
}
