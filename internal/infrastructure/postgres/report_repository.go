package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockSummary devuelve el stock de cada producto por bodega con su valorización.
func (r *ReportRepo) StockSummary() ([]*repository.StockReportRow, error) {
	query := `
		SELECT w.id, w.name, p.id, p.name, pl.amount, p.price, p.price * pl.amount AS stock_value
		FROM product_locations pl
		JOIN warehouses w ON w.id = pl.warehouse_id
		JOIN products p ON p.id = pl.product_id
		ORDER BY w.name, p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(&row.WarehouseID, &row.WarehouseName, &row.ProductID, &row.ProductName,
			&row.Amount, &row.Price, &row.StockValue); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
