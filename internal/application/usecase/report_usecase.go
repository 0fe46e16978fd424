package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ReportGenerator renderiza el reporte de stock a PDF.
type ReportGenerator interface {
	GenerateStockReport(report *dto.StockReportResponse) ([]byte, error)
}

// ReportUseCase reporte global de stock valorizado, en JSON o PDF.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	generator  ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, generator: generator}
}

// StockSummary arma el reporte global: una fila por producto y bodega con su
// valorización, más el total.
func (uc *ReportUseCase) StockSummary(ctx context.Context) (*dto.StockReportResponse, error) {
	rows, err := uc.reportRepo.StockSummary()
	if err != nil {
		return nil, err
	}
	out := &dto.StockReportResponse{
		Rows:       make([]dto.StockReportRowDTO, 0, len(rows)),
		TotalValue: decimal.Zero,
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.StockReportRowDTO{
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			Amount:        r.Amount,
			Price:         r.Price,
			StockValue:    r.StockValue,
		})
		out.TotalValue = out.TotalValue.Add(r.StockValue)
	}
	return out, nil
}

// StockSummaryPDF genera el mismo reporte renderizado a PDF.
func (uc *ReportUseCase) StockSummaryPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.StockSummary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(report)
}
