package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// WarehouseUseCase alta y consulta de bodegas, incluido su inventario.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locRepo       repository.ProductLocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	warehouseRepo repository.WarehouseRepository,
	locRepo repository.ProductLocationRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, locRepo: locRepo}
}

// Create registra una bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List consulta todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

// ListProducts consulta el inventario de una bodega: productos con su cantidad.
func (uc *WarehouseUseCase) ListProducts(ctx context.Context, warehouseID string) ([]dto.WarehouseProductResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.locRepo.ListWarehouseProducts(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseProductResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.WarehouseProductResponse{
			ProductResponse: dto.ProductResponse{
				ID:          row.Product.ID,
				Name:        row.Product.Name,
				Description: row.Product.Description,
				Price:       row.Product.Price,
				LastUpdated: row.Product.LastUpdated,
			},
			Amount: row.Amount,
		})
	}
	return out, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
	}
}
