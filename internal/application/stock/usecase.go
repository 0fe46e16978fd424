package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UseCase operaciones sobre el libro de stock: altas de ubicación, traslados
// entre bodegas y consulta de historial.
type UseCase struct {
	txRunner      TxRunner
	locRepo       repository.ProductLocationRepository
	histRepo      repository.ProductHistoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	locRepo repository.ProductLocationRepository,
	histRepo repository.ProductHistoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		locRepo:       locRepo,
		histRepo:      histRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// AddProductLocation crea o fija el stock de un producto en una bodega.
func (uc *UseCase) AddProductLocation(ctx context.Context, in dto.AddProductLocationRequest) (*dto.ProductLocationResponse, error) {
	if in.Amount < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrReferenceNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrReferenceNotFound
	}

	loc := &entity.ProductLocation{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Amount:      in.Amount,
		UpdatedAt:   time.Now(),
	}
	if err := uc.locRepo.Upsert(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// TransferStock mueve stock entre bodegas. Bloquea ambas filas en orden fijo,
// abona en destino (creando la fila si no existe), descuenta en origen y
// registra exactamente una entrada de historial, todo en una transacción.
func (uc *UseCase) TransferStock(ctx context.Context, in dto.TransferStockRequest) (*dto.StatusResponse, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrReferenceNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		locRepo repository.ProductLocationRepository,
		histRepo repository.ProductHistoryRepository,
	) error {
		// Las dos filas se bloquean en orden determinístico de bodega: dos
		// transferencias cruzadas (A→B y B→A) del mismo producto adquieren los
		// locks en el mismo orden y no pueden quedar en deadlock.
		firstWarehouse, secondWarehouse := in.FromWarehouseID, in.ToWarehouseID
		if secondWarehouse < firstWarehouse {
			firstWarehouse, secondWarehouse = secondWarehouse, firstWarehouse
		}
		first, err := locRepo.GetForUpdate(in.ProductID, firstWarehouse)
		if err != nil {
			return err
		}
		second, err := locRepo.GetForUpdate(in.ProductID, secondWarehouse)
		if err != nil {
			return err
		}

		source, dest := first, second
		if firstWarehouse != in.FromWarehouseID {
			source, dest = second, first
		}
		if source == nil || source.Amount < in.Amount {
			return &domain.InsufficientStockError{ItemID: in.ProductID, WarehouseID: in.FromWarehouseID}
		}
		if dest == nil {
			if err := locRepo.Insert(&entity.ProductLocation{
				ProductID:   in.ProductID,
				WarehouseID: in.ToWarehouseID,
				Amount:      in.Amount,
				UpdatedAt:   time.Now(),
			}); err != nil {
				return err
			}
		} else {
			if _, err := locRepo.Adjust(in.ProductID, in.ToWarehouseID, in.Amount); err != nil {
				return err
			}
		}

		if _, err := locRepo.Adjust(in.ProductID, in.FromWarehouseID, -in.Amount); err != nil {
			return err
		}

		return histRepo.Create(&entity.ProductHistory{
			ID:             uuid.New().String(),
			ProductID:      in.ProductID,
			WarehouseOldID: in.FromWarehouseID,
			WarehouseNewID: in.ToWarehouseID,
			Amount:         in.Amount,
			LastUpdate:     time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.StatusResponse{Success: true, Message: "traslado realizado"}, nil
}

// ListLocations consulta el libro completo de ubicaciones de producto.
func (uc *UseCase) ListLocations(ctx context.Context) ([]dto.ProductLocationResponse, error) {
	locs, err := uc.locRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductLocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// ListByProduct consulta las ubicaciones de un producto en todas las bodegas.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]dto.ProductLocationResponse, error) {
	locs, err := uc.locRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductLocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// GetHistory consulta el historial de traslados paginado.
func (uc *UseCase) GetHistory(ctx context.Context, page dto.PageRequest) ([]dto.HistoryResponse, error) {
	page.DefaultPage()
	rows, err := uc.histRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, dto.HistoryResponse{
			ID:             h.ID,
			ProductID:      h.ProductID,
			WarehouseOldID: h.WarehouseOldID,
			WarehouseNewID: h.WarehouseNewID,
			Amount:         h.Amount,
			LastUpdate:     h.LastUpdate,
		})
	}
	return out, nil
}

func toLocationResponse(l *entity.ProductLocation) *dto.ProductLocationResponse {
	return &dto.ProductLocationResponse{
		ProductID:   l.ProductID,
		WarehouseID: l.WarehouseID,
		Amount:      l.Amount,
		UpdatedAt:   l.UpdatedAt,
	}
}
