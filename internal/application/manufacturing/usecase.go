package manufacturing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UseCase flujo de procesos de fabricación: inicio (reserva de materia prima)
// y finalización (cierre único del proceso).
type UseCase struct {
	txRunner      TxRunner
	compositeRepo repository.CompositeRepository
	userRepo      repository.UserRepository
	equipmentRepo repository.EquipmentRepository
	resourceRepo  repository.ResourceRepository
	productRepo   repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	compositeRepo repository.CompositeRepository,
	userRepo repository.UserRepository,
	equipmentRepo repository.EquipmentRepository,
	resourceRepo repository.ResourceRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		compositeRepo: compositeRepo,
		userRepo:      userRepo,
		equipmentRepo: equipmentRepo,
		resourceRepo:  resourceRepo,
		productRepo:   productRepo,
	}
}

// StartComposite reserva la materia prima en la bodega base del empleado y
// crea el proceso, ambos en una transacción. La reserva descuenta del libro
// de stock de recursos: si no alcanza, nada queda persistido.
func (uc *UseCase) StartComposite(ctx context.Context, employeeID string, in dto.StartCompositeRequest) (*dto.CompositeResponse, error) {
	if in.ResourceAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	equipment, err := uc.equipmentRepo.GetByID(in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrReferenceNotFound
	}

	resource, err := uc.resourceRepo.GetByID(in.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, domain.ErrReferenceNotFound
	}

	composite := &entity.Composite{
		ID:             uuid.New().String(),
		EmployeeID:     employeeID,
		EquipmentID:    in.EquipmentID,
		ResourceID:     in.ResourceID,
		ResourceAmount: in.ResourceAmount,
		StartAt:        time.Now(),
	}

	err = uc.txRunner.RunManufacturing(ctx, func(
		compositeRepo repository.CompositeRepository,
		resLocRepo repository.ResourceLocationRepository,
	) error {
		loc, err := resLocRepo.GetForUpdate(in.ResourceID, user.WarehouseID)
		if err != nil {
			return err
		}
		if loc == nil || loc.Amount.LessThan(in.ResourceAmount) {
			return &domain.InsufficientStockError{ItemID: in.ResourceID, WarehouseID: user.WarehouseID}
		}
		loc.Amount = loc.Amount.Sub(in.ResourceAmount)
		if err := resLocRepo.Upsert(loc); err != nil {
			return err
		}
		return compositeRepo.Create(composite)
	})
	if err != nil {
		return nil, err
	}

	return toCompositeResponse(composite), nil
}

// EndComposite cierra el proceso fijando producto y cantidad obtenidos. El
// cierre es condicional sobre end_at IS NULL y se decide por filas afectadas:
// un proceso ya finalizado o inexistente no falla, responde success=false.
func (uc *UseCase) EndComposite(ctx context.Context, compositeID string, in dto.EndCompositeRequest) (*dto.StatusResponse, error) {
	if in.ProductAmount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrReferenceNotFound
	}

	ended, err := uc.compositeRepo.End(compositeID, in.ProductID, in.ProductAmount, time.Now())
	if err != nil {
		return nil, err
	}
	if !ended {
		return &dto.StatusResponse{Success: false, Message: "proceso ya finalizado o inexistente"}, nil
	}
	return &dto.StatusResponse{Success: true, Message: "proceso finalizado"}, nil
}

// GetComposite consulta un proceso por ID.
func (uc *UseCase) GetComposite(ctx context.Context, id string) (*dto.CompositeResponse, error) {
	composite, err := uc.compositeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if composite == nil {
		return nil, domain.ErrNotFound
	}
	return toCompositeResponse(composite), nil
}

// ListRunning consulta los procesos en curso (end_at IS NULL).
func (uc *UseCase) ListRunning(ctx context.Context) ([]dto.CompositeResponse, error) {
	composites, err := uc.compositeRepo.ListRunning()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompositeResponse, 0, len(composites))
	for _, c := range composites {
		out = append(out, *toCompositeResponse(c))
	}
	return out, nil
}

func toCompositeResponse(c *entity.Composite) *dto.CompositeResponse {
	return &dto.CompositeResponse{
		ID:             c.ID,
		EmployeeID:     c.EmployeeID,
		EquipmentID:    c.EquipmentID,
		ResourceID:     c.ResourceID,
		ResourceAmount: c.ResourceAmount,
		ProductID:      c.ProductID,
		ProductAmount:  c.ProductAmount,
		StartAt:        c.StartAt,
		EndAt:          c.EndAt,
	}
}
