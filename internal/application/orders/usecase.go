package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UseCase flujo de órdenes de venta: creación, confirmación y consulta.
//
// La creación valida stock pero NO lo reserva; el descuento ocurre recién en la
// confirmación. Entre una y otra existe una ventana en la que dos órdenes
// pendientes pueden referir al mismo stock: comportamiento heredado y aceptado,
// la confirmación es la que garantiza que el stock nunca quede negativo.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	locRepo      repository.ProductLocationRepository
	productRepo  repository.ProductRepository
	costumerRepo repository.CostumerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	locRepo repository.ProductLocationRepository,
	productRepo repository.ProductRepository,
	costumerRepo repository.CostumerRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		locRepo:      locRepo,
		productRepo:  productRepo,
		costumerRepo: costumerRepo,
	}
}

// CreateOrder valida el pago, la existencia del cliente y el stock de cada
// línea, calcula el total y persiste cabecera y líneas en una sola transacción.
func (uc *UseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.Paid.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidPayment
	}
	if len(in.Lines) == 0 || in.CostumerID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	costumer, err := uc.costumerRepo.GetByID(in.CostumerID)
	if err != nil {
		return nil, err
	}
	if costumer == nil {
		return nil, domain.ErrReferenceNotFound
	}

	// Pre-chequeo de stock y cálculo del total. No descuenta ni reserva.
	total := decimal.Zero
	for _, line := range in.Lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrReferenceNotFound
		}
		loc, err := uc.locRepo.Get(line.ProductID, in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if loc == nil || loc.Amount <= line.Quantity {
			return nil, &domain.InsufficientStockError{ItemID: line.ProductID, WarehouseID: in.WarehouseID}
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	detail := &entity.OrderDetail{
		ID:         uuid.New().String(),
		CostumerID: in.CostumerID,
		UserID:     userID,
		TotalPrice: total,
		Paid:       in.Paid,
		CreatedAt:  time.Now(),
		IsActive:   true,
	}

	err = uc.txRunner.RunOrders(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.ProductLocationRepository,
	) error {
		if err := orderRepo.CreateDetail(detail); err != nil {
			return err
		}
		for _, line := range in.Lines {
			order := &entity.Order{
				ID:            uuid.New().String(),
				ProductID:     line.ProductID,
				WarehouseID:   in.WarehouseID,
				OrderDetailID: detail.ID,
				Count:         line.Quantity,
			}
			if err := orderRepo.CreateLine(order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{Success: true, OrderID: detail.ID, TotalPrice: total}, nil
}

// ConfirmOrder descuenta el stock de cada línea y apaga is_active, todo en una
// transacción: si una línea no tiene stock suficiente ningún descuento queda
// aplicado y la orden sigue activa.
func (uc *UseCase) ConfirmOrder(ctx context.Context, orderDetailID string) error {
	return uc.txRunner.RunOrders(ctx, func(
		orderRepo repository.OrderRepository,
		locRepo repository.ProductLocationRepository,
	) error {
		detail, err := orderRepo.GetDetailByID(orderDetailID)
		if err != nil {
			return err
		}
		if detail == nil {
			return domain.ErrNotFound
		}
		if !detail.IsActive {
			return domain.ErrAlreadyConfirmed
		}
		// El apagado de is_active va primero y es condicional: toma el lock de
		// la cabecera, así una confirmación concurrente queda bloqueada hasta
		// el commit y al continuar recibe ErrAlreadyConfirmed en vez de volver
		// a descontar el stock.
		if err := orderRepo.SetDetailInactive(orderDetailID); err != nil {
			return err
		}
		lines, err := orderRepo.ListLinesByDetail(orderDetailID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := locRepo.Adjust(line.ProductID, line.WarehouseID, -line.Count); err != nil {
				// Fila inexistente al confirmar equivale a stock insuficiente.
				if errors.Is(err, domain.ErrNotFound) {
					return &domain.InsufficientStockError{ItemID: line.ProductID, WarehouseID: line.WarehouseID}
				}
				return err
			}
		}
		return nil
	})
}

// ListCostumerOrders consulta las órdenes de un cliente con sus líneas anidadas.
func (uc *UseCase) ListCostumerOrders(ctx context.Context, costumerID string) ([]dto.CostumerOrderResponse, error) {
	details, err := uc.orderRepo.ListDetailsByCostumer(costumerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CostumerOrderResponse, 0, len(details))
	for _, d := range details {
		lines, err := uc.orderRepo.ListLinesByDetail(d.ID)
		if err != nil {
			return nil, err
		}
		products := make([]dto.OrderLineResponse, 0, len(lines))
		for _, l := range lines {
			products = append(products, dto.OrderLineResponse{
				ProductID:   l.ProductID,
				WarehouseID: l.WarehouseID,
				Count:       l.Count,
			})
		}
		out = append(out, dto.CostumerOrderResponse{
			ID:         d.ID,
			UserID:     d.UserID,
			TotalPrice: d.TotalPrice,
			Paid:       d.Paid,
			CreatedAt:  d.CreatedAt,
			IsActive:   d.IsActive,
			Products:   products,
		})
	}
	return out, nil
}
