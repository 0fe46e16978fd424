package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/almacen-api/internal/application/manufacturing"
	"github.com/tu-usuario/almacen-api/internal/application/orders"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements the workflow ports.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)
var _ manufacturing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cada flujo de trabajo recibe repositorios atados a la misma tx, de modo que
// la secuencia leer-verificar-escribir sea atómica (rollback ante cualquier error).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para traslados de stock: ubicaciones de producto
// más historial, en la misma tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	locRepo repository.ProductLocationRepository,
	histRepo repository.ProductHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	locRepo := NewProductLocationRepository(tx)
	histRepo := NewProductHistoryRepository(tx)

	if err := fn(locRepo, histRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrders inicia una transacción para el flujo de órdenes (creación y confirmación).
func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	locRepo repository.ProductLocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	locRepo := NewProductLocationRepository(tx)

	if err := fn(orderRepo, locRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunManufacturing inicia una transacción para procesos de fabricación:
// el registro Composite y la reserva en resource_locations viven o mueren juntos.
func (r *TxRunner) RunManufacturing(ctx context.Context, fn func(
	compositeRepo repository.CompositeRepository,
	resLocRepo repository.ResourceLocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	compositeRepo := NewCompositeRepository(tx)
	resLocRepo := NewResourceLocationRepository(tx)

	if err := fn(compositeRepo, resLocRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
