package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type locKey struct{ productID, warehouseID string }

type fakeStore struct {
	locations  map[locKey]int64
	history    []*entity.ProductHistory
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	// bodegas en el orden en que se pidieron sus locks (GetForUpdate)
	lockOrder []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		locations:  make(map[locKey]int64),
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
	}
}

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) Get(productID, warehouseID string) (*entity.ProductLocation, error) {
	amount, ok := r.s.locations[locKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	return &entity.ProductLocation{ProductID: productID, WarehouseID: warehouseID, Amount: amount}, nil
}

func (r *fakeLocationRepo) GetForUpdate(productID, warehouseID string) (*entity.ProductLocation, error) {
	r.s.lockOrder = append(r.s.lockOrder, warehouseID)
	return r.Get(productID, warehouseID)
}

func (r *fakeLocationRepo) Insert(loc *entity.ProductLocation) error {
	key := locKey{loc.ProductID, loc.WarehouseID}
	if _, exists := r.s.locations[key]; exists {
		return domain.ErrDuplicate
	}
	r.s.locations[key] = loc.Amount
	return nil
}

func (r *fakeLocationRepo) Upsert(loc *entity.ProductLocation) error {
	r.s.locations[locKey{loc.ProductID, loc.WarehouseID}] = loc.Amount
	return nil
}

func (r *fakeLocationRepo) Adjust(productID, warehouseID string, delta int64) (int64, error) {
	key := locKey{productID, warehouseID}
	amount, ok := r.s.locations[key]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if amount+delta < 0 {
		return 0, &domain.InsufficientStockError{ItemID: productID, WarehouseID: warehouseID}
	}
	r.s.locations[key] = amount + delta
	return amount + delta, nil
}

func (r *fakeLocationRepo) List() ([]*entity.ProductLocation, error) {
	var out []*entity.ProductLocation
	for k, v := range r.s.locations {
		out = append(out, &entity.ProductLocation{ProductID: k.productID, WarehouseID: k.warehouseID, Amount: v})
	}
	return out, nil
}

func (r *fakeLocationRepo) ListByProduct(productID string) ([]*entity.ProductLocation, error) {
	var out []*entity.ProductLocation
	for k, v := range r.s.locations {
		if k.productID == productID {
			out = append(out, &entity.ProductLocation{ProductID: k.productID, WarehouseID: k.warehouseID, Amount: v})
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) ListWarehouseProducts(string) ([]*repository.WarehouseProduct, error) {
	return nil, nil
}

type fakeHistoryRepo struct{ s *fakeStore }

func (r *fakeHistoryRepo) Create(h *entity.ProductHistory) error {
	cp := *h
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *fakeHistoryRepo) List(limit, offset int) ([]*entity.ProductHistory, error) {
	if offset >= len(r.s.history) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.s.history) {
		end = len(r.s.history)
	}
	return r.s.history[offset:end], nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error                     { return nil }
func (r *fakeProductRepo) Delete(string) error                              { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)         { return nil, nil }
func (r *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) { return nil, nil }

type fakeWarehouseRepo struct{ s *fakeStore }

func (r *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}
func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) { return nil, nil }

// fakeTxRunner restaura el estado si el callback falla (semántica rollback).
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	locRepo repository.ProductLocationRepository,
	histRepo repository.ProductHistoryRepository,
) error) error {
	snapLocations := make(map[locKey]int64, len(r.s.locations))
	for k, v := range r.s.locations {
		snapLocations[k] = v
	}
	snapHistory := make([]*entity.ProductHistory, len(r.s.history))
	copy(snapHistory, r.s.history)

	err := fn(&fakeLocationRepo{s: r.s}, &fakeHistoryRepo{s: r.s})
	if err != nil {
		r.s.locations = snapLocations
		r.s.history = snapHistory
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID  = "product-1"
	testSourceID   = "warehouse-src"
	testDestID     = "warehouse-dst"
	testMissingDst = "warehouse-nueva"
)

func newUseCase(s *fakeStore) *stock.UseCase {
	return stock.NewUseCase(
		&fakeTxRunner{s: s},
		&fakeLocationRepo{s: s},
		&fakeHistoryRepo{s: s},
		&fakeProductRepo{s: s},
		&fakeWarehouseRepo{s: s},
	)
}

func seedStore() *fakeStore {
	s := newFakeStore()
	s.products[testProductID] = &entity.Product{ID: testProductID, Name: "Café 500g"}
	s.warehouses[testSourceID] = &entity.Warehouse{ID: testSourceID, Name: "Central"}
	s.warehouses[testDestID] = &entity.Warehouse{ID: testDestID, Name: "Norte"}
	s.warehouses[testMissingDst] = &entity.Warehouse{ID: testMissingDst, Name: "Nueva"}
	s.locations[locKey{testProductID, testSourceID}] = 100
	s.locations[locKey{testProductID, testDestID}] = 20
	return s
}

func transferRequest(from, to string, amount int64) dto.TransferStockRequest {
	return dto.TransferStockRequest{
		ProductID:       testProductID,
		FromWarehouseID: from,
		ToWarehouseID:   to,
		Amount:          amount,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TransferStock
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferStock_MueveYRegistraHistorial(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testDestID, 30))
	require.NoError(t, err)
	assert.True(t, out.Success)

	assert.Equal(t, int64(70), s.locations[locKey{testProductID, testSourceID}])
	assert.Equal(t, int64(50), s.locations[locKey{testProductID, testDestID}])

	require.Len(t, s.history, 1, "debe registrarse exactamente una entrada de historial")
	h := s.history[0]
	assert.Equal(t, testProductID, h.ProductID)
	assert.Equal(t, testSourceID, h.WarehouseOldID)
	assert.Equal(t, testDestID, h.WarehouseNewID)
	assert.Equal(t, int64(30), h.Amount)
}

func TestTransferStock_ConservaElTotal(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	totalBefore := s.locations[locKey{testProductID, testSourceID}] +
		s.locations[locKey{testProductID, testDestID}]

	_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testDestID, 45))
	require.NoError(t, err)

	totalAfter := s.locations[locKey{testProductID, testSourceID}] +
		s.locations[locKey{testProductID, testDestID}]
	assert.Equal(t, totalBefore, totalAfter, "un traslado nunca cambia el stock total del producto")
}

func TestTransferStock_TransferenciasCruzadas_BloqueanEnOrdenFijo(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	// Ida y vuelta entre las mismas bodegas: los locks deben pedirse en el
	// mismo orden en ambas direcciones, que es lo que evita el deadlock entre
	// traslados cruzados concurrentes.
	_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testDestID, 10))
	require.NoError(t, err)
	ida := append([]string(nil), s.lockOrder...)

	s.lockOrder = nil
	_, err = uc.TransferStock(context.Background(), transferRequest(testDestID, testSourceID, 10))
	require.NoError(t, err)
	vuelta := append([]string(nil), s.lockOrder...)

	assert.Equal(t, []string{testDestID, testSourceID}, ida)
	assert.Equal(t, ida, vuelta, "ambas direcciones deben adquirir los locks en el mismo orden")
}

func TestTransferStock_CreaUbicacionDestinoSiNoExiste(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testMissingDst, 10))
	require.NoError(t, err)

	assert.Equal(t, int64(90), s.locations[locKey{testProductID, testSourceID}])
	assert.Equal(t, int64(10), s.locations[locKey{testProductID, testMissingDst}])
}

func TestTransferStock_StockInsuficiente_NoCambiaNada(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testDestID, 500))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(100), s.locations[locKey{testProductID, testSourceID}])
	assert.Equal(t, int64(20), s.locations[locKey{testProductID, testDestID}])
	assert.Empty(t, s.history, "un traslado fallido no debe registrar historial")
}

func TestTransferStock_CantidadInvalida_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	for _, amount := range []int64{0, -5} {
		_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testDestID, amount))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount %d debe rechazarse", amount)
	}
}

func TestTransferStock_MismaBodega_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testSourceID, 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransferStock_BodegaDestinoInexistente_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, "fantasma", 10))
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProductLocation
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProductLocation_CreaYFija(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.AddProductLocation(context.Background(), dto.AddProductLocationRequest{
		ProductID:   testProductID,
		WarehouseID: testMissingDst,
		Amount:      25,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), out.Amount)
	assert.Equal(t, int64(25), s.locations[locKey{testProductID, testMissingDst}])
}

func TestAddProductLocation_ProductoInexistente_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.AddProductLocation(context.Background(), dto.AddProductLocationRequest{
		ProductID:   "fantasma",
		WarehouseID: testSourceID,
		Amount:      5,
	})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestAddProductLocation_CantidadNegativa_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.AddProductLocation(context.Background(), dto.AddProductLocationRequest{
		ProductID:   testProductID,
		WarehouseID: testSourceID,
		Amount:      -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetHistory
// ──────────────────────────────────────────────────────────────────────────────

func TestGetHistory_Pagina(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	for i := 0; i < 3; i++ {
		_, err := uc.TransferStock(context.Background(), transferRequest(testSourceID, testDestID, 1))
		require.NoError(t, err)
	}

	out, err := uc.GetHistory(context.Background(), dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.GetHistory(context.Background(), dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
