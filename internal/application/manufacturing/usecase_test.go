package manufacturing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/manufacturing"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type resKey struct{ resourceID, warehouseID string }

type fakeStore struct {
	composites map[string]*entity.Composite
	resLocs    map[resKey]decimal.Decimal
	users      map[string]*entity.User
	equipment  map[string]*entity.Equipment
	resources  map[string]*entity.Resource
	products   map[string]*entity.Product
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		composites: make(map[string]*entity.Composite),
		resLocs:    make(map[resKey]decimal.Decimal),
		users:      make(map[string]*entity.User),
		equipment:  make(map[string]*entity.Equipment),
		resources:  make(map[string]*entity.Resource),
		products:   make(map[string]*entity.Product),
	}
}

type fakeCompositeRepo struct{ s *fakeStore }

func (r *fakeCompositeRepo) Create(c *entity.Composite) error {
	cp := *c
	r.s.composites[c.ID] = &cp
	return nil
}

func (r *fakeCompositeRepo) GetByID(id string) (*entity.Composite, error) {
	c, ok := r.s.composites[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompositeRepo) End(id, productID string, productAmount int64, endAt time.Time) (bool, error) {
	c, ok := r.s.composites[id]
	if !ok || c.EndAt != nil {
		return false, nil
	}
	c.ProductID = &productID
	c.ProductAmount = &productAmount
	c.EndAt = &endAt
	return true, nil
}

func (r *fakeCompositeRepo) ListRunning() ([]*entity.Composite, error) {
	var out []*entity.Composite
	for _, c := range r.s.composites {
		if c.EndAt == nil {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeResLocRepo struct{ s *fakeStore }

func (r *fakeResLocRepo) Get(resourceID, warehouseID string) (*entity.ResourceLocation, error) {
	amount, ok := r.s.resLocs[resKey{resourceID, warehouseID}]
	if !ok {
		return nil, nil
	}
	return &entity.ResourceLocation{ResourceID: resourceID, WarehouseID: warehouseID, Amount: amount}, nil
}

func (r *fakeResLocRepo) GetForUpdate(resourceID, warehouseID string) (*entity.ResourceLocation, error) {
	return r.Get(resourceID, warehouseID)
}

func (r *fakeResLocRepo) Insert(loc *entity.ResourceLocation) error {
	r.s.resLocs[resKey{loc.ResourceID, loc.WarehouseID}] = loc.Amount
	return nil
}

func (r *fakeResLocRepo) Upsert(loc *entity.ResourceLocation) error {
	return r.Insert(loc)
}

func (r *fakeResLocRepo) Adjust(resourceID, warehouseID string, delta decimal.Decimal) (decimal.Decimal, error) {
	key := resKey{resourceID, warehouseID}
	amount, ok := r.s.resLocs[key]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	next := amount.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, &domain.InsufficientStockError{ItemID: resourceID, WarehouseID: warehouseID}
	}
	r.s.resLocs[key] = next
	return next, nil
}

func (r *fakeResLocRepo) ListByWarehouse(string) ([]*entity.ResourceLocation, error) {
	return nil, nil
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(*entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) GetByLogin(string) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) UpdateLastUpdated(string, time.Time) error  { return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error)              { return nil, nil }

type fakeEquipmentRepo struct{ s *fakeStore }

func (r *fakeEquipmentRepo) Create(*entity.Equipment) error { return nil }
func (r *fakeEquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	e, ok := r.s.equipment[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}
func (r *fakeEquipmentRepo) List() ([]*entity.Equipment, error) { return nil, nil }

type fakeResourceRepo struct{ s *fakeStore }

func (r *fakeResourceRepo) Create(*entity.Resource) error { return nil }
func (r *fakeResourceRepo) GetByID(id string) (*entity.Resource, error) {
	res, ok := r.s.resources[id]
	if !ok {
		return nil, nil
	}
	return res, nil
}
func (r *fakeResourceRepo) List() ([]*entity.Resource, error) { return nil, nil }

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

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) RunManufacturing(_ context.Context, fn func(
	compositeRepo repository.CompositeRepository,
	resLocRepo repository.ResourceLocationRepository,
) error) error {
	snapLocs := make(map[resKey]decimal.Decimal, len(r.s.resLocs))
	for k, v := range r.s.resLocs {
		snapLocs[k] = v
	}
	snapComposites := make(map[string]*entity.Composite, len(r.s.composites))
	for k, v := range r.s.composites {
		cp := *v
		snapComposites[k] = &cp
	}

	err := fn(&fakeCompositeRepo{s: r.s}, &fakeResLocRepo{s: r.s})
	if err != nil {
		r.s.resLocs = snapLocs
		r.s.composites = snapComposites
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testEmployeeID  = "employee-1"
	testWarehouseID = "warehouse-1"
	testEquipmentID = "equipment-1"
	testResourceID  = "resource-1"
	testProductID   = "product-1"
)

func newUseCase(s *fakeStore) *manufacturing.UseCase {
	return manufacturing.NewUseCase(
		&fakeTxRunner{s: s},
		&fakeCompositeRepo{s: s},
		&fakeUserRepo{s: s},
		&fakeEquipmentRepo{s: s},
		&fakeResourceRepo{s: s},
		&fakeProductRepo{s: s},
	)
}

func seedStore() *fakeStore {
	s := newFakeStore()
	s.users[testEmployeeID] = &entity.User{ID: testEmployeeID, WarehouseID: testWarehouseID, Role: entity.RoleEmployee}
	s.equipment[testEquipmentID] = &entity.Equipment{ID: testEquipmentID, Name: "Tostadora"}
	s.resources[testResourceID] = &entity.Resource{ID: testResourceID, Name: "Café verde"}
	s.products[testProductID] = &entity.Product{ID: testProductID, Name: "Café tostado"}
	s.resLocs[resKey{testResourceID, testWarehouseID}] = decimal.NewFromInt(100)
	return s
}

func startRequest(amount int64) dto.StartCompositeRequest {
	return dto.StartCompositeRequest{
		EquipmentID:    testEquipmentID,
		ResourceID:     testResourceID,
		ResourceAmount: decimal.NewFromInt(amount),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// StartComposite
// ──────────────────────────────────────────────────────────────────────────────

func TestStartComposite_ReservaRecursoYCreaProceso(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.StartComposite(context.Background(), testEmployeeID, startRequest(30))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, testEmployeeID, out.EmployeeID)
	assert.Nil(t, out.EndAt, "el proceso recién iniciado debe estar en curso")
	assert.Nil(t, out.ProductID)

	// La reserva descuenta de la bodega base del empleado.
	remaining := s.resLocs[resKey{testResourceID, testWarehouseID}]
	assert.True(t, remaining.Equal(decimal.NewFromInt(70)),
		"stock restante esperado 70, fue %s", remaining)

	require.Len(t, s.composites, 1)
}

func TestStartComposite_StockInsuficiente_NoCreaProceso(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.StartComposite(context.Background(), testEmployeeID, startRequest(500))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, testResourceID, stockErr.ItemID)
	assert.Equal(t, testWarehouseID, stockErr.WarehouseID)

	// Atomicidad: ni proceso creado ni recurso descontado.
	assert.Empty(t, s.composites)
	assert.True(t, s.resLocs[resKey{testResourceID, testWarehouseID}].Equal(decimal.NewFromInt(100)))
}

func TestStartComposite_SinUbicacionDeRecurso_Rechaza(t *testing.T) {
	s := seedStore()
	delete(s.resLocs, resKey{testResourceID, testWarehouseID})
	uc := newUseCase(s)

	_, err := uc.StartComposite(context.Background(), testEmployeeID, startRequest(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.composites)
}

func TestStartComposite_CantidadNoPositiva_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	for _, amount := range []int64{0, -3} {
		_, err := uc.StartComposite(context.Background(), testEmployeeID, startRequest(amount))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount %d debe rechazarse", amount)
	}
}

func TestStartComposite_EmpleadoInexistente_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.StartComposite(context.Background(), "fantasma", startRequest(1))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStartComposite_EquipoInexistente_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	in := startRequest(1)
	in.EquipmentID = "fantasma"
	_, err := uc.StartComposite(context.Background(), testEmployeeID, in)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// EndComposite
// ──────────────────────────────────────────────────────────────────────────────

func startComposite(t *testing.T, uc *manufacturing.UseCase) string {
	t.Helper()
	out, err := uc.StartComposite(context.Background(), testEmployeeID, startRequest(10))
	require.NoError(t, err)
	return out.ID
}

func endRequest() dto.EndCompositeRequest {
	return dto.EndCompositeRequest{ProductID: testProductID, ProductAmount: 5}
}

func TestEndComposite_CierraElProceso(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)
	id := startComposite(t, uc)

	out, err := uc.EndComposite(context.Background(), id, endRequest())
	require.NoError(t, err)
	assert.True(t, out.Success)

	c := s.composites[id]
	require.NotNil(t, c.EndAt)
	require.NotNil(t, c.ProductID)
	assert.Equal(t, testProductID, *c.ProductID)
	assert.Equal(t, int64(5), *c.ProductAmount)
}

func TestEndComposite_SegundoCierre_SuccessFalseSinError(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)
	id := startComposite(t, uc)

	first, err := uc.EndComposite(context.Background(), id, endRequest())
	require.NoError(t, err)
	require.True(t, first.Success)
	firstEnd := *s.composites[id].EndAt

	// El cierre es condicional: el segundo intento no es error, responde success=false
	// y no toca el proceso ya cerrado.
	second, err := uc.EndComposite(context.Background(), id, endRequest())
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, firstEnd, *s.composites[id].EndAt, "end_at no debe cambiar en el segundo intento")
}

func TestEndComposite_NoAbonaProductoTerminado(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)
	id := startComposite(t, uc)

	_, err := uc.EndComposite(context.Background(), id, endRequest())
	require.NoError(t, err)

	// El cierre solo declara el producto obtenido; el alta del stock de producto
	// terminado es una operación aparte del libro de producto.
	assert.True(t, s.resLocs[resKey{testResourceID, testWarehouseID}].Equal(decimal.NewFromInt(90)))
}

func TestEndComposite_ProcesoInexistente_SuccessFalseSinError(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	// Un id inexistente cae en el mismo camino que el ya finalizado: cero
	// filas afectadas por el UPDATE condicional, reporte no fatal.
	out, err := uc.EndComposite(context.Background(), "fantasma", endRequest())
	require.NoError(t, err)
	assert.False(t, out.Success)
}

func TestEndComposite_ProductoInexistente_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)
	id := startComposite(t, uc)

	in := endRequest()
	in.ProductID = "fantasma"
	_, err := uc.EndComposite(context.Background(), id, in)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestEndComposite_CantidadNoPositiva_Rechaza(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)
	id := startComposite(t, uc)

	in := endRequest()
	in.ProductAmount = 0
	_, err := uc.EndComposite(context.Background(), id, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListRunning
// ──────────────────────────────────────────────────────────────────────────────

func TestListRunning_ExcluyeFinalizados(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	running := startComposite(t, uc)
	ended := startComposite(t, uc)
	_, err := uc.EndComposite(context.Background(), ended, endRequest())
	require.NoError(t, err)

	out, err := uc.ListRunning(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, running, out[0].ID)
}
