package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/store"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore guarda productos y órdenes bajo un mutex compartido; fakeTxRunner
// toma ese mutex durante toda la transacción, reproduciendo la serialización
// que da el update condicional en PostgreSQL. Así el test de concurrencia
// ejercita las mismas garantías que el código real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	orders   []*entity.Order
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

type fakeProductRepo struct {
	s *fakeStore
	// locked indica que el repo corre dentro de una tx que ya tiene el mutex
	locked bool
}

func (r *fakeProductRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		if category == "" || p.Category == category {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, quantity int) (bool, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok || p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

type fakeOrderRepo struct {
	s      *fakeStore
	locked bool
}

func (r *fakeOrderRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	defer r.lock()()
	cp := *o
	r.s.orders = append(r.s.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	defer r.lock()()
	for _, o := range r.s.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]*entity.OrderWithProduct, error) {
	defer r.lock()()
	var out []*entity.OrderWithProduct
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, &entity.OrderWithProduct{Order: *o})
		}
	}
	return out, nil
}

// fakeTxRunner serializa transacciones con el mutex del store y descarta los
// cambios de producto si fn falla (rollback de a mentiras, suficiente para
// verificar que nada queda escrito tras un abort).
type fakeTxRunner struct {
	s *fakeStore
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()

	// snapshot para rollback
	snapProducts := make(map[string]*entity.Product, len(tr.s.products))
	for id, p := range tr.s.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapOrders := len(tr.s.orders)

	err := fn(&fakeProductRepo{s: tr.s, locked: true}, &fakeOrderRepo{s: tr.s, locked: true})
	if err != nil {
		tr.s.products = snapProducts
		tr.s.orders = tr.s.orders[:snapOrders]
		return err
	}
	return nil
}

func testProduct(id string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Café de origen 500g",
		Price:     decimal.NewFromInt(price),
		Stock:     stock,
		Category:  "alimentos",
		CreatedAt: time.Now(),
	}
}

func newUseCase(s *fakeStore) *store.PlaceOrderUseCase {
	return store.NewPlaceOrderUseCase(&fakeTxRunner{s: s}, &fakeProductRepo{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

// Compra feliz: stock 5, compra 3 → stock queda en 2 y hay una orden con
// total = precio × cantidad.
func TestPlaceOrder_CompraExitosa(t *testing.T) {
	s := newFakeStore(testProduct("p1", 100, 5))
	uc := newUseCase(s)

	out, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, 3, out.Quantity)
	assert.True(t, out.TotalPrice.Equal(decimal.NewFromInt(300)),
		"total debe ser precio × cantidad (300), fue %s", out.TotalPrice)

	assert.Equal(t, 2, s.products["p1"].Stock, "el stock debe quedar decrementado")
	require.Len(t, s.orders, 1, "debe existir exactamente una orden")
	assert.Equal(t, "u1", s.orders[0].UserID)
}

// Stock insuficiente: compra 10 con stock 2 → InsufficientStockError con la
// disponibilidad actual, sin escribir nada.
func TestPlaceOrder_StockInsuficiente(t *testing.T) {
	s := newFakeStore(testProduct("p1", 100, 2))
	uc := newUseCase(s)

	out, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{ProductID: "p1", Quantity: 10})
	require.Error(t, err)
	assert.Nil(t, out)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available, "debe reportar la disponibilidad actual")

	assert.Equal(t, 2, s.products["p1"].Stock, "el stock no debe cambiar")
	assert.Empty(t, s.orders, "no debe crearse ninguna orden")
}

// Sin sesión: userID vacío → ErrUnauthenticated, cero escrituras.
func TestPlaceOrder_SinSesion(t *testing.T) {
	s := newFakeStore(testProduct("p1", 100, 5))
	uc := newUseCase(s)

	out, err := uc.PlaceOrder(context.Background(), "", dto.PlaceOrderRequest{ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Nil(t, out)
	assert.Equal(t, 5, s.products["p1"].Stock)
	assert.Empty(t, s.orders)
}

// Producto inexistente → ErrNotFound.
func TestPlaceOrder_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cantidad inválida (cero o negativa) → ErrInvalidInput.
func TestPlaceOrder_CantidadInvalida(t *testing.T) {
	s := newFakeStore(testProduct("p1", 100, 5))
	uc := newUseCase(s)

	for _, qty := range []int{0, -1} {
		_, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{ProductID: "p1", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity=%d debe rechazarse", qty)
	}
}

// Producto eliminado entre el snapshot y la transacción → ErrNotFound, no
// InsufficientStockError.
func TestPlaceOrder_ProductoEliminadoDuranteCompra(t *testing.T) {
	s := newFakeStore(testProduct("p1", 100, 5))

	// txRunner que borra el producto justo antes de delegar, simulando una
	// eliminación concurrente ganando la carrera.
	tr := &deletingTxRunner{inner: &fakeTxRunner{s: s}, s: s, deleteID: "p1"}
	uc := store.NewPlaceOrderUseCase(tr, &fakeProductRepo{s: s})

	_, err := uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orders)
}

type deletingTxRunner struct {
	inner    *fakeTxRunner
	s        *fakeStore
	deleteID string
}

func (tr *deletingTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tr.s.mu.Lock()
	delete(tr.s.products, tr.deleteID)
	tr.s.mu.Unlock()
	return tr.inner.Run(ctx, fn)
}

// Regresión de sobreventa: dos compras concurrentes cuya suma excede el stock.
// A lo sumo una puede tener éxito y el stock jamás queda negativo.
func TestPlaceOrder_ComprasConcurrentes_SinSobreventa(t *testing.T) {
	const stock = 5
	s := newFakeStore(testProduct("p1", 100, stock))
	uc := newUseCase(s)

	quantities := []int{4, 4} // 4+4 > 5: solo una puede pasar

	var wg sync.WaitGroup
	errs := make([]error, len(quantities))
	for i, qty := range quantities {
		wg.Add(1)
		go func(i, qty int) {
			defer wg.Done()
			_, errs[i] = uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{ProductID: "p1", Quantity: qty})
		}(i, qty)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			var insufficient *domain.InsufficientStockError
			assert.ErrorAs(t, err, &insufficient, "el fallo debe ser por stock insuficiente")
		}
	}
	assert.LessOrEqual(t, successes, 1, "a lo sumo una compra puede tener éxito")
	assert.GreaterOrEqual(t, s.products["p1"].Stock, 0, "el stock nunca puede quedar negativo")
	assert.Len(t, s.orders, successes, "cada éxito deja exactamente una orden")
}
