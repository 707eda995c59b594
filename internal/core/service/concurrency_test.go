package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"github.com/jvillalobos/ventasapi/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// memRepo is an in-memory Repository with real transaction semantics:
// RunInTransaction serializes writers and restores the previous state
// when the body fails, which is what the concurrency property needs.
type memRepo struct {
	mu       sync.Mutex
	clients  map[int64]domain.Client
	products map[int64]domain.Product
	orders   map[int64]domain.Order
	lines    map[int64]domain.OrderLine
	nextID   int64
}

func newMemRepo() *memRepo {
	return &memRepo{
		clients:  make(map[int64]domain.Client),
		products: make(map[int64]domain.Product),
		orders:   make(map[int64]domain.Order),
		lines:    make(map[int64]domain.OrderLine),
	}
}

type memTxKey struct{}

// lock takes the repository lock unless ctx already runs inside a
// transaction holding it.
func (r *memRepo) lock(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

type memSnapshot struct {
	products map[int64]domain.Product
	orders   map[int64]domain.Order
	lines    map[int64]domain.OrderLine
	nextID   int64
}

func (r *memRepo) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := memSnapshot{
		products: make(map[int64]domain.Product, len(r.products)),
		orders:   make(map[int64]domain.Order, len(r.orders)),
		lines:    make(map[int64]domain.OrderLine, len(r.lines)),
		nextID:   r.nextID,
	}
	for k, v := range r.products {
		snap.products[k] = v
	}
	for k, v := range r.orders {
		snap.orders[k] = v
	}
	for k, v := range r.lines {
		snap.lines[k] = v
	}

	err := fn(context.WithValue(ctx, memTxKey{}, true))
	if err != nil {
		r.products = snap.products
		r.orders = snap.orders
		r.lines = snap.lines
		r.nextID = snap.nextID
	}
	return err
}

func (r *memRepo) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	defer r.lock(ctx)()
	r.nextID++
	client.ID = r.nextID
	r.clients[client.ID] = *client
	return client, nil
}

func (r *memRepo) ReadClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	defer r.lock(ctx)()
	c, ok := r.clients[clientID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &c, nil
}

func (r *memRepo) ReadClientByIdentity(ctx context.Context, identity string) (*domain.Client, error) {
	defer r.lock(ctx)()
	for _, c := range r.clients {
		if c.Identity == identity {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrDataNotFound
}

func (r *memRepo) ListClients(ctx context.Context) ([]*domain.Client, error) {
	defer r.lock(ctx)()
	list := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		c := c
		list = append(list, &c)
	}
	return list, nil
}

func (r *memRepo) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	defer r.lock(ctx)()
	if _, ok := r.clients[client.ID]; !ok {
		return nil, domain.ErrDataNotFound
	}
	r.clients[client.ID] = *client
	return client, nil
}

func (r *memRepo) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	defer r.lock(ctx)()
	r.nextID++
	product.ID = r.nextID
	r.products[product.ID] = *product
	return product, nil
}

func (r *memRepo) ReadProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	defer r.lock(ctx)()
	p, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &p, nil
}

func (r *memRepo) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	defer r.lock(ctx)()
	list := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		p := p
		list = append(list, &p)
	}
	return list, nil
}

func (r *memRepo) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	defer r.lock(ctx)()
	if _, ok := r.products[product.ID]; !ok {
		return nil, domain.ErrDataNotFound
	}
	r.products[product.ID] = *product
	return product, nil
}

func (r *memRepo) DecrementProductStock(ctx context.Context, productID int64, units int64) error {
	defer r.lock(ctx)()
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrDataNotFound
	}
	if p.Stock < units {
		return domain.ErrInsufficientStock
	}
	p.Stock -= units
	r.products[productID] = p
	return nil
}

func (r *memRepo) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	defer r.lock(ctx)()
	r.nextID++
	order.ID = r.nextID
	r.orders[order.ID] = *order
	return order, nil
}

func (r *memRepo) ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	defer r.lock(ctx)()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &o, nil
}

func (r *memRepo) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	defer r.lock(ctx)()
	if _, ok := r.orders[order.ID]; !ok {
		return nil, domain.ErrDataNotFound
	}
	r.orders[order.ID] = *order
	return order, nil
}

func (r *memRepo) CreateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	defer r.lock(ctx)()
	r.nextID++
	line.ID = r.nextID
	r.lines[line.ID] = *line
	return line, nil
}

func (r *memRepo) ReadOrderLine(ctx context.Context, lineID int64) (*domain.OrderLine, error) {
	defer r.lock(ctx)()
	l, ok := r.lines[lineID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &l, nil
}

func (r *memRepo) ListOrderLines(ctx context.Context) ([]*domain.OrderLine, error) {
	defer r.lock(ctx)()
	list := make([]*domain.OrderLine, 0, len(r.lines))
	for _, l := range r.lines {
		l := l
		list = append(list, &l)
	}
	return list, nil
}

func (r *memRepo) ListOrderLinesByOrder(ctx context.Context, orderID int64) ([]*domain.OrderLine, error) {
	defer r.lock(ctx)()
	list := make([]*domain.OrderLine, 0)
	for _, l := range r.lines {
		if l.OrderID == orderID {
			l := l
			list = append(list, &l)
		}
	}
	return list, nil
}

func (r *memRepo) UpdateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	defer r.lock(ctx)()
	if _, ok := r.lines[line.ID]; !ok {
		return nil, domain.ErrDataNotFound
	}
	r.lines[line.ID] = *line
	return line, nil
}

func (r *memRepo) DeleteOrderLine(ctx context.Context, lineID int64) error {
	defer r.lock(ctx)()
	if _, ok := r.lines[lineID]; !ok {
		return domain.ErrDataNotFound
	}
	delete(r.lines, lineID)
	return nil
}

// Two orders race for 6 units of a product with 10 in stock: exactly
// one must win, the other must get the insufficient-stock rejection,
// and the stock must end at 4.
func TestService_CreateOrder_ConcurrentStock(t *testing.T) {
	logger, _ := zap.NewProduction()

	repo := newMemRepo()
	repo.clients[1] = domain.Client{ID: 1, Name: "Juan Pérez", Identity: "0801-1990-12345"}
	repo.products[1] = domain.Product{ID: 1, Name: "Laptop HP", Price: qty("100.00"), Stock: 10}
	repo.nextID = 1

	s, err := service.NewService(repo, logger)
	assert.NoError(t, err)

	const workers = 2
	results := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.CreateOrder(context.Background(), &domain.OrderRequest{
				ClientID: 1,
				Lines:    []domain.OrderLineRequest{{ProductID: 1, Quantity: qty("6")}},
			})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrInsufficientStock):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	product, err := repo.ReadProduct(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), product.Stock)
}

// A failure on the second line must leave nothing behind: no order, no
// lines, and the first line's stock back where it was.
func TestService_CreateOrder_RollbackRestoresStock(t *testing.T) {
	logger, _ := zap.NewProduction()

	repo := newMemRepo()
	repo.clients[1] = domain.Client{ID: 1, Name: "Juan Pérez", Identity: "0801-1990-12345"}
	repo.products[1] = domain.Product{ID: 1, Name: "Laptop HP", Price: qty("100.00"), Stock: 10}
	repo.products[2] = domain.Product{ID: 2, Name: "Monitor Dell", Price: qty("30.00"), Stock: 1}
	repo.nextID = 2

	s, err := service.NewService(repo, logger)
	assert.NoError(t, err)

	_, err = s.CreateOrder(context.Background(), &domain.OrderRequest{
		ClientID: 1,
		Lines: []domain.OrderLineRequest{
			{ProductID: 1, Quantity: qty("2")},
			{ProductID: 2, Quantity: qty("5")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	product, err := repo.ReadProduct(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), product.Stock)

	assert.Empty(t, repo.orders)

	lines, err := repo.ListOrderLines(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, lines)
}
