package port

import (
	"context"

	"github.com/jvillalobos/ventasapi/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Cliente
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	ReadClient(ctx context.Context, clientID int64) (*domain.Client, error)
	ReadClientByIdentity(ctx context.Context, identity string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)

	// Producto
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// DecrementProductStock subtracts units from the product stock only
	// if at least that many units remain. Safe under concurrent callers.
	DecrementProductStock(ctx context.Context, productID int64, units int64) error

	// Orden
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// Detalle de orden
	CreateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error)
	ReadOrderLine(ctx context.Context, lineID int64) (*domain.OrderLine, error)
	ListOrderLines(ctx context.Context) ([]*domain.OrderLine, error)
	ListOrderLinesByOrder(ctx context.Context, orderID int64) ([]*domain.OrderLine, error)
	UpdateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error)
	DeleteOrderLine(ctx context.Context, lineID int64) error

	// RunInTransaction runs fn within one database transaction. Repository
	// calls made with the ctx passed to fn share that transaction; any
	// error from fn rolls back everything it did.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
