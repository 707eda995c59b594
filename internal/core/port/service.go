package port

import (
	"context"

	"github.com/jvillalobos/ventasapi/internal/core/domain"
)

type Service interface {
	// Clientes
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)

	// Productos
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// Ordenes
	CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.PlacedOrder, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)

	// Detalles de orden
	GetOrderLine(ctx context.Context, lineID int64) (*domain.OrderLine, error)
	ListOrderLines(ctx context.Context) ([]*domain.OrderLine, error)
	ListOrderLinesByOrder(ctx context.Context, orderID int64) ([]*domain.OrderLine, error)
	UpdateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error)
	DeleteOrderLine(ctx context.Context, lineID int64) error
}
