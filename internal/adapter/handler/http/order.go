package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/jvillalobos/ventasapi/internal/adapter/metrics"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"github.com/jvillalobos/ventasapi/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

func NewOrderHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

type createOrderRequest struct {
	OrderID  int64                    `json:"ordenId"`
	ClientID int64                    `json:"clienteId"`
	Lines    []createOrderLineRequest `json:"detalle" binding:"required"`
}

type createOrderLineRequest struct {
	ProductID int64       `json:"productoId"`
	Quantity  jsonDecimal `json:"cantidad"`
}

type orderResponse struct {
	OrderID   int64               `json:"ordenId"`
	ClientID  int64               `json:"clienteId"`
	Subtotal  jsonDecimal         `json:"subtotal"`
	Tax       jsonDecimal         `json:"impuesto"`
	Total     jsonDecimal         `json:"total"`
	CreatedAt time.Time           `json:"fechaCreacion"`
	Lines     []orderLineResponse `json:"detalles"`
}

type orderLineResponse struct {
	LineID      int64       `json:"detalleOrdenId"`
	OrderID     int64       `json:"ordenId"`
	ProductID   int64       `json:"productoId"`
	ProductName string      `json:"nombreProducto,omitempty"`
	Quantity    jsonDecimal `json:"cantidad"`
	UnitPrice   jsonDecimal `json:"precioUnitario"`
	Subtotal    jsonDecimal `json:"subtotal"`
	Tax         jsonDecimal `json:"impuesto"`
	Total       jsonDecimal `json:"total"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	orderReq := domain.OrderRequest{
		OrderID:  req.OrderID,
		ClientID: req.ClientID,
		Lines:    make([]domain.OrderLineRequest, 0, len(req.Lines)),
	}
	for _, l := range req.Lines {
		orderReq.Lines = append(orderReq.Lines, domain.OrderLineRequest{
			ProductID: l.ProductID,
			Quantity:  decimal.Decimal(l.Quantity),
		})
	}

	placed, err := oh.service.CreateOrder(ctx, &orderReq)
	if err != nil {
		oh.metrics.OrdersRejected.WithLabelValues(rejectReason(err)).Inc()
		oh.handleError(ctx, err, "Error creating order")
		return
	}
	oh.metrics.OrdersCreated.Inc()

	result := orderResponse{
		OrderID:   placed.ID,
		ClientID:  placed.ClientID,
		Subtotal:  jsonDecimal(placed.Subtotal),
		Tax:       jsonDecimal(placed.Tax),
		Total:     jsonDecimal(placed.Total),
		CreatedAt: placed.CreatedAt,
		Lines:     make([]orderLineResponse, 0, len(placed.Lines)),
	}
	for _, l := range placed.Lines {
		result.Lines = append(result.Lines, orderLineResponse{
			LineID:      l.ID,
			OrderID:     l.OrderID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    jsonDecimal(l.Quantity),
			UnitPrice:   jsonDecimal(l.UnitPrice),
			Subtotal:    jsonDecimal(l.Subtotal),
			Tax:         jsonDecimal(l.Tax),
			Total:       jsonDecimal(l.Total),
		})
	}

	oh.handleSuccess(ctx, result, "Order created successfully")
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err, "Error retrieving orden")
		return
	}
	lines, err := oh.service.ListOrderLinesByOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err, "Error retrieving orden")
		return
	}

	result := orderResponse{
		OrderID:   order.ID,
		ClientID:  order.ClientID,
		Subtotal:  jsonDecimal(order.Subtotal),
		Tax:       jsonDecimal(order.Tax),
		Total:     jsonDecimal(order.Total),
		CreatedAt: order.CreatedAt,
		Lines:     make([]orderLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		result.Lines = append(result.Lines, newOrderLineResponse(l))
	}

	oh.handleSuccess(ctx, result, "Orden retrieved successfully")
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrIDNotZero),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrBadQuantity):
		return "invalid_request"
	default:
		return "internal"
	}
}
