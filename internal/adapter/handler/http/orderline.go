package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"github.com/jvillalobos/ventasapi/internal/core/port"
	"go.uber.org/zap"
)

type OrderLineHandler struct {
	Handler
	service port.Service
}

func NewOrderLineHandler(service port.Service, logger *zap.Logger) (*OrderLineHandler, error) {
	return &OrderLineHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func newOrderLineResponse(l *domain.OrderLine) orderLineResponse {
	return orderLineResponse{
		LineID:    l.ID,
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		Quantity:  jsonDecimal(l.Quantity),
		Subtotal:  jsonDecimal(l.Subtotal),
		Tax:       jsonDecimal(l.Tax),
		Total:     jsonDecimal(l.Total),
	}
}

func (lh *OrderLineHandler) ListOrderLines(ctx *gin.Context) {
	list, err := lh.service.ListOrderLines(ctx)
	if err != nil {
		lh.handleError(ctx, err, "Error retrieving detalles de orden")
		return
	}

	result := make([]orderLineResponse, 0, len(list))
	for _, l := range list {
		result = append(result, newOrderLineResponse(l))
	}

	lh.handleSuccess(ctx, result, "Detalles de orden retrieved successfully")
}

func (lh *OrderLineHandler) GetOrderLine(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		lh.handleValidationError(ctx, err)
		return
	}

	line, err := lh.service.GetOrderLine(ctx, id)
	if err != nil {
		lh.handleError(ctx, err, "Error retrieving detalle de orden")
		return
	}

	lh.handleSuccess(ctx, newOrderLineResponse(line), "Detalle de orden retrieved successfully")
}

func (lh *OrderLineHandler) ListOrderLinesByOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("ordenId"), 10, 64)
	if err != nil {
		lh.handleValidationError(ctx, err)
		return
	}

	list, err := lh.service.ListOrderLinesByOrder(ctx, orderID)
	if err != nil {
		lh.handleError(ctx, err, "Error retrieving detalles de orden")
		return
	}

	result := make([]orderLineResponse, 0, len(list))
	for _, l := range list {
		result = append(result, newOrderLineResponse(l))
	}

	lh.handleSuccess(ctx, result, "Detalles de orden retrieved successfully")
}

type orderLineUpdateRequest struct {
	Quantity jsonDecimal `json:"cantidad"`
	Subtotal jsonDecimal `json:"subtotal"`
	Tax      jsonDecimal `json:"impuesto"`
	Total    jsonDecimal `json:"total"`
}

func (lh *OrderLineHandler) UpdateOrderLine(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		lh.handleValidationError(ctx, err)
		return
	}

	req := orderLineUpdateRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		lh.handleValidationError(ctx, err)
		return
	}

	line, err := lh.service.UpdateOrderLine(ctx, &domain.OrderLine{
		ID:       id,
		Quantity: decimal.Decimal(req.Quantity),
		Subtotal: decimal.Decimal(req.Subtotal),
		Tax:      decimal.Decimal(req.Tax),
		Total:    decimal.Decimal(req.Total),
	})
	if err != nil {
		lh.handleError(ctx, err, "Error updating detalle de orden")
		return
	}

	lh.handleSuccess(ctx, newOrderLineResponse(line), "Detalle de orden updated successfully")
}

func (lh *OrderLineHandler) DeleteOrderLine(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		lh.handleValidationError(ctx, err)
		return
	}

	if err := lh.service.DeleteOrderLine(ctx, id); err != nil {
		lh.handleError(ctx, err, "Error deleting detalle de orden")
		return
	}

	lh.handleSuccess(ctx, nil, "Detalle de orden deleted successfully")
}
