package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"github.com/jvillalobos/ventasapi/internal/core/port"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.Service
}

func NewProductHandler(service port.Service, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productRequest struct {
	ProductID   int64       `json:"productoId"`
	Name        string      `json:"nombre" binding:"required"`
	Description string      `json:"descripcion"`
	Price       jsonDecimal `json:"precio"`
	Stock       int64       `json:"existencia"`
}

type productResponse struct {
	ProductID   int64       `json:"productoId"`
	Name        string      `json:"nombre"`
	Description string      `json:"descripcion"`
	Price       jsonDecimal `json:"precio"`
	Stock       int64       `json:"existencia"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       jsonDecimal(p.Price),
		Stock:       p.Stock,
	}
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	list, err := ph.service.ListProducts(ctx)
	if err != nil {
		ph.handleError(ctx, err, "Error retrieving productos")
		return
	}

	result := make([]productResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newProductResponse(p))
	}

	ph.handleSuccess(ctx, result, "Productos retrieved successfully")
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.GetProduct(ctx, id)
	if err != nil {
		ph.handleError(ctx, err, "Error retrieving producto")
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product), "Producto retrieved successfully")
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	req := productRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.CreateProduct(ctx, &domain.Product{
		ID:          req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.Decimal(req.Price),
		Stock:       req.Stock,
	})
	if err != nil {
		ph.handleError(ctx, err, "Error creating producto")
		return
	}

	ph.handleCreated(ctx, newProductResponse(product), "Producto created successfully")
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	req := productRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.UpdateProduct(ctx, &domain.Product{
		ID:          req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.Decimal(req.Price),
		Stock:       req.Stock,
	})
	if err != nil {
		ph.handleError(ctx, err, "Error updating producto")
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product), "Producto updated successfully")
}
