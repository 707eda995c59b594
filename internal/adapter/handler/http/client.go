package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"github.com/jvillalobos/ventasapi/internal/core/port"
	"go.uber.org/zap"
)

type ClientHandler struct {
	Handler
	service port.Service
}

func NewClientHandler(service port.Service, logger *zap.Logger) (*ClientHandler, error) {
	return &ClientHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type clientRequest struct {
	ClientID int64  `json:"clienteId"`
	Name     string `json:"nombre" binding:"required"`
	Identity string `json:"identidad" binding:"required"`
}

type clientResponse struct {
	ClientID int64  `json:"clienteId"`
	Name     string `json:"nombre"`
	Identity string `json:"identidad"`
}

func newClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ClientID: c.ID,
		Name:     c.Name,
		Identity: c.Identity,
	}
}

func (ch *ClientHandler) ListClients(ctx *gin.Context) {
	list, err := ch.service.ListClients(ctx)
	if err != nil {
		ch.handleError(ctx, err, "Error retrieving clientes")
		return
	}

	result := make([]clientResponse, 0, len(list))
	for _, c := range list {
		result = append(result, newClientResponse(c))
	}

	ch.handleSuccess(ctx, result, "Clientes retrieved successfully")
}

func (ch *ClientHandler) GetClient(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.GetClient(ctx, id)
	if err != nil {
		ch.handleError(ctx, err, "Error retrieving cliente")
		return
	}

	ch.handleSuccess(ctx, newClientResponse(client), "Cliente retrieved successfully")
}

func (ch *ClientHandler) CreateClient(ctx *gin.Context) {
	req := clientRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.CreateClient(ctx, &domain.Client{
		ID:       req.ClientID,
		Name:     req.Name,
		Identity: req.Identity,
	})
	if err != nil {
		ch.handleError(ctx, err, "Error creating cliente")
		return
	}

	ch.handleCreated(ctx, newClientResponse(client), "Cliente created successfully")
}

func (ch *ClientHandler) UpdateClient(ctx *gin.Context) {
	req := clientRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	client, err := ch.service.UpdateClient(ctx, &domain.Client{
		ID:       req.ClientID,
		Name:     req.Name,
		Identity: req.Identity,
	})
	if err != nil {
		ch.handleError(ctx, err, "Error updating cliente")
		return
	}

	ch.handleSuccess(ctx, newClientResponse(client), "Cliente updated successfully")
}
