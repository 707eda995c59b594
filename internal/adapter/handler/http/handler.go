package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrIdentityTaken:   http.StatusConflict,

	domain.ErrBadRequest:         http.StatusBadRequest,
	domain.ErrIDNotZero:          http.StatusBadRequest,
	domain.ErrClientNotFound:     http.StatusBadRequest,
	domain.ErrProductNotFound:    http.StatusBadRequest,
	domain.ErrEmptyOrder:         http.StatusBadRequest,
	domain.ErrBadQuantity:        http.StatusBadRequest,
	domain.ErrInsufficientStock: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for sentinel, status := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors"`
	Data    any      `json:"data,omitempty"`
}

// jsonDecimal marshals money and quantity values as plain JSON numbers.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	s := fmt.Sprintf("%f", decimal.Decimal(j))
	return []byte(s), nil
}

func (j *jsonDecimal) UnmarshalJSON(data []byte) error {
	d, err := decimal.Parse(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*j = jsonDecimal(d)
	return nil
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleSuccess sends the success envelope with the given payload
func (h *Handler) handleSuccess(ctx *gin.Context, data any, message string) {
	ctx.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: message,
		Errors:  []string{},
		Data:    data,
	})
}

// handleCreated sends the success envelope with status 201
func (h *Handler) handleCreated(ctx *gin.Context, data any, message string) {
	ctx.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Message: message,
		Errors:  []string{},
		Data:    data,
	})
}

// handleValidationError reports a request that never reached the service
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, apiResponse{
		Success: false,
		Message: domain.ErrBadRequest.Error(),
		Errors:  []string{err.Error()},
	})
}

// handleError maps a service error onto the envelope and a status code
func (h *Handler) handleError(ctx *gin.Context, err error, message string) {
	statusCode := statusFromError(err)
	if statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, apiResponse{
		Success: false,
		Message: message,
		Errors:  []string{err.Error()},
	})
}
