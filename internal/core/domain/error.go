package domain

import (
	"errors"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrIDNotZero         = errors.New("id must be 0 for new records")
	ErrClientNotFound    = errors.New("cliente not found")
	ErrProductNotFound   = errors.New("producto not found")
	ErrEmptyOrder        = errors.New("order must contain at least one detail line")
	ErrBadQuantity       = errors.New("quantity must be greater than zero")
	ErrIdentityTaken     = errors.New("identidad must be unique")
	ErrInsufficientStock = errors.New("not enough stock")
)

// StockError reports an insufficient-stock rejection with the numbers
// the caller needs to fix the request.
type StockError struct {
	ProductID   int64
	ProductName string
	Available   int64
	Requested   decimal.Decimal
}

func (e *StockError) Error() string {
	return "producto '" + e.ProductName + "' does not have enough stock. Available: " +
		strconv.FormatInt(e.Available, 10) + ", Requested: " + e.Requested.String()
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }
