package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// TaxRate is the flat sales tax applied to every order line.
var TaxRate = decimal.MustNew(15, 2) // 0.15

// Order monetary fields are always the sums over its lines; they are
// computed once by the order workflow and never re-derived.
type Order struct {
	ID        int64
	ClientID  int64
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}

// OrderLine freezes the monetary values of one product position at the
// moment the order was placed. Later price changes never touch it.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  decimal.Decimal
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// OrderRequest is the input of the order-creation workflow. OrderID
// must carry the zero sentinel; ids are assigned by the store.
type OrderRequest struct {
	OrderID  int64
	ClientID int64
	Lines    []OrderLineRequest
}

type OrderLineRequest struct {
	ProductID int64
	Quantity  decimal.Decimal
}

// PlacedOrder is the workflow result: the persisted order plus its
// lines, each resolved with the product name and unit price at the
// time of purchase.
type PlacedOrder struct {
	Order
	Lines []PlacedLine
}

type PlacedLine struct {
	OrderLine
	ProductName string
	UnitPrice   decimal.Decimal
}
