package domain

import "github.com/govalues/decimal"

// Product is a sellable item. Stock holds whole units on hand and is
// only mutated through the order workflow.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
}
