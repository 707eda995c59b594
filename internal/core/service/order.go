package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"go.uber.org/zap"
)

const moneyScale = 2

// CreateOrder runs the whole order placement as one unit of work:
// validate references, price each line, persist order and lines,
// decrement stock, then stamp the accumulated totals on the order.
// Everything happens inside a single transaction; the first failure
// rolls back all of it.
func (s *Service) CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.PlacedOrder, error) {
	if req.OrderID != 0 {
		return nil, fmt.Errorf("%w: ordenId must be 0 for new orders", domain.ErrIDNotZero)
	}
	if len(req.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, lr := range req.Lines {
		if lr.Quantity.Cmp(decimal.Zero) <= 0 {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrBadQuantity, lr.ProductID)
		}
	}

	var placed *domain.PlacedOrder

	err := s.repo.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.ReadClient(ctx, req.ClientID); err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return fmt.Errorf("%w: cliente with ID %d not found", domain.ErrClientNotFound, req.ClientID)
			}
			return err
		}

		order, err := s.repo.CreateOrder(ctx, &domain.Order{
			ClientID:  req.ClientID,
			Subtotal:  decimal.Zero,
			Tax:       decimal.Zero,
			Total:     decimal.Zero,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return err
		}

		lines := make([]domain.PlacedLine, 0, len(req.Lines))
		orderSubtotal, orderTax, orderTotal := decimal.Zero, decimal.Zero, decimal.Zero

		for _, lr := range req.Lines {
			product, err := s.repo.ReadProduct(ctx, lr.ProductID)
			if err != nil {
				if errors.Is(err, domain.ErrDataNotFound) {
					return fmt.Errorf("%w: producto with ID %d not found", domain.ErrProductNotFound, lr.ProductID)
				}
				return err
			}

			avail, err := decimal.New(product.Stock, 0)
			if err != nil {
				return err
			}
			if lr.Quantity.Cmp(avail) > 0 {
				return &domain.StockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   lr.Quantity,
				}
			}

			subtotal, tax, total, err := priceLine(lr.Quantity, product.Price)
			if err != nil {
				return err
			}

			line, err := s.repo.CreateOrderLine(ctx, &domain.OrderLine{
				OrderID:   order.ID,
				ProductID: lr.ProductID,
				Quantity:  lr.Quantity,
				Subtotal:  subtotal,
				Tax:       tax,
				Total:     total,
			})
			if err != nil {
				return err
			}

			// Conditional decrement: stock is re-checked here, so two
			// concurrent orders cannot both drain the same units.
			err = s.repo.DecrementProductStock(ctx, product.ID, wholeUnits(lr.Quantity))
			if err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return &domain.StockError{
						ProductID:   product.ID,
						ProductName: product.Name,
						Available:   product.Stock,
						Requested:   lr.Quantity,
					}
				}
				return err
			}

			if orderSubtotal, err = orderSubtotal.Add(subtotal); err != nil {
				return err
			}
			if orderTax, err = orderTax.Add(tax); err != nil {
				return err
			}
			if orderTotal, err = orderTotal.Add(total); err != nil {
				return err
			}

			lines = append(lines, domain.PlacedLine{
				OrderLine:   *line,
				ProductName: product.Name,
				UnitPrice:   product.Price,
			})
		}

		order.Subtotal = orderSubtotal
		order.Tax = orderTax
		order.Total = orderTotal
		if _, err := s.repo.UpdateOrder(ctx, order); err != nil {
			return err
		}

		placed = &domain.PlacedOrder{Order: *order, Lines: lines}
		return nil
	})
	if err != nil {
		if isRequestError(err) {
			return nil, err
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return placed, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

// priceLine computes the frozen monetary values of one order line from
// the product price at this moment.
func priceLine(quantity, unitPrice decimal.Decimal) (subtotal, tax, total decimal.Decimal, err error) {
	subtotal, err = quantity.Mul(unitPrice)
	if err != nil {
		return
	}
	tax, err = subtotal.Mul(domain.TaxRate)
	if err != nil {
		return
	}
	tax = tax.Round(moneyScale)
	total, err = subtotal.Add(tax)
	return
}

// wholeUnits truncates a decimal quantity to the whole units taken off
// the product stock.
func wholeUnits(quantity decimal.Decimal) int64 {
	units, _, _ := quantity.Trunc(0).Int64(0)
	return units
}

func isRequestError(err error) bool {
	return errors.Is(err, domain.ErrIDNotZero) ||
		errors.Is(err, domain.ErrClientNotFound) ||
		errors.Is(err, domain.ErrProductNotFound) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrBadQuantity) ||
		errors.Is(err, domain.ErrEmptyOrder)
}
