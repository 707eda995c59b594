package service

import (
	"context"
	"errors"

	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"go.uber.org/zap"
)

// Order lines are created only by the order workflow; these sibling
// operations cover reads, corrections and removal of existing lines.

func (s *Service) GetOrderLine(ctx context.Context, lineID int64) (*domain.OrderLine, error) {
	line, err := s.repo.ReadOrderLine(ctx, lineID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read order line", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return line, nil
}

func (s *Service) ListOrderLines(ctx context.Context) ([]*domain.OrderLine, error) {
	list, err := s.repo.ListOrderLines(ctx)
	if err != nil {
		s.logger.Error("List order lines", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListOrderLinesByOrder(ctx context.Context, orderID int64) ([]*domain.OrderLine, error) {
	list, err := s.repo.ListOrderLinesByOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("List order lines by order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) UpdateOrderLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error) {
	if _, err := s.repo.ReadOrderLine(ctx, line.ID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read order line", zap.Error(err))
		return nil, domain.ErrInternal
	}

	updated, err := s.repo.UpdateOrderLine(ctx, line)
	if err != nil {
		s.logger.Error("Update order line", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}

func (s *Service) DeleteOrderLine(ctx context.Context, lineID int64) error {
	if _, err := s.repo.ReadOrderLine(ctx, lineID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return err
		}
		s.logger.Error("Read order line", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.repo.DeleteOrderLine(ctx, lineID); err != nil {
		s.logger.Error("Delete order line", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
