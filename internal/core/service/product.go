package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID != 0 {
		return nil, fmt.Errorf("%w: productoId must be 0 for new products", domain.ErrIDNotZero)
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("%w: existencia must not be negative", domain.ErrBadRequest)
	}

	newProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return newProduct, nil
}

func (s *Service) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: producto with ID %d not found", domain.ErrDataNotFound, productID)
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	list, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, err := s.repo.ReadProduct(ctx, product.ID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: producto with ID %d not found", domain.ErrDataNotFound, product.ID)
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("%w: existencia must not be negative", domain.ErrBadRequest)
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Update product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}
