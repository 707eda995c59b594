package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jvillalobos/ventasapi/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.ID != 0 {
		return nil, fmt.Errorf("%w: clienteId must be 0 for new clients", domain.ErrIDNotZero)
	}

	exClient, err := s.repo.ReadClientByIdentity(ctx, client.Identity)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Read client by identity", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exClient != nil {
		return nil, fmt.Errorf("%w: a client with identidad '%s' already exists",
			domain.ErrIdentityTaken, client.Identity)
	}

	newClient, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, fmt.Errorf("%w: a client with identidad '%s' already exists",
				domain.ErrIdentityTaken, client.Identity)
		}
		s.logger.Error("Create client", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newClient, nil
}

func (s *Service) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.repo.ReadClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: cliente with ID %d not found", domain.ErrDataNotFound, clientID)
		}
		s.logger.Error("Read client", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return client, nil
}

func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	list, err := s.repo.ListClients(ctx)
	if err != nil {
		s.logger.Error("List clients", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if _, err := s.repo.ReadClient(ctx, client.ID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: cliente with ID %d not found", domain.ErrDataNotFound, client.ID)
		}
		s.logger.Error("Read client", zap.Error(err))
		return nil, domain.ErrInternal
	}

	// identidad stays unique across the other clients
	exClient, err := s.repo.ReadClientByIdentity(ctx, client.Identity)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Read client by identity", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exClient != nil && exClient.ID != client.ID {
		return nil, fmt.Errorf("%w: a client with identidad '%s' already exists",
			domain.ErrIdentityTaken, client.Identity)
	}

	updated, err := s.repo.UpdateClient(ctx, client)
	if err != nil {
		s.logger.Error("Update client", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}
