package service

import (
	"github.com/jvillalobos/ventasapi/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewService(repo port.Repository, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:   repo,
		logger: logger,
	}, nil
}
