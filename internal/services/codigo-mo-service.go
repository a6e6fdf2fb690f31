package services

import (
	"context"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"

	"go.uber.org/zap"
)

type CodigoMOService struct {
	codigoMORepo repositories.CodigoMORepositoryInterface
	logger       *zap.Logger
}

func NewCodigoMOService(codigoMORepo repositories.CodigoMORepositoryInterface, logger *zap.Logger) *CodigoMOService {
	return &CodigoMOService{codigoMORepo: codigoMORepo, logger: logger}
}

func (s *CodigoMOService) Buscar(ctx context.Context, req dto.BuscarCodigosRequest) ([]entities.CodigoMO, error) {
	return s.codigoMORepo.Buscar(ctx, req.Busca, req.Tipo, req.Limit)
}
