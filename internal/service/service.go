package service

import (
	"trading-journal/config"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
)

type Service struct {
	AuthService      AuthService
	PortfolioService PortfolioService
	TradeService     TradeService
	DepositService   DepositService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	portfolioService := NewPortfolioService(cfg, log, repo.TradeRepo, repo.DepositRepo, inmemoryCache)

	return &Service{
		AuthService:      NewAuthService(cfg, log, repo.UserRepo, repo.SessionRepo, repo.UnitOfWork, inmemoryCache),
		PortfolioService: portfolioService,
		TradeService:     NewTradeService(log, repo.TradeRepo, portfolioService),
		DepositService:   NewDepositService(log, repo.DepositRepo, portfolioService),
	}
}
