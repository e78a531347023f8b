package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/logger"
)

type DepositService interface {
	Create(ctx context.Context, userID uint, amount float64, depositedAt time.Time) (*model.Deposit, error)
	List(ctx context.Context, userID uint) ([]model.Deposit, error)
}

type depositService struct {
	log         *logger.Logger
	depositRepo repository.DepositRepository
	portfolio   PortfolioService
}

func NewDepositService(log *logger.Logger, depositRepo repository.DepositRepository, portfolio PortfolioService) DepositService {
	return &depositService{
		log:         log,
		depositRepo: depositRepo,
		portfolio:   portfolio,
	}
}

func (s *depositService) Create(ctx context.Context, userID uint, amount float64, depositedAt time.Time) (*model.Deposit, error) {
	deposit := &model.Deposit{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		DepositedAt: depositedAt,
	}

	if err := s.depositRepo.Create(ctx, deposit); err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	s.portfolio.ApplyDepositAdded(userID, amount)

	s.log.InfoContext(ctx, "Deposit created", logger.StringField("deposit_id", deposit.ID))
	return deposit, nil
}

func (s *depositService) List(ctx context.Context, userID uint) ([]model.Deposit, error) {
	deposits, err := s.depositRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}
