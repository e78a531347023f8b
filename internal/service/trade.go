package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/logger"
)

type TradeService interface {
	Create(ctx context.Context, userID uint, input dto.TradeInput) (*model.Trade, error)
	Update(ctx context.Context, userID uint, id string, input dto.TradeInput) (*model.Trade, error)
	Delete(ctx context.Context, userID uint, id string) error
}

type tradeService struct {
	log       *logger.Logger
	tradeRepo repository.TradeRepository
	portfolio PortfolioService
}

func NewTradeService(log *logger.Logger, tradeRepo repository.TradeRepository, portfolio PortfolioService) TradeService {
	return &tradeService{
		log:       log,
		tradeRepo: tradeRepo,
		portfolio: portfolio,
	}
}

func (s *tradeService) Create(ctx context.Context, userID uint, input dto.TradeInput) (*model.Trade, error) {
	buyDate := datatypes.Date(input.BuyDate)

	duplicate, err := s.tradeRepo.ExistsDuplicate(ctx, userID, input.Symbol, buyDate, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate trade: %w", err)
	}
	if duplicate {
		return nil, ErrDuplicateTrade
	}

	trade := &model.Trade{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	applyInput(trade, input)

	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	// The ledger is mutated only now that the write is acknowledged.
	s.portfolio.ApplyTradeCreated(userID, trade.ToJournal())

	s.log.InfoContext(ctx, "Trade created",
		logger.StringField("trade_id", trade.ID),
		logger.StringField("symbol", trade.Symbol),
	)
	return trade, nil
}

func (s *tradeService) Update(ctx context.Context, userID uint, id string, input dto.TradeInput) (*model.Trade, error) {
	trade, err := s.tradeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade: %w", err)
	}
	if trade == nil {
		return nil, ErrTradeNotFound
	}

	buyDate := datatypes.Date(input.BuyDate)
	duplicate, err := s.tradeRepo.ExistsDuplicate(ctx, userID, input.Symbol, buyDate, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate trade: %w", err)
	}
	if duplicate {
		return nil, ErrDuplicateTrade
	}

	// Merge-then-replace: start from the stored row and overwrite every
	// submitted field, including sell data being cleared.
	applyInput(trade, input)

	if err := s.tradeRepo.Save(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}

	s.portfolio.ApplyTradeUpdated(userID, trade.ToJournal())

	s.log.InfoContext(ctx, "Trade updated", logger.StringField("trade_id", trade.ID))
	return trade, nil
}

// Delete removes the trade. Deleting an unknown id is a no-op, not an error.
func (s *tradeService) Delete(ctx context.Context, userID uint, id string) error {
	if err := s.tradeRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	s.portfolio.ApplyTradeRemoved(userID, id)

	s.log.InfoContext(ctx, "Trade deleted", logger.StringField("trade_id", id))
	return nil
}

func applyInput(trade *model.Trade, input dto.TradeInput) {
	trade.Symbol = input.Symbol
	trade.StockName = input.StockName
	trade.BuyDate = datatypes.Date(input.BuyDate)
	trade.Quantity = input.Quantity
	trade.BuyPrice = input.BuyPrice
	trade.Notes = input.Notes

	trade.SellDate = nil
	trade.SellPrice = nil
	if input.SellDate != nil {
		sellDate := datatypes.Date(*input.SellDate)
		trade.SellDate = &sellDate
	}
	if input.SellPrice != nil {
		sellPrice := *input.SellPrice
		trade.SellPrice = &sellPrice
	}
}
