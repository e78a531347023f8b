package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
)

func tradeInput(symbol string, qty, buyPrice float64) dto.TradeInput {
	return dto.TradeInput{
		Symbol:   symbol,
		BuyDate:  time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Quantity: qty,
		BuyPrice: buyPrice,
	}
}

func newTradeService(t *testing.T, tradeRepo *fakeTradeRepo) (TradeService, PortfolioService) {
	t.Helper()
	portfolio := newPortfolioService(t, tradeRepo, &fakeDepositRepo{})
	return NewTradeService(testLogger(t), tradeRepo, portfolio), portfolio
}

func TestTradeCreate(t *testing.T) {
	tradeRepo := &fakeTradeRepo{}
	svc, _ := newTradeService(t, tradeRepo)

	trade, err := svc.Create(context.Background(), 1, tradeInput("AAPL", 10, 100))
	require.NoError(t, err)

	assert.NotEmpty(t, trade.ID)
	assert.Equal(t, uint(1), trade.UserID)
	assert.Equal(t, "AAPL", trade.Symbol)
	require.Len(t, tradeRepo.trades, 1)
}

func TestTradeCreateDuplicate(t *testing.T) {
	tradeRepo := &fakeTradeRepo{duplicate: true}
	svc, _ := newTradeService(t, tradeRepo)

	_, err := svc.Create(context.Background(), 1, tradeInput("AAPL", 10, 100))
	require.ErrorIs(t, err, ErrDuplicateTrade)
	assert.Empty(t, tradeRepo.trades)
}

func TestTradeCreateFailedWriteLeavesLedgerUntouched(t *testing.T) {
	tradeRepo := &fakeTradeRepo{trades: []model.Trade{
		storedTrade("t1", 1, "AAPL", 10, 100),
	}}
	svc, portfolio := newTradeService(t, tradeRepo)

	ctx := context.Background()
	trades, err := portfolio.Trades(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	tradeRepo.createErr = errors.New("connection reset")
	_, err = svc.Create(ctx, 1, tradeInput("MSFT", 5, 200))
	require.Error(t, err)

	trades, err = portfolio.Trades(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, trades, 1)
}

func TestTradeCreateUpdatesWarmLedger(t *testing.T) {
	tradeRepo := &fakeTradeRepo{}
	svc, portfolio := newTradeService(t, tradeRepo)

	ctx := context.Background()
	trades, err := portfolio.Trades(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, trades)

	_, err = svc.Create(ctx, 1, tradeInput("AAPL", 10, 100))
	require.NoError(t, err)

	trades, err = portfolio.Trades(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "AAPL", trades[0].Symbol)
	assert.Equal(t, 1, tradeRepo.listCalls)
}

func TestTradeUpdateUnknownID(t *testing.T) {
	svc, _ := newTradeService(t, &fakeTradeRepo{})

	_, err := svc.Update(context.Background(), 1, "missing", tradeInput("AAPL", 10, 100))
	require.ErrorIs(t, err, ErrTradeNotFound)
}

func TestTradeUpdateClearsSellFields(t *testing.T) {
	sellDate := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	sellPrice := 150.0

	stored := storedTrade("t1", 1, "AAPL", 10, 100)
	tradeRepo := &fakeTradeRepo{trades: []model.Trade{stored}}
	svc, _ := newTradeService(t, tradeRepo)

	ctx := context.Background()
	input := tradeInput("AAPL", 10, 100)
	input.SellDate = &sellDate
	input.SellPrice = &sellPrice

	trade, err := svc.Update(ctx, 1, "t1", input)
	require.NoError(t, err)
	require.NotNil(t, trade.SellDate)
	require.NotNil(t, trade.SellPrice)

	// Resubmitting without sell data reopens the trade.
	trade, err = svc.Update(ctx, 1, "t1", tradeInput("AAPL", 10, 100))
	require.NoError(t, err)
	assert.Nil(t, trade.SellDate)
	assert.Nil(t, trade.SellPrice)
}

func TestTradeDelete(t *testing.T) {
	tradeRepo := &fakeTradeRepo{trades: []model.Trade{
		storedTrade("t1", 1, "AAPL", 10, 100),
	}}
	svc, portfolio := newTradeService(t, tradeRepo)

	ctx := context.Background()
	trades, err := portfolio.Trades(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	require.NoError(t, svc.Delete(ctx, 1, "t1"))

	trades, err = portfolio.Trades(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, trades)
	assert.Empty(t, tradeRepo.trades)
}

func TestTradeDeleteUnknownIDIsNoop(t *testing.T) {
	tradeRepo := &fakeTradeRepo{trades: []model.Trade{
		storedTrade("t1", 1, "AAPL", 10, 100),
	}}
	svc, _ := newTradeService(t, tradeRepo)

	require.NoError(t, svc.Delete(context.Background(), 1, "missing"))
	assert.Len(t, tradeRepo.trades, 1)
}
