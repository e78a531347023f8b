package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"trading-journal/config"
	"trading-journal/internal/journal"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
)

const ledgerCacheKey = "ledger:%d"

// PortfolioService owns the per-user ledger mirrors and derives every
// portfolio view from them. Mutation appliers are called by the trade and
// deposit services strictly after the database write succeeded, so the ledger
// never gets ahead of what is persisted.
type PortfolioService interface {
	Trades(ctx context.Context, userID uint) ([]journal.Trade, error)
	RecentTrades(ctx context.Context, userID uint, limit int) ([]journal.Trade, error)
	OpenPositions(ctx context.Context, userID uint, query string) ([]journal.OpenPosition, error)
	ClosedPositions(ctx context.Context, userID uint) (journal.ClosedStats, []journal.ClosedTrade, error)
	Summary(ctx context.Context, userID uint) (journal.PerformanceSummary, error)
	History(ctx context.Context, userID uint, query string) ([]journal.SymbolGroup, error)
	Activity(ctx context.Context, userID uint) ([]journal.MonthlyActivity, error)

	ApplyTradeCreated(userID uint, trade journal.Trade)
	ApplyTradeUpdated(userID uint, trade journal.Trade)
	ApplyTradeRemoved(userID uint, tradeID string)
	ApplyDepositAdded(userID uint, amount float64)
}

type portfolioService struct {
	cfg         *config.Config
	log         *logger.Logger
	tradeRepo   repository.TradeRepository
	depositRepo repository.DepositRepository
	cache       cache.Cache

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewPortfolioService(
	cfg *config.Config,
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	depositRepo repository.DepositRepository,
	inmemoryCache cache.Cache,
) PortfolioService {
	return &portfolioService{
		cfg:         cfg,
		log:         log,
		tradeRepo:   tradeRepo,
		depositRepo: depositRepo,
		cache:       inmemoryCache,
		locks:       make(map[uint]*sync.Mutex),
	}
}

// userLock returns the mutex serializing ledger loads and mutation appliers
// for one user. Without it, an applier racing a cache-miss load could no-op
// on the still-cold cache and leave the freshly cached ledger missing its
// write until expiration.
func (s *portfolioService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// ledger returns the user's in-memory ledger, loading trades and the deposit
// total from the database in parallel on a cache miss.
func (s *portfolioService) ledger(ctx context.Context, userID uint) (*journal.Ledger, error) {
	key := fmt.Sprintf(ledgerCacheKey, userID)
	if ledger, ok := cache.GetTyped[*journal.Ledger](s.cache, key); ok {
		return ledger, nil
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	// Another request may have finished loading while we waited.
	if ledger, ok := cache.GetTyped[*journal.Ledger](s.cache, key); ok {
		return ledger, nil
	}

	var (
		trades        []model.Trade
		totalDeposits float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trades, err = s.tradeRepo.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalDeposits, err = s.depositRepo.SumByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load ledger for user %d: %w", userID, err)
	}

	ledger := journal.NewLedger()
	ledger.Load(model.TradesToJournal(trades), totalDeposits)
	s.cache.Set(key, ledger, s.cfg.Cache.LedgerExpiration)

	s.log.DebugContext(ctx, "Ledger loaded",
		logger.IntField("user_id", int(userID)),
		logger.IntField("trades", len(trades)),
	)
	return ledger, nil
}

func (s *portfolioService) Trades(ctx context.Context, userID uint) ([]journal.Trade, error) {
	ledger, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.Trades(), nil
}

func (s *portfolioService) RecentTrades(ctx context.Context, userID uint, limit int) ([]journal.Trade, error) {
	trades, err := s.Trades(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(trades) > limit {
		trades = trades[:limit]
	}
	return trades, nil
}

func (s *portfolioService) OpenPositions(ctx context.Context, userID uint, query string) ([]journal.OpenPosition, error) {
	ledger, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}

	positions := journal.OpenPositions(ledger.Trades())
	if query == "" {
		return positions, nil
	}

	// The filter matches aggregated positions rather than raw trades so a
	// position stays whole when only some of its lots carry the name.
	q := strings.ToLower(query)
	filtered := make([]journal.OpenPosition, 0, len(positions))
	for _, p := range positions {
		if strings.Contains(strings.ToLower(p.Symbol), q) ||
			strings.Contains(strings.ToLower(p.StockName), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *portfolioService) ClosedPositions(ctx context.Context, userID uint) (journal.ClosedStats, []journal.ClosedTrade, error) {
	ledger, err := s.ledger(ctx, userID)
	if err != nil {
		return journal.ClosedStats{}, nil, err
	}

	trades := ledger.Trades()
	return journal.ComputeClosedStats(trades), journal.ClosedTrades(trades), nil
}

func (s *portfolioService) Summary(ctx context.Context, userID uint) (journal.PerformanceSummary, error) {
	ledger, err := s.ledger(ctx, userID)
	if err != nil {
		return journal.PerformanceSummary{}, err
	}
	return journal.Summary(ledger.Trades(), ledger.TotalDeposits()), nil
}

func (s *portfolioService) History(ctx context.Context, userID uint, query string) ([]journal.SymbolGroup, error) {
	ledger, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return journal.GroupBySymbol(journal.FilterTrades(ledger.Trades(), query)), nil
}

func (s *portfolioService) Activity(ctx context.Context, userID uint) ([]journal.MonthlyActivity, error) {
	ledger, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return journal.MonthlyTradeActivity(ledger.Trades()), nil
}

// Mutation appliers touch the ledger only when it is already cached; a cold
// cache reloads from the database on the next read anyway. They take the
// user's load lock, so an applier arriving during an in-flight load waits for
// the loaded ledger to land in the cache and then mutates it.

func (s *portfolioService) ApplyTradeCreated(userID uint, trade journal.Trade) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if ledger, ok := s.cachedLedger(userID); ok {
		ledger.AddTrade(trade)
	}
}

func (s *portfolioService) ApplyTradeUpdated(userID uint, trade journal.Trade) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if ledger, ok := s.cachedLedger(userID); ok {
		ledger.UpdateTrade(trade)
	}
}

func (s *portfolioService) ApplyTradeRemoved(userID uint, tradeID string) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if ledger, ok := s.cachedLedger(userID); ok {
		ledger.RemoveTrade(tradeID)
	}
}

func (s *portfolioService) ApplyDepositAdded(userID uint, amount float64) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if ledger, ok := s.cachedLedger(userID); ok {
		ledger.AddDeposit(amount)
	}
}

func (s *portfolioService) cachedLedger(userID uint) (*journal.Ledger, bool) {
	return cache.GetTyped[*journal.Ledger](s.cache, fmt.Sprintf(ledgerCacheKey, userID))
}
