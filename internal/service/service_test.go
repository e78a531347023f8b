package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"trading-journal/config"
	"trading-journal/internal/model"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			SessionTTL: time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		Cache: config.Cache{
			DefaultExpiration: time.Minute,
			LedgerExpiration:  time.Minute,
		},
	}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return log
}

func testCache() cache.Cache {
	return cache.NewCache(time.Minute, time.Minute)
}

type fakeTradeRepo struct {
	trades    []model.Trade
	duplicate bool
	listCalls int
	createErr error
	saveErr   error
}

func (f *fakeTradeRepo) ListByUser(_ context.Context, userID uint, _ ...utils.DBOption) ([]model.Trade, error) {
	f.listCalls++
	var out []model.Trade
	for _, t := range f.trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTradeRepo) GetByID(_ context.Context, userID uint, id string, _ ...utils.DBOption) (*model.Trade, error) {
	for i := range f.trades {
		if f.trades[i].UserID == userID && f.trades[i].ID == id {
			trade := f.trades[i]
			return &trade, nil
		}
	}
	return nil, nil
}

func (f *fakeTradeRepo) Create(_ context.Context, trade *model.Trade, _ ...utils.DBOption) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.trades = append(f.trades, *trade)
	return nil
}

func (f *fakeTradeRepo) Save(_ context.Context, trade *model.Trade, _ ...utils.DBOption) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range f.trades {
		if f.trades[i].ID == trade.ID {
			f.trades[i] = *trade
			return nil
		}
	}
	f.trades = append(f.trades, *trade)
	return nil
}

func (f *fakeTradeRepo) Delete(_ context.Context, userID uint, id string, _ ...utils.DBOption) error {
	for i := range f.trades {
		if f.trades[i].UserID == userID && f.trades[i].ID == id {
			f.trades = append(f.trades[:i], f.trades[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTradeRepo) ExistsDuplicate(_ context.Context, _ uint, _ string, _ datatypes.Date, _ string, _ ...utils.DBOption) (bool, error) {
	return f.duplicate, nil
}

type fakeDepositRepo struct {
	deposits  []model.Deposit
	createErr error
}

func (f *fakeDepositRepo) ListByUser(_ context.Context, userID uint, _ ...utils.DBOption) ([]model.Deposit, error) {
	var out []model.Deposit
	for _, d := range f.deposits {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDepositRepo) Create(_ context.Context, deposit *model.Deposit, _ ...utils.DBOption) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.deposits = append(f.deposits, *deposit)
	return nil
}

func (f *fakeDepositRepo) SumByUser(_ context.Context, userID uint, _ ...utils.DBOption) (float64, error) {
	var total float64
	for _, d := range f.deposits {
		if d.UserID == userID {
			total += d.Amount
		}
	}
	return total, nil
}

type fakeUserRepo struct {
	users  []model.User
	nextID uint
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string, _ ...utils.DBOption) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint, _ ...utils.DBOption) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User, _ ...utils.DBOption) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Run(fn func(opts ...utils.DBOption) error) error {
	return fn()
}

type fakeSessionRepo struct {
	sessions []model.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *model.Session, _ ...utils.DBOption) error {
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string, _ ...utils.DBOption) (*model.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].Token == token {
			session := f.sessions[i]
			return &session, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string, _ ...utils.DBOption) error {
	for i := range f.sessions {
		if f.sessions[i].Token == token {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time, _ ...utils.DBOption) (int64, error) {
	var kept []model.Session
	var removed int64
	for _, s := range f.sessions {
		if s.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.sessions = kept
	return removed, nil
}
