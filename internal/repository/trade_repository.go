package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type TradeRepository interface {
	ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Trade, error)
	GetByID(ctx context.Context, userID uint, id string, opts ...utils.DBOption) (*model.Trade, error)
	Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Save(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Delete(ctx context.Context, userID uint, id string, opts ...utils.DBOption) error
	ExistsDuplicate(ctx context.Context, userID uint, symbol string, buyDate datatypes.Date, excludeID string, opts ...utils.DBOption) (bool, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

// ListByUser returns the user's trades, most recently created first, matching
// the ledger's presentation order.
func (r *tradeRepository) ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Trade, error) {
	var trades []model.Trade
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Where("user_id = ?", userID).Order("created_at DESC").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *tradeRepository) GetByID(ctx context.Context, userID uint, id string, opts ...utils.DBOption) (*model.Trade, error) {
	var trade model.Trade
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("user_id = ? AND id = ?", userID, id).First(&trade)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &trade, nil
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(trade).Error
}

// Save writes every column of the row, including sell fields being cleared
// back to NULL.
func (r *tradeRepository) Save(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Save(trade).Error
}

func (r *tradeRepository) Delete(ctx context.Context, userID uint, id string, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Where("user_id = ? AND id = ?", userID, id).Delete(&model.Trade{}).Error
}

// ExistsDuplicate reports whether the user already has a trade with the same
// symbol and buy date. excludeID skips the row being edited.
func (r *tradeRepository) ExistsDuplicate(ctx context.Context, userID uint, symbol string, buyDate datatypes.Date, excludeID string, opts ...utils.DBOption) (bool, error) {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	var count int64
	query := tx.Model(&model.Trade{}).
		Where("user_id = ? AND symbol = ? AND buy_date = ?", userID, symbol, buyDate)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
