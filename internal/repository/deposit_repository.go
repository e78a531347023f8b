package repository

import (
	"context"

	"gorm.io/gorm"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type DepositRepository interface {
	ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Deposit, error)
	Create(ctx context.Context, deposit *model.Deposit, opts ...utils.DBOption) error
	SumByUser(ctx context.Context, userID uint, opts ...utils.DBOption) (float64, error)
}

type depositRepository struct {
	db *gorm.DB
}

func NewDepositRepository(db *gorm.DB) DepositRepository {
	return &depositRepository{db: db}
}

func (r *depositRepository) ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Deposit, error) {
	var deposits []model.Deposit
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Where("user_id = ?", userID).Order("deposited_at DESC").Find(&deposits).Error; err != nil {
		return nil, err
	}
	return deposits, nil
}

func (r *depositRepository) Create(ctx context.Context, deposit *model.Deposit, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(deposit).Error
}

// SumByUser totals the user's deposits. COALESCE keeps the result a number
// when there are no rows.
func (r *depositRepository) SumByUser(ctx context.Context, userID uint, opts ...utils.DBOption) (float64, error) {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	var total float64
	err := tx.Model(&model.Deposit{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
