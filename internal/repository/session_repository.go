package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session, opts ...utils.DBOption) error
	GetByToken(ctx context.Context, token string, opts ...utils.DBOption) (*model.Session, error)
	Delete(ctx context.Context, token string, opts ...utils.DBOption) error
	DeleteExpired(ctx context.Context, now time.Time, opts ...utils.DBOption) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(session).Error
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string, opts ...utils.DBOption) (*model.Session, error) {
	var session model.Session
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Preload("User").Where("token = ?", token).First(&session)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Where("token = ?", token).Delete(&model.Session{}).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time, opts ...utils.DBOption) (int64, error) {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("expires_at < ?", now).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
