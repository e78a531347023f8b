package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo    UserRepository
	SessionRepo SessionRepository
	TradeRepo   TradeRepository
	DepositRepo DepositRepository
	UnitOfWork  UnitOfWork
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:    NewUserRepository(db),
		SessionRepo: NewSessionRepository(db),
		TradeRepo:   NewTradeRepository(db),
		DepositRepo: NewDepositRepository(db),
		UnitOfWork:  NewUnitOfWork(db),
	}
}
