package model

import "time"

// Deposit is a capital contribution event. Deposits only accumulate; they are
// never edited or paired with trades.
type Deposit struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	DepositedAt time.Time `gorm:"not null" json:"deposited_at"`
	User        User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Deposit) TableName() string {
	return "deposits"
}
