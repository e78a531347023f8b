package model

import (
	"time"

	"gorm.io/datatypes"

	"trading-journal/internal/journal"
)

// Trade is one buy, optionally later sold. Buy and sell dates are calendar
// dates without a time component.
type Trade struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Symbol    string          `gorm:"not null" json:"symbol"`
	StockName string          `json:"stock_name"`
	BuyDate   datatypes.Date  `gorm:"not null" json:"buy_date"`
	Quantity  float64         `gorm:"not null" json:"quantity"`
	BuyPrice  float64         `gorm:"not null" json:"buy_price"`
	SellDate  *datatypes.Date `json:"sell_date"`
	SellPrice *float64        `json:"sell_price"`
	Notes     string          `json:"notes"`
	User      User            `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// ToJournal converts the persisted row into the aggregation core's type.
func (t Trade) ToJournal() journal.Trade {
	jt := journal.Trade{
		ID:        t.ID,
		Symbol:    t.Symbol,
		StockName: t.StockName,
		BuyDate:   time.Time(t.BuyDate),
		Quantity:  t.Quantity,
		BuyPrice:  t.BuyPrice,
		Notes:     t.Notes,
	}
	if t.SellDate != nil {
		sellDate := time.Time(*t.SellDate)
		jt.SellDate = &sellDate
	}
	if t.SellPrice != nil {
		sellPrice := *t.SellPrice
		jt.SellPrice = &sellPrice
	}
	return jt
}

// TradesToJournal converts a list of rows, preserving order.
func TradesToJournal(trades []Trade) []journal.Trade {
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, t.ToJournal())
	}
	return out
}
