package dto

import (
	"time"

	"trading-journal/pkg/utils"
)

// TradeInput carries the validated, parsed fields of a trade create or
// update. Sell date and sell price are jointly optional; either alone leaves
// the trade open.
type TradeInput struct {
	Symbol    string
	StockName string
	BuyDate   time.Time
	Quantity  float64
	BuyPrice  float64
	SellDate  *time.Time
	SellPrice *float64
	Notes     string
}

// TradeRequest is the wire form. Symbol is an uppercase ticker of at most six
// letters; dates travel as calendar strings.
type TradeRequest struct {
	Symbol    string   `json:"symbol" validate:"required,max=6,alpha,uppercase"`
	StockName string   `json:"stock_name" validate:"omitempty,max=50"`
	BuyDate   string   `json:"buy_date" validate:"required,datetime=2006-01-02"`
	Quantity  float64  `json:"quantity" validate:"required,gt=0"`
	BuyPrice  float64  `json:"buy_price" validate:"required,gt=0"`
	SellDate  *string  `json:"sell_date" validate:"omitempty,datetime=2006-01-02"`
	SellPrice *float64 `json:"sell_price" validate:"omitempty,gt=0"`
	Notes     string   `json:"notes" validate:"omitempty,max=300"`
}

// ToInput parses the request's date strings. Validation has already checked
// the layout, so errors here only guard against skipped validation.
func (r TradeRequest) ToInput() (TradeInput, error) {
	buyDate, err := utils.ParseDate(r.BuyDate)
	if err != nil {
		return TradeInput{}, err
	}

	input := TradeInput{
		Symbol:    r.Symbol,
		StockName: r.StockName,
		BuyDate:   buyDate,
		Quantity:  r.Quantity,
		BuyPrice:  r.BuyPrice,
		SellPrice: r.SellPrice,
		Notes:     r.Notes,
	}

	if r.SellDate != nil && *r.SellDate != "" {
		sellDate, err := utils.ParseDate(*r.SellDate)
		if err != nil {
			return TradeInput{}, err
		}
		input.SellDate = &sellDate
	}

	return input, nil
}
