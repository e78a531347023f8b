package journal

import "time"

// Trade is a single buy, optionally later sold. It mirrors the persisted row
// but carries no storage concerns so the aggregators stay pure.
type Trade struct {
	ID        string     `json:"id"`
	Symbol    string     `json:"symbol"`
	StockName string     `json:"stock_name"`
	BuyDate   time.Time  `json:"buy_date"`
	Quantity  float64    `json:"quantity"`
	BuyPrice  float64    `json:"buy_price"`
	SellDate  *time.Time `json:"sell_date"`
	SellPrice *float64   `json:"sell_price"`
	Notes     string     `json:"notes"`
}

// Closed reports whether both the sell date and the sell price are recorded.
// A trade with only one of the two is still open.
func (t Trade) Closed() bool {
	return t.SellDate != nil && t.SellPrice != nil
}

// Invested is the capital committed to this trade at purchase.
func (t Trade) Invested() float64 {
	return t.Quantity * t.BuyPrice
}

// daysBetween returns the number of days from a to b. Calendar dates carry no
// time component, so the result is whole days for date-only inputs.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}
