package journal

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func pricePtr(p float64) *float64 {
	return &p
}

func openTrade(id, symbol string, qty, buyPrice float64) Trade {
	return Trade{
		ID:       id,
		Symbol:   symbol,
		BuyDate:  date(2024, time.January, 2),
		Quantity: qty,
		BuyPrice: buyPrice,
	}
}

func closedTrade(id, symbol string, qty, buyPrice, sellPrice float64, buy, sell time.Time) Trade {
	return Trade{
		ID:        id,
		Symbol:    symbol,
		BuyDate:   buy,
		Quantity:  qty,
		BuyPrice:  buyPrice,
		SellDate:  &sell,
		SellPrice: &sellPrice,
	}
}
