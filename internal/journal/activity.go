package journal

import "sort"

// ClosedTrade is a closed trade annotated with its realized result.
type ClosedTrade struct {
	Trade
	PnL      float64 `json:"pnl"`
	DaysHeld float64 `json:"days_held"`
}

// ClosedTrades returns the closed subset of trades with per-trade P&L and
// holding duration, in the order they appear in the input.
func ClosedTrades(trades []Trade) []ClosedTrade {
	closed := make([]ClosedTrade, 0)
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		closed = append(closed, ClosedTrade{
			Trade:    t,
			PnL:      (*t.SellPrice - t.BuyPrice) * t.Quantity,
			DaysHeld: daysBetween(t.BuyDate, *t.SellDate),
		})
	}
	return closed
}

// ClosedStats totals the capital story of closed trades.
type ClosedStats struct {
	Invested      float64 `json:"invested"`
	RealizedValue float64 `json:"realized_value"`
	PnL           float64 `json:"pnl"`
}

func ComputeClosedStats(trades []Trade) ClosedStats {
	var stats ClosedStats
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		stats.Invested += t.Invested()
		stats.RealizedValue += *t.SellPrice * t.Quantity
	}
	stats.PnL = stats.RealizedValue - stats.Invested
	return stats
}

// MonthlyActivity counts trades opened in one calendar month, split into
// still-open and closed.
type MonthlyActivity struct {
	Month  string `json:"month"`
	Open   int    `json:"open"`
	Closed int    `json:"closed"`
}

const monthLayout = "2006-01"

// MonthlyTradeActivity buckets trades by buy month and returns the buckets in
// chronological order. A trade counts as closed here as soon as a sell price
// is recorded, matching the activity chart rather than the strict closed
// definition.
func MonthlyTradeActivity(trades []Trade) []MonthlyActivity {
	buckets := make(map[string]*MonthlyActivity)

	for _, t := range trades {
		key := t.BuyDate.Format(monthLayout)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthlyActivity{Month: key}
			buckets[key] = bucket
		}
		if t.SellPrice == nil {
			bucket.Open++
		} else {
			bucket.Closed++
		}
	}

	activity := make([]MonthlyActivity, 0, len(buckets))
	for _, bucket := range buckets {
		activity = append(activity, *bucket)
	}
	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Month < activity[j].Month
	})
	return activity
}
