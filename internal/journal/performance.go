package journal

import (
	"encoding/json"
	"strconv"
)

// ProfitFactor is the ratio of total gains to total losses across closed
// trades. When there are no losing trades the factor is infinite, which is a
// legitimate state rather than a division error, so it gets an explicit flag
// instead of leaking +Inf.
type ProfitFactor struct {
	Ratio    float64
	Infinite bool
}

func (p ProfitFactor) String() string {
	if p.Infinite {
		return "∞"
	}
	return strconv.FormatFloat(p.Ratio, 'f', 2, 64)
}

func (p ProfitFactor) MarshalJSON() ([]byte, error) {
	if p.Infinite {
		return json.Marshal("∞")
	}
	return json.Marshal(p.Ratio)
}

// PerformanceSummary holds the dashboard metrics derived from closed trades.
// Every field is defined for an empty ledger; callers never see NaN.
type PerformanceSummary struct {
	TotalDeposits  float64      `json:"total_deposits"`
	RealizedPnL    float64      `json:"realized_pnl"`
	HitRate        float64      `json:"hit_rate"`
	ProfitFactor   ProfitFactor `json:"profit_factor"`
	AvgHoldingDays float64      `json:"avg_holding_days"`
}

// Summary computes realized P&L, hit rate, profit factor and average holding
// duration over the closed subset of trades.
func Summary(trades []Trade, totalDeposits float64) PerformanceSummary {
	s := PerformanceSummary{TotalDeposits: totalDeposits}

	var closed, wins int
	var gains, losses, holdingDays float64

	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		closed++

		pnl := (*t.SellPrice - t.BuyPrice) * t.Quantity
		s.RealizedPnL += pnl

		switch {
		case *t.SellPrice > t.BuyPrice:
			wins++
			gains += pnl
		case *t.SellPrice < t.BuyPrice:
			losses += -pnl
		}

		holdingDays += daysBetween(t.BuyDate, *t.SellDate)
	}

	if closed > 0 {
		s.HitRate = float64(wins) / float64(closed) * 100
		s.AvgHoldingDays = holdingDays / float64(closed)
	}

	if losses == 0 {
		s.ProfitFactor = ProfitFactor{Infinite: true}
	} else {
		s.ProfitFactor = ProfitFactor{Ratio: gains / losses}
	}

	return s
}
