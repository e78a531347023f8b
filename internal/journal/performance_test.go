package journal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummaryEmptyLedger(t *testing.T) {
	s := Summary(nil, 500)

	assert.Equal(t, 500.0, s.TotalDeposits)
	assert.Equal(t, 0.0, s.RealizedPnL)
	assert.Equal(t, 0.0, s.HitRate)
	assert.Equal(t, 0.0, s.AvgHoldingDays)
	assert.True(t, s.ProfitFactor.Infinite)
}

func TestSummaryClosedTrades(t *testing.T) {
	trades := []Trade{
		closedTrade("1", "AAPL", 10, 100, 150, date(2024, time.January, 1), date(2024, time.January, 11)),
		closedTrade("2", "MSFT", 5, 200, 180, date(2024, time.February, 1), date(2024, time.February, 6)),
	}

	s := Summary(trades, 10000)

	assert.Equal(t, 10000.0, s.TotalDeposits)
	assert.Equal(t, 400.0, s.RealizedPnL)
	assert.Equal(t, 50.0, s.HitRate)
	assert.Equal(t, 7.5, s.AvgHoldingDays)
	assert.False(t, s.ProfitFactor.Infinite)
	assert.Equal(t, 5.0, s.ProfitFactor.Ratio)
}

func TestSummaryIgnoresOpenTrades(t *testing.T) {
	trades := []Trade{
		openTrade("1", "AAPL", 10, 100),
		closedTrade("2", "MSFT", 5, 200, 220, date(2024, time.February, 1), date(2024, time.February, 11)),
	}

	s := Summary(trades, 0)

	assert.Equal(t, 100.0, s.RealizedPnL)
	assert.Equal(t, 100.0, s.HitRate)
	assert.Equal(t, 10.0, s.AvgHoldingDays)
}

func TestSummaryBreakEvenTradeCountsAgainstHitRate(t *testing.T) {
	trades := []Trade{
		closedTrade("1", "AAPL", 10, 100, 100, date(2024, time.January, 1), date(2024, time.January, 2)),
		closedTrade("2", "MSFT", 10, 100, 110, date(2024, time.January, 1), date(2024, time.January, 2)),
	}

	s := Summary(trades, 0)

	// A break-even trade is neither a gain nor a loss, but it is a closed
	// trade in the denominator.
	assert.Equal(t, 50.0, s.HitRate)
	assert.True(t, s.ProfitFactor.Infinite)
}

func TestSummaryProfitFactorAllLosses(t *testing.T) {
	trades := []Trade{
		closedTrade("1", "AAPL", 10, 100, 90, date(2024, time.January, 1), date(2024, time.January, 2)),
	}

	s := Summary(trades, 0)

	assert.False(t, s.ProfitFactor.Infinite)
	assert.Equal(t, 0.0, s.ProfitFactor.Ratio)
	assert.Equal(t, -100.0, s.RealizedPnL)
}

func TestSummaryPartialSellDataIsOpen(t *testing.T) {
	tr := openTrade("1", "AAPL", 10, 100)
	tr.SellPrice = pricePtr(150)

	s := Summary([]Trade{tr}, 0)

	assert.Equal(t, 0.0, s.RealizedPnL)
	assert.Equal(t, 0.0, s.HitRate)
	assert.True(t, s.ProfitFactor.Infinite)
}

func TestProfitFactorEncoding(t *testing.T) {
	tests := []struct {
		name     string
		factor   ProfitFactor
		wantStr  string
		wantJSON string
	}{
		{
			name:     "infinite sentinel",
			factor:   ProfitFactor{Infinite: true},
			wantStr:  "∞",
			wantJSON: `"∞"`,
		},
		{
			name:     "finite ratio",
			factor:   ProfitFactor{Ratio: 2.5},
			wantStr:  "2.50",
			wantJSON: `2.5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStr, tt.factor.String())

			raw, err := json.Marshal(tt.factor)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantJSON, string(raw))
		})
	}
}
