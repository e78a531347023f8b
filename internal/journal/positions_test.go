package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpenPositions(t *testing.T) {
	tests := []struct {
		name   string
		trades []Trade
		want   []OpenPosition
	}{
		{
			name:   "no trades",
			trades: nil,
			want:   []OpenPosition{},
		},
		{
			name: "single symbol with two open lots",
			trades: []Trade{
				openTrade("1", "AAPL", 10, 100),
				openTrade("2", "AAPL", 5, 140),
			},
			want: []OpenPosition{
				{Symbol: "AAPL", StockName: "—", Quantity: 15, AvgPrice: 1700.0 / 15, Invested: 1700},
			},
		},
		{
			name: "closed trades are excluded",
			trades: []Trade{
				openTrade("1", "AAPL", 10, 100),
				closedTrade("2", "AAPL", 5, 120, 150, date(2024, time.January, 2), date(2024, time.February, 2)),
			},
			want: []OpenPosition{
				{Symbol: "AAPL", StockName: "—", Quantity: 10, AvgPrice: 100, Invested: 1000},
			},
		},
		{
			name: "symbols keep first-seen order",
			trades: []Trade{
				openTrade("1", "MSFT", 1, 300),
				openTrade("2", "AAPL", 2, 100),
				openTrade("3", "MSFT", 1, 310),
			},
			want: []OpenPosition{
				{Symbol: "MSFT", StockName: "—", Quantity: 2, AvgPrice: 305, Invested: 610},
				{Symbol: "AAPL", StockName: "—", Quantity: 2, AvgPrice: 100, Invested: 200},
			},
		},
		{
			name: "first non-empty stock name wins",
			trades: []Trade{
				openTrade("1", "AAPL", 1, 100),
				func() Trade {
					tr := openTrade("2", "AAPL", 1, 100)
					tr.StockName = "Apple Inc."
					return tr
				}(),
			},
			want: []OpenPosition{
				{Symbol: "AAPL", StockName: "Apple Inc.", Quantity: 2, AvgPrice: 100, Invested: 200},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OpenPositions(tt.trades))
		})
	}
}

func TestOpenPositionsPartialSellDataStaysOpen(t *testing.T) {
	// Only a sell date, no sell price: the trade is not a valid closed state.
	tr := openTrade("1", "AAPL", 10, 100)
	tr.SellDate = datePtr(2024, time.March, 1)

	positions := OpenPositions([]Trade{tr})
	assert.Len(t, positions, 1)
	assert.Equal(t, 10.0, positions[0].Quantity)

	// Only a sell price behaves the same.
	tr = openTrade("2", "AAPL", 10, 100)
	tr.SellPrice = pricePtr(150)

	positions = OpenPositions([]Trade{tr})
	assert.Len(t, positions, 1)
}

func TestOpenPositionsZeroQuantityGroup(t *testing.T) {
	trades := []Trade{openTrade("1", "AAPL", 0, 100)}

	positions := OpenPositions(trades)
	assert.Len(t, positions, 1)
	assert.Equal(t, 0.0, positions[0].AvgPrice)
}

func TestOpenPositionsInvestedMatchesOpenTrades(t *testing.T) {
	trades := []Trade{
		openTrade("1", "AAPL", 10, 100),
		openTrade("2", "MSFT", 3, 250),
		closedTrade("3", "NVDA", 2, 400, 500, date(2024, time.January, 2), date(2024, time.March, 2)),
	}

	var wantInvested float64
	for _, tr := range trades {
		if !tr.Closed() {
			wantInvested += tr.Invested()
		}
	}

	var gotInvested float64
	for _, p := range OpenPositions(trades) {
		gotInvested += p.Invested
	}
	assert.Equal(t, wantInvested, gotInvested)
}

func TestOpenPositionsIsPure(t *testing.T) {
	trades := []Trade{
		openTrade("1", "AAPL", 10, 100),
		openTrade("2", "MSFT", 3, 250),
	}

	first := OpenPositions(trades)
	second := OpenPositions(trades)
	assert.Equal(t, first, second)
}
