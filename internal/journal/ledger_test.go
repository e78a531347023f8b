package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerLoadReplacesState(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{openTrade("1", "AAPL", 10, 100)}, 500)

	assert.Len(t, l.Trades(), 1)
	assert.Equal(t, 500.0, l.TotalDeposits())

	l.Load([]Trade{openTrade("2", "MSFT", 5, 300)}, 1000)

	trades := l.Trades()
	assert.Len(t, trades, 1)
	assert.Equal(t, "2", trades[0].ID)
	assert.Equal(t, 1000.0, l.TotalDeposits())
}

func TestLedgerAddTradePrepends(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{openTrade("1", "AAPL", 10, 100)}, 0)

	l.AddTrade(openTrade("2", "MSFT", 5, 300))

	trades := l.Trades()
	assert.Equal(t, "2", trades[0].ID)
	assert.Equal(t, "1", trades[1].ID)
}

func TestLedgerAddTradeExistingIDReplaces(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{openTrade("1", "AAPL", 10, 100)}, 0)

	l.AddTrade(openTrade("1", "AAPL", 12, 105))

	trades := l.Trades()
	assert.Len(t, trades, 1)
	assert.Equal(t, 12.0, trades[0].Quantity)
	assert.Equal(t, 105.0, trades[0].BuyPrice)
}

func TestLedgerUpdateTrade(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{
		openTrade("1", "AAPL", 10, 100),
		openTrade("2", "MSFT", 5, 300),
	}, 0)

	updated := closedTrade("2", "MSFT", 5, 300, 350, date(2024, time.January, 2), date(2024, time.February, 2))
	l.UpdateTrade(updated)

	trades := l.Trades()
	assert.Equal(t, "1", trades[0].ID)
	assert.Equal(t, "2", trades[1].ID)
	assert.True(t, trades[1].Closed())
}

func TestLedgerUpdateUnknownIDIsNoop(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{openTrade("1", "AAPL", 10, 100)}, 0)

	l.UpdateTrade(openTrade("missing", "NVDA", 1, 400))

	trades := l.Trades()
	assert.Len(t, trades, 1)
	assert.Equal(t, "1", trades[0].ID)
}

func TestLedgerRemoveTrade(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{
		openTrade("1", "AAPL", 10, 100),
		openTrade("2", "MSFT", 5, 300),
	}, 0)

	l.RemoveTrade("1")

	trades := l.Trades()
	assert.Len(t, trades, 1)
	assert.Equal(t, "2", trades[0].ID)
}

func TestLedgerRemoveUnknownIDIsNoop(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{openTrade("1", "AAPL", 10, 100)}, 0)

	l.RemoveTrade("missing")

	assert.Len(t, l.Trades(), 1)
}

func TestLedgerAddDeposit(t *testing.T) {
	l := NewLedger()
	l.Load(nil, 100)

	l.AddDeposit(250)
	l.AddDeposit(50)

	assert.Equal(t, 400.0, l.TotalDeposits())
}

func TestLedgerTradesReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.Load([]Trade{openTrade("1", "AAPL", 10, 100)}, 0)

	trades := l.Trades()
	trades[0].Symbol = "MUTATED"

	assert.Equal(t, "AAPL", l.Trades()[0].Symbol)
}
