package journal

import "sync"

// Ledger holds the in-memory mirror of one user's trades and cumulative
// deposit total for the current session. Callers apply mutations only after
// the corresponding database write has been acknowledged, so the ledger never
// shows state that was not durably persisted.
type Ledger struct {
	mu            sync.RWMutex
	trades        []Trade
	totalDeposits float64
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Load replaces the entire in-memory state.
func (l *Ledger) Load(trades []Trade, totalDeposits float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.trades = make([]Trade, len(trades))
	copy(l.trades, trades)
	l.totalDeposits = totalDeposits
}

// AddTrade prepends a newly created trade, keeping most-recent-first order.
// A ledger loaded concurrently with the create may already hold the row, in
// which case the trade is replaced in place rather than added twice.
func (l *Ledger) AddTrade(t Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.trades {
		if l.trades[i].ID == t.ID {
			l.trades[i] = t
			return
		}
	}
	l.trades = append([]Trade{t}, l.trades...)
}

// UpdateTrade replaces the trade with a matching ID wholesale, keeping its
// position in the list. Unknown IDs are a no-op.
func (l *Ledger) UpdateTrade(t Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.trades {
		if l.trades[i].ID == t.ID {
			l.trades[i] = t
			return
		}
	}
}

// RemoveTrade removes the trade with a matching ID. Unknown IDs are a no-op.
func (l *Ledger) RemoveTrade(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.trades {
		if l.trades[i].ID == id {
			l.trades = append(l.trades[:i], l.trades[i+1:]...)
			return
		}
	}
}

// AddDeposit adds amount to the running deposit total. The full deposit list
// stays in the database; the ledger only tracks the sum.
func (l *Ledger) AddDeposit(amount float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.totalDeposits += amount
}

// Trades returns a copy of the current trade list, most recent first.
func (l *Ledger) Trades() []Trade {
	l.mu.RLock()
	defer l.mu.RUnlock()

	trades := make([]Trade, len(l.trades))
	copy(trades, l.trades)
	return trades
}

func (l *Ledger) TotalDeposits() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.totalDeposits
}
