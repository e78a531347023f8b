package journal

import "strings"

// SymbolGroup collects all trades of one symbol, open and closed, for the
// history view.
type SymbolGroup struct {
	Symbol        string  `json:"symbol"`
	Trades        []Trade `json:"trades"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalInvested float64 `json:"total_invested"`
	AvgPrice      float64 `json:"avg_price"`
}

// GroupBySymbol groups trades by symbol, preserving the first-seen order of
// symbols and the original relative order of trades within each group.
func GroupBySymbol(trades []Trade) []SymbolGroup {
	index := make(map[string]int)
	groups := make([]SymbolGroup, 0)

	for _, t := range trades {
		i, ok := index[t.Symbol]
		if !ok {
			i = len(groups)
			index[t.Symbol] = i
			groups = append(groups, SymbolGroup{Symbol: t.Symbol})
		}
		g := &groups[i]
		g.Trades = append(g.Trades, t)
		g.TotalQuantity += t.Quantity
		g.TotalInvested += t.Invested()
	}

	for i := range groups {
		if groups[i].TotalQuantity > 0 {
			groups[i].AvgPrice = groups[i].TotalInvested / groups[i].TotalQuantity
		}
	}

	return groups
}

// FilterTrades returns the trades whose symbol or stock name contains query,
// case-insensitively. An empty query keeps every trade. Callers apply the
// filter before grouping.
func FilterTrades(trades []Trade, query string) []Trade {
	if query == "" {
		return trades
	}
	q := strings.ToLower(query)

	filtered := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if strings.Contains(strings.ToLower(t.Symbol), q) ||
			strings.Contains(strings.ToLower(t.StockName), q) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
