package journal

// PlaceholderStockName is shown when none of a symbol's open trades carry a
// display name.
const PlaceholderStockName = "—"

// OpenPosition is the aggregated holding in one instrument across its open
// trades. Derived on every read, never persisted.
type OpenPosition struct {
	Symbol    string  `json:"symbol"`
	StockName string  `json:"stock_name"`
	Quantity  float64 `json:"quantity"`
	AvgPrice  float64 `json:"avg_price"`
	Invested  float64 `json:"invested"`
}

// OpenPositions groups the open subset of trades by symbol and computes the
// quantity sum, invested sum and cost-weighted average price per symbol.
// Output order follows the first occurrence of each symbol among the open
// trades.
func OpenPositions(trades []Trade) []OpenPosition {
	index := make(map[string]int)
	positions := make([]OpenPosition, 0)

	for _, t := range trades {
		if t.Closed() {
			continue
		}
		i, ok := index[t.Symbol]
		if !ok {
			i = len(positions)
			index[t.Symbol] = i
			positions = append(positions, OpenPosition{
				Symbol:    t.Symbol,
				StockName: PlaceholderStockName,
			})
		}
		p := &positions[i]
		if p.StockName == PlaceholderStockName && t.StockName != "" {
			p.StockName = t.StockName
		}
		p.Quantity += t.Quantity
		p.Invested += t.Invested()
	}

	for i := range positions {
		// Quantities are positive upstream; the guard keeps a degenerate
		// zero-quantity group from dividing by zero.
		if positions[i].Quantity > 0 {
			positions[i].AvgPrice = positions[i].Invested / positions[i].Quantity
		}
	}

	return positions
}
