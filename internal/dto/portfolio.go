package dto

import "trading-journal/internal/journal"

type OpenPositionsResponse struct {
	TotalInvested float64                `json:"total_invested"`
	Positions     []journal.OpenPosition `json:"positions"`
}

func NewOpenPositionsResponse(positions []journal.OpenPosition) OpenPositionsResponse {
	var total float64
	for _, p := range positions {
		total += p.Invested
	}
	return OpenPositionsResponse{
		TotalInvested: total,
		Positions:     positions,
	}
}

type ClosedPositionsResponse struct {
	Stats  journal.ClosedStats   `json:"stats"`
	Trades []journal.ClosedTrade `json:"trades"`
}

type HistoryResponse struct {
	Groups []journal.SymbolGroup `json:"groups"`
}
