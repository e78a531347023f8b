package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/pkg/logger"
)

func (h *HttpAPIHandler) SetupPortfolio(base *echo.Group) {
	v1 := base.Group("/v1", h.RequireSession)
	{
		v1.GET("/positions/open", h.OpenPositions)
		v1.GET("/positions/closed", h.ClosedPositions)
		v1.GET("/history", h.History)
		v1.GET("/dashboard/summary", h.DashboardSummary)
		v1.GET("/dashboard/activity", h.DashboardActivity)
	}
}

func (h *HttpAPIHandler) OpenPositions(c echo.Context) error {
	session := currentSession(c)

	positions, err := h.service.PortfolioService.OpenPositions(c.Request().Context(), session.UserID, c.QueryParam("q"))
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to compute open positions", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to compute open positions", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Open positions", dto.NewOpenPositionsResponse(positions)))
}

func (h *HttpAPIHandler) ClosedPositions(c echo.Context) error {
	session := currentSession(c)

	stats, trades, err := h.service.PortfolioService.ClosedPositions(c.Request().Context(), session.UserID)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to compute closed positions", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to compute closed positions", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Closed positions", dto.ClosedPositionsResponse{
		Stats:  stats,
		Trades: trades,
	}))
}

func (h *HttpAPIHandler) History(c echo.Context) error {
	session := currentSession(c)

	groups, err := h.service.PortfolioService.History(c.Request().Context(), session.UserID, c.QueryParam("q"))
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to group trade history", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to group trade history", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("History", dto.HistoryResponse{Groups: groups}))
}

func (h *HttpAPIHandler) DashboardSummary(c echo.Context) error {
	session := currentSession(c)

	summary, err := h.service.PortfolioService.Summary(c.Request().Context(), session.UserID)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to compute summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to compute summary", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Summary", summary))
}

func (h *HttpAPIHandler) DashboardActivity(c echo.Context) error {
	session := currentSession(c)

	activity, err := h.service.PortfolioService.Activity(c.Request().Context(), session.UserID)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to compute activity", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to compute activity", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Activity", activity))
}
