package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
)

const defaultRecentTrades = 10

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	v1 := base.Group("/v1/trades", h.RequireSession)
	{
		v1.GET("", h.ListTrades)
		v1.GET("/recent", h.RecentTrades)
		v1.POST("", h.CreateTrade)
		v1.PUT("/:id", h.UpdateTrade)
		v1.DELETE("/:id", h.DeleteTrade)
	}
}

func (h *HttpAPIHandler) ListTrades(c echo.Context) error {
	session := currentSession(c)

	trades, err := h.service.PortfolioService.Trades(c.Request().Context(), session.UserID)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to list trades", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to list trades", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trades", trades))
}

func (h *HttpAPIHandler) RecentTrades(c echo.Context) error {
	session := currentSession(c)

	limit := defaultRecentTrades
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("limit must be a positive integer"))
		}
		limit = parsed
	}

	trades, err := h.service.PortfolioService.RecentTrades(c.Request().Context(), session.UserID, limit)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to list recent trades", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to list recent trades", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Recent trades", trades))
}

func (h *HttpAPIHandler) CreateTrade(c echo.Context) error {
	session := currentSession(c)

	var req dto.TradeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	input, err := req.ToInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Create(c.Request().Context(), session.UserID, input)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateTrade) {
			return c.JSON(http.StatusConflict, dto.NewBaseResponse(http.StatusConflict, err.Error(), nil))
		}
		h.log.ErrorContext(c.Request().Context(), "Failed to create trade", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to create trade", nil))
	}

	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Trade created", trade))
}

func (h *HttpAPIHandler) UpdateTrade(c echo.Context) error {
	session := currentSession(c)

	var req dto.TradeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	input, err := req.ToInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Update(c.Request().Context(), session.UserID, c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTradeNotFound):
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, err.Error(), nil))
		case errors.Is(err, service.ErrDuplicateTrade):
			return c.JSON(http.StatusConflict, dto.NewBaseResponse(http.StatusConflict, err.Error(), nil))
		}
		h.log.ErrorContext(c.Request().Context(), "Failed to update trade", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to update trade", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade updated", trade))
}

func (h *HttpAPIHandler) DeleteTrade(c echo.Context) error {
	session := currentSession(c)

	if err := h.service.TradeService.Delete(c.Request().Context(), session.UserID, c.Param("id")); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to delete trade", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to delete trade", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade deleted", nil))
}
