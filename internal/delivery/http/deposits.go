package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

func (h *HttpAPIHandler) SetupDeposits(base *echo.Group) {
	v1 := base.Group("/v1/deposits", h.RequireSession)
	{
		v1.GET("", h.ListDeposits)
		v1.POST("", h.CreateDeposit)
	}
}

func (h *HttpAPIHandler) ListDeposits(c echo.Context) error {
	session := currentSession(c)

	deposits, err := h.service.DepositService.List(c.Request().Context(), session.UserID)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to list deposits", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to list deposits", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Deposits", deposits))
}

func (h *HttpAPIHandler) CreateDeposit(c echo.Context) error {
	session := currentSession(c)

	var req dto.DepositRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	depositedAt := time.Now()
	if req.DepositedAt != "" {
		parsed, err := utils.ParseDate(req.DepositedAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
		}
		depositedAt = parsed
	}

	deposit, err := h.service.DepositService.Create(c.Request().Context(), session.UserID, req.Amount, depositedAt)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to create deposit", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to create deposit", nil))
	}

	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Deposit created", deposit))
}
