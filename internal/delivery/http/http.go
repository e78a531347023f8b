package http

import (
	"context"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"trading-journal/config"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/middleware"
	"trading-journal/pkg/ratelimit"
)

type HttpAPIHandler struct {
	echo        *echo.Echo
	validator   *goValidator.Validate
	service     *service.Service
	cfg         *config.Config
	log         *logger.Logger
	userLimiter *ratelimit.LimiterStore
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, log *logger.Logger, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:        echo,
		validator:   validator,
		service:     service,
		cfg:         cfg,
		log:         log,
		userLimiter: ratelimit.NewLimiterStore(rate.Limit(cfg.Rate.UserPerSecond), cfg.Rate.UserBurst),
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api", middleware.NewRateLimiterMiddleware(h.cfg.Rate.RequestsPerSecond, h.cfg.Rate.Burst))

	h.SetupAuth(base)
	h.SetupTrades(base)
	h.SetupDeposits(base)
	h.SetupPortfolio(base)
}

// bindAndValidate decodes the body into req and runs struct validation.
func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return h.validator.Struct(req)
}
