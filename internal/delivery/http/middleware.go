package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
)

const contextKeySession = "session"

// RequireSession resolves the bearer token, applies the per-user rate limit
// and stores the session on the request context.
func (h *HttpAPIHandler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "Missing session token", nil))
		}

		session, err := h.service.AuthService.Resolve(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "Invalid or expired session", nil))
		}

		if !h.userLimiter.Allow(strconv.FormatUint(uint64(session.UserID), 10)) {
			return c.JSON(http.StatusTooManyRequests, dto.NewBaseResponse(http.StatusTooManyRequests, "Too many requests", nil))
		}

		c.Set(contextKeySession, session)
		return next(c)
	}
}

func currentSession(c echo.Context) *model.Session {
	session, _ := c.Get(contextKeySession).(*model.Session)
	return session
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
