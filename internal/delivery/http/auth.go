package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
)

func (h *HttpAPIHandler) SetupAuth(base *echo.Group) {
	v1 := base.Group("/v1/auth")
	{
		v1.POST("/signup", h.SignUp)
		v1.POST("/login", h.SignIn)
		v1.POST("/logout", h.SignOut, h.RequireSession)
		v1.GET("/session", h.Session, h.RequireSession)
	}
}

func (h *HttpAPIHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	user, session, err := h.service.AuthService.SignUp(c.Request().Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, dto.NewBaseResponse(http.StatusConflict, err.Error(), nil))
		}
		h.log.ErrorContext(c.Request().Context(), "Sign-up failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to sign up", nil))
	}

	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Account created", dto.NewSessionResponse(user, session)))
}

func (h *HttpAPIHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	user, session, err := h.service.AuthService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, err.Error(), nil))
		}
		h.log.ErrorContext(c.Request().Context(), "Sign-in failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to sign in", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Signed in", dto.NewSessionResponse(user, session)))
}

func (h *HttpAPIHandler) SignOut(c echo.Context) error {
	session := currentSession(c)

	if err := h.service.AuthService.SignOut(c.Request().Context(), session.Token); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Sign-out failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "Failed to sign out", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Signed out", nil))
}

func (h *HttpAPIHandler) Session(c echo.Context) error {
	session := currentSession(c)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Session", dto.NewSessionResponse(&session.User, session)))
}
