package handler

import (
	"net/http"

	"github.com/Eursukkul/buggy-fleet/internal/dto"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/auth/login", h.Login)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	token, expiresAt, err := h.svc.Login(req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
