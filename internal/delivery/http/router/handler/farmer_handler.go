// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FarmerHandler holds dependencies for account-related handlers.
type FarmerHandler struct {
	uc     usecase.FarmerUsecase
	logger *slog.Logger
}

// NewFarmerHandler is the constructor for FarmerHandler, injected by Fx.
func NewFarmerHandler(uc usecase.FarmerUsecase, logger *slog.Logger) *FarmerHandler {
	return &FarmerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *FarmerHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The output carries no password digest; nothing sensitive crosses here.
	return response.Success(c, http.StatusOK, output, "User created successfully")
}

// Login handles the login request and returns a session token.
func (h *FarmerHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ChangePassword handles the credential update request.
func (h *FarmerHandler) ChangePassword(c echo.Context) error {
	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password update input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.ChangePassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"}, "Password updated successfully")
}

// ListFarmers returns every registered account, password digests excluded.
func (h *FarmerHandler) ListFarmers(c echo.Context) error {
	outputs, err := h.uc.ListFarmers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Me returns the profile of the authenticated account.
func (h *FarmerHandler) Me(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid session claim")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
