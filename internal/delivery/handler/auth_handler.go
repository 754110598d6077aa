package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"taskboard/internal/application/command"
	"taskboard/internal/application/common"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/domain/apperrors"
)

type AuthHandler struct {
	authService interfaces.AuthService
}

func NewAuthHandler(authService interfaces.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return fail(c, http.StatusBadRequest, "All fields are required")
	}

	result, err := h.authService.Register(c.Request().Context(), &cmd)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return fail(c, http.StatusBadRequest, "All fields are required")
		}
		return mapError(c, err, "Registration failed")
	}

	return c.JSON(http.StatusCreated, response{
		Success: true,
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}

	result, err := h.authService.Login(c.Request().Context(), &cmd)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return fail(c, http.StatusBadRequest, "Email and password are required")
		}
		return mapError(c, err, "Login failed")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Profile returns the identity resolved by the auth middleware.
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := c.Get(ContextUserKey).(*common.UserResult)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		User:    user,
	})
}

// Logout acknowledges the request and nothing more. Tokens are stateless,
// so the client discards its copy; there is no server-side revocation.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Logged out successfully",
	})
}
