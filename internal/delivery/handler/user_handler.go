package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"taskboard/internal/application/interfaces"
)

type UserHandler struct {
	userService interfaces.UserService
}

func NewUserHandler(userService interfaces.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user's public fields for the assignee picker.
func (h *UserHandler) List(c echo.Context) error {
	result, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return mapError(c, err, "Failed to list users")
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Users:   result.Result,
	})
}
