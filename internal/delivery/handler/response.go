package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"taskboard/internal/application/common"
	"taskboard/internal/domain/apperrors"
)

// response is the JSON envelope shared by every API route.
type response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Token   string               `json:"token,omitempty"`
	User    *common.UserResult   `json:"user,omitempty"`
	Users   []*common.UserResult `json:"users,omitempty"`
	Task    *common.TaskResult   `json:"task,omitempty"`
	Tasks   []*common.TaskResult `json:"tasks,omitempty"`
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, response{Success: false, Message: message})
}

// mapError translates domain errors to HTTP responses. Anything outside
// the known taxonomy becomes a generic 500; the detail goes to the server
// log only.
func mapError(c echo.Context, err error, internalMessage string) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return fail(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, apperrors.ErrEmailExists):
		return fail(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, apperrors.ErrTaskNotFound):
		return fail(c, http.StatusNotFound, "Task not found")
	default:
		log.Printf("%s: %v", internalMessage, err)
		return fail(c, http.StatusInternalServerError, internalMessage)
	}
}
