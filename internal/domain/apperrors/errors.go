package apperrors

import "errors"

var (
	// validation errors (400)
	ErrValidation = errors.New("validation failed")

	// conflict errors (400)
	ErrEmailExists = errors.New("email already exists")

	// authentication errors (401)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// lookup errors
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)
