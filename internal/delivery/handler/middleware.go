package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/infrastructure"
)

const (
	// context keys set by JWTAuth for downstream handlers
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// JWTAuth guards protected routes. Every failure mode — missing header,
// malformed scheme, bad signature, expired token, deleted user — produces
// the same generic 401 so the response never hints at which check failed.
func JWTAuth(jwtService *infrastructure.JWTService, authService interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return fail(c, http.StatusUnauthorized, "Unauthorized")
			}

			userID, err := jwtService.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return fail(c, http.StatusUnauthorized, "Unauthorized")
			}

			profile, err := authService.GetProfile(c.Request().Context(), userID)
			if err != nil {
				return fail(c, http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(ContextUserKey, profile.Result)
			c.Set(ContextUserIDKey, userID)
			return next(c)
		}
	}
}

// AuthRateLimit throttles credential endpoints per client IP with the
// sliding-window limiter.
func AuthRateLimit(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return fail(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
