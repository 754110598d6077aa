package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"taskboard/internal/config"
	"taskboard/internal/delivery/ws"
)

// global throttle, generous compared to the per-IP auth limiter
const throttleRPS = 100

type RouterDeps struct {
	Auth         *AuthHandler
	Task         *TaskHandler
	User         *UserHandler
	Health       *HealthHandler
	Presence     *ws.Handler
	JWTAuth      echo.MiddlewareFunc
	AuthThrottle echo.MiddlewareFunc
}

func NewRouter(cfg *config.Config, deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(throttleRPS))))

	auth := e.Group("/api/auth")
	auth.POST("/register", deps.Auth.Register, deps.AuthThrottle)
	auth.POST("/login", deps.Auth.Login, deps.AuthThrottle)
	auth.GET("/profile", deps.Auth.Profile, deps.JWTAuth)
	auth.POST("/logout", deps.Auth.Logout, deps.JWTAuth)

	tasks := e.Group("/api/tasks", deps.JWTAuth)
	tasks.POST("", deps.Task.Create)
	tasks.GET("", deps.Task.List)
	tasks.GET("/:id", deps.Task.Get)
	tasks.PUT("/:id", deps.Task.Update)
	tasks.PATCH("/:id", deps.Task.Update)
	tasks.DELETE("/:id", deps.Task.Delete)

	e.GET("/api/users", deps.User.List, deps.JWTAuth)
	e.GET("/api/health", deps.Health.Health)
	e.GET("/ws", deps.Presence.Handle)

	return e
}
