package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"taskboard/internal/db"
	"taskboard/internal/delivery/ws"
)

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	OnlineUsers int    `json:"onlineUsers"`
}

type HealthHandler struct {
	mongo       *db.Mongo
	hub         *ws.Hub
	environment string
}

func NewHealthHandler(mongo *db.Mongo, hub *ws.Hub, environment string) *HealthHandler {
	return &HealthHandler{
		mongo:       mongo,
		hub:         hub,
		environment: environment,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "OK",
		Environment: h.environment,
		Database:    h.mongo.State(c.Request().Context()),
		OnlineUsers: h.hub.Count(),
	})
}
