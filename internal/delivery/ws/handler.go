package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"taskboard/internal/infrastructure"
)

// Handler upgrades HTTP requests to websocket connections and feeds the
// presence hub. A valid bearer token binds the connection to a user id;
// without one the connection is still tracked, just anonymously.
type Handler struct {
	hub        *Hub
	jwtService *infrastructure.JWTService
	upgrader   websocket.Upgrader
}

func NewHandler(hub *Hub, jwtService *infrastructure.JWTService, allowedOrigins []string) *Handler {
	return &Handler{
		hub:        hub,
		jwtService: jwtService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
	}
}

func (h *Handler) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return nil
	}

	userID := h.identify(c)
	connID := uuid.NewString()
	h.hub.Add(connID, userID, conn)

	go h.readLoop(connID, conn)
	return nil
}

// identify extracts a user id from the token query parameter (browser
// websocket clients cannot set headers) or the Authorization header. Any
// failure yields an anonymous connection rather than a rejected one.
func (h *Handler) identify(c echo.Context) string {
	token := c.QueryParam("token")
	if token == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if token == "" {
		return ""
	}

	userID, err := h.jwtService.ParseToken(token)
	if err != nil {
		return ""
	}
	return userID
}

func (h *Handler) readLoop(connID string, conn *websocket.Conn) {
	defer func() {
		h.hub.Remove(connID)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading websocket message: %v", err)
			}
			return
		}
		// Inbound messages are ignored; the socket exists for presence
		// and server-pushed roster updates only.
	}
}
