package ws

import (
	"sort"
	"sync"

	"github.com/gorilla/websocket"
)

// rosterMessage is pushed to every open socket whenever the set of online
// users changes, mirroring the dashboard's "who is online" feed.
type rosterMessage struct {
	Event string   `json:"event"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

type session struct {
	conn   *websocket.Conn
	userID string // empty for anonymous connections
}

// Hub tracks live websocket sessions. The mapping is process-local and
// ephemeral: a restart clears it, and nothing is persisted. All mutation
// happens under one mutex, which also serializes writes to the sockets so
// no connection ever sees two concurrent writers.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*session),
	}
}

func (h *Hub) Add(connID, userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sessions[connID] = &session{conn: conn, userID: userID}
	h.broadcastRosterLocked()
}

func (h *Hub) Remove(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[connID]; !ok {
		return
	}
	delete(h.sessions, connID)
	h.broadcastRosterLocked()
}

// Count returns the number of open connections, anonymous ones included.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// OnlineUsers returns the distinct authenticated user ids currently
// connected, sorted for stable output.
func (h *Hub) OnlineUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.onlineUsersLocked()
}

func (h *Hub) onlineUsersLocked() []string {
	seen := make(map[string]struct{}, len(h.sessions))
	users := make([]string, 0, len(h.sessions))
	for _, s := range h.sessions {
		if s.userID == "" {
			continue
		}
		if _, ok := seen[s.userID]; ok {
			continue
		}
		seen[s.userID] = struct{}{}
		users = append(users, s.userID)
	}
	sort.Strings(users)
	return users
}

func (h *Hub) broadcastRosterLocked() {
	msg := rosterMessage{
		Event: "online_users",
		Count: len(h.sessions),
		Users: h.onlineUsersLocked(),
	}
	for _, s := range h.sessions {
		// Best effort; a dead socket is cleaned up by its own read loop
		_ = s.conn.WriteJSON(msg)
	}
}

// Close drops every session and closes the underlying connections. Called
// on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for connID, s := range h.sessions {
		_ = s.conn.Close()
		delete(h.sessions, connID)
	}
}
