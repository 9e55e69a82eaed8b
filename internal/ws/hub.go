package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// Conn is the part of a websocket connection the hub needs.
type Conn interface {
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// Hub fans messages out to the connections watching each level.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[Conn]struct{})}
}

func (h *Hub) Add(levelID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[levelID]
	if !ok {
		set = make(map[Conn]struct{})
		h.clients[levelID] = set
	}
	set[conn] = struct{}{}
}

func (h *Hub) Remove(levelID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(levelID, conn)
}

func (h *Hub) removeLocked(levelID string, conn Conn) {
	set, ok := h.clients[levelID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.clients, levelID)
	}
}

// Count returns how many connections are watching a level.
func (h *Hub) Count(levelID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[levelID])
}

// Broadcast writes message to every connection on the level. Connections
// that fail the write are closed and dropped.
func (h *Hub) Broadcast(levelID string, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients[levelID] {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			h.removeLocked(levelID, conn)
		}
	}
}
