package draft

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans draft snapshots out to the wing-type editor tabs
// watching a draft. One hub serves every draft; connections are
// grouped by draft id.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*websocket.Conn]bool)}
}

func (h *Hub) Add(draftID string, conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[draftID] == nil {
		h.clients[draftID] = make(map[*websocket.Conn]bool)
	}
	h.clients[draftID][conn] = true
	h.mu.Unlock()
}

func (h *Hub) Remove(draftID string, conn *websocket.Conn) {
	h.mu.Lock()
	if conns, ok := h.clients[draftID]; ok {
		if conns[conn] {
			delete(conns, conn)
			conn.Close()
		}
		if len(conns) == 0 {
			delete(h.clients, draftID)
		}
	}
	h.mu.Unlock()
}

// Broadcast pushes a snapshot to every connection on a draft.
// Write failures drop the connection; they never propagate back
// into the update path.
func (h *Hub) Broadcast(draftID string, snap Snapshot) {
	msg, err := json.Marshal(snap)
	if err != nil {
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients[draftID]))
	for conn := range h.clients[draftID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("draft ws write failed, dropping client: %v", err)
			h.Remove(draftID, conn)
		}
	}
}

func (h *Hub) ClientCount(draftID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[draftID])
}
