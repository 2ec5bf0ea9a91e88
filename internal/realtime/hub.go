// internal/realtime/hub.go
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/afrilink/platform_be/internal/logger"
)

// Client is one websocket connection. A browser session may hold several.
type Client struct {
	ID        string
	SessionID string
	Conn      *WebSocketConn
	Send      chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// SendToSession pushes data to every client of one session. Full buffers
// are skipped so a slow browser never blocks the sender.
func (h *Hub) SendToSession(sessionID string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error().Err(err).Msg("marshal session payload")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.SessionID == sessionID {
			select {
			case client.Send <- payload:
			default:
			}
		}
	}
}

// Len is the number of registered clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Stop ends Run. It must be called at most once.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			logger.Debug().Str("client_id", client.ID).Str("session_id", client.SessionID).Msg("ws client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				logger.Debug().Str("client_id", client.ID).Msg("ws client unregistered")
			}
			h.mu.Unlock()
		}
	}
}
