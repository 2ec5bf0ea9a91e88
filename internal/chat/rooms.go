package chat

import (
	"sync"

	"github.com/afrilink/platform_be/internal/models"
)

// Rooms keeps one Room per session id.
type Rooms struct {
	cfg           Config
	conversations []models.Conversation
	history       []models.ChatMessage

	mu    sync.Mutex
	rooms map[string]*Room
}

func NewRooms(conversations []models.Conversation, history []models.ChatMessage, cfg Config) *Rooms {
	return &Rooms{
		cfg:           cfg,
		conversations: conversations,
		history:       history,
		rooms:         make(map[string]*Room),
	}
}

// Open returns the session's room, creating it for me on first use. An
// existing room picks up me, so profile edits show on the next message.
func (rs *Rooms) Open(sessionID string, me models.User) *Room {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if r, ok := rs.rooms[sessionID]; ok {
		r.SetMe(me)
		return r
	}
	r := NewRoom(sessionID, me, rs.conversations, rs.history, rs.cfg)
	rs.rooms[sessionID] = r
	return r
}

func (rs *Rooms) Get(sessionID string) (*Room, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r, ok := rs.rooms[sessionID]
	return r, ok
}

// Close tears down the session's room; pending replies are discarded.
func (rs *Rooms) Close(sessionID string) {
	rs.mu.Lock()
	r, ok := rs.rooms[sessionID]
	delete(rs.rooms, sessionID)
	rs.mu.Unlock()

	if ok {
		r.Close()
	}
}

func (rs *Rooms) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.rooms)
}
