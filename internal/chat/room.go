// Package chat implements the messages page: a conversation list, the
// composer, and a counterpart that answers every message after a short delay.
package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afrilink/platform_be/internal/logger"
	"github.com/afrilink/platform_be/internal/models"
)

const (
	DefaultReplyDelay = 2000 * time.Millisecond
	DefaultReplyText  = "Thanks for your message! I'll review this and get back to you shortly."
)

var ErrConversationNotFound = errors.New("conversation not found")

type ComposerState int

const (
	StateIdle ComposerState = iota
	StateComposerHasText
	StateSending
)

func (s ComposerState) String() string {
	switch s {
	case StateComposerHasText:
		return "composer_has_text"
	case StateSending:
		return "sending"
	}
	return "idle"
}

// Listener is told about every message appended to a room, including
// counterpart replies. userID is the room's signed-in user.
type Listener func(sessionID, userID string, msg models.ChatMessage)

type Config struct {
	ReplyDelay time.Duration
	ReplyText  string
	Scheduler  Scheduler
	Listener   Listener
}

func (c Config) withDefaults() Config {
	if c.ReplyDelay <= 0 {
		c.ReplyDelay = DefaultReplyDelay
	}
	if c.ReplyText == "" {
		c.ReplyText = DefaultReplyText
	}
	if c.Scheduler == nil {
		c.Scheduler = RealClock
	}
	return c
}

// Room is the chat view of one session.
type Room struct {
	SessionID string

	cfg           Config
	me            models.User
	conversations []models.Conversation
	log           *Log
	now           func() time.Time

	mu      sync.Mutex
	active  models.Conversation
	draft   string
	state   ComposerState
	seq     uint64
	pending map[uint64]Timer
	closed  bool
}

// NewRoom seeds the log with history. IsMe on seeded messages is computed
// against me once, here.
func NewRoom(sessionID string, me models.User, conversations []models.Conversation, history []models.ChatMessage, cfg Config) *Room {
	r := &Room{
		SessionID:     sessionID,
		cfg:           cfg.withDefaults(),
		me:            me,
		conversations: append([]models.Conversation(nil), conversations...),
		log:           NewLog(),
		now:           time.Now,
		pending:       make(map[uint64]Timer),
	}
	if len(r.conversations) > 0 {
		r.active = r.conversations[0]
	}
	for _, m := range history {
		m.IsMe = m.SenderID == me.ID
		r.log.Append(m)
	}
	return r
}

func (r *Room) Conversations() []models.Conversation {
	return append([]models.Conversation(nil), r.conversations...)
}

func (r *Room) Active() models.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Activate switches the active conversation. Replies already scheduled keep
// the conversation they were scheduled for.
func (r *Room) Activate(id string) (models.Conversation, error) {
	for _, c := range r.conversations {
		if c.ID == id {
			r.mu.Lock()
			r.active = c
			r.mu.Unlock()
			return c, nil
		}
	}
	return models.Conversation{}, ErrConversationNotFound
}

func (r *Room) Messages(conversationID string) ([]models.ChatMessage, error) {
	if !r.hasConversation(conversationID) {
		return nil, ErrConversationNotFound
	}
	return r.log.Messages(conversationID), nil
}

// Len counts every message in the room.
func (r *Room) Len() int {
	return r.log.Len()
}

func (r *Room) State() ComposerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Room) Draft() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// SetMe replaces the room's user, e.g. after a profile edit. The id must not
// change; IsMe of existing messages is not recomputed.
func (r *Room) SetMe(me models.User) {
	r.mu.Lock()
	r.me = me
	r.mu.Unlock()
}

// SetDraft updates the composer text.
func (r *Room) SetDraft(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.draft = text
	if text == "" {
		r.state = StateIdle
	} else {
		r.state = StateComposerHasText
	}
}

// SendDraft sends whatever is in the composer.
func (r *Room) SendDraft() (models.ChatMessage, bool) {
	return r.Send(r.Draft())
}

// Send appends text from the session user to the active conversation and
// schedules one counterpart reply. Blank text is ignored and reported as
// false.
func (r *Room) Send(text string) (models.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, false
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return models.ChatMessage{}, false
	}
	r.state = StateSending

	conv := r.active
	msg := models.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       r.me.ID,
		SenderName:     r.me.Name,
		Message:        text,
		Timestamp:      r.now().UTC(),
	}
	msg.IsMe = msg.SenderID == r.me.ID
	r.log.Append(msg)

	r.draft = ""
	r.seq++
	id := r.seq
	r.pending[id] = r.cfg.Scheduler.AfterFunc(r.cfg.ReplyDelay, func() {
		r.reply(id, conv)
	})
	r.state = StateIdle
	userID := r.me.ID
	r.mu.Unlock()

	r.notify(userID, msg)
	return msg, true
}

// reply runs on the scheduler. conv is the conversation captured at send
// time, not the one active now.
func (r *Room) reply(id uint64, conv models.Conversation) {
	r.mu.Lock()
	if _, ok := r.pending[id]; !ok || r.closed {
		r.mu.Unlock()
		return
	}
	delete(r.pending, id)

	msg := models.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       models.CounterpartID(conv.ID),
		SenderName:     conv.Name,
		Message:        r.cfg.ReplyText,
		Timestamp:      r.now().UTC(),
		IsMe:           false,
	}
	r.log.Append(msg)
	userID := r.me.ID
	r.mu.Unlock()

	r.notify(userID, msg)
}

// Pending is the number of replies not yet delivered.
func (r *Room) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Close stops every pending reply. Replies that race with Close are dropped.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	for id, t := range r.pending {
		t.Stop()
		delete(r.pending, id)
	}
	logger.Debug().Str("session_id", r.SessionID).Msg("chat room closed")
}

func (r *Room) notify(userID string, msg models.ChatMessage) {
	if r.cfg.Listener != nil {
		r.cfg.Listener(r.SessionID, userID, msg)
	}
}

func (r *Room) hasConversation(id string) bool {
	for _, c := range r.conversations {
		if c.ID == id {
			return true
		}
	}
	return false
}
