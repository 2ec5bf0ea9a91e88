package chat

import (
	"sync"

	"github.com/afrilink/platform_be/internal/models"
)

// Log is an append-only message store partitioned by conversation id.
type Log struct {
	mu     sync.RWMutex
	byConv map[string][]models.ChatMessage
	total  int
}

func NewLog() *Log {
	return &Log{byConv: make(map[string][]models.ChatMessage)}
}

func (l *Log) Append(msg models.ChatMessage) {
	l.mu.Lock()
	l.byConv[msg.ConversationID] = append(l.byConv[msg.ConversationID], msg)
	l.total++
	l.mu.Unlock()
}

// Messages returns a copy of one conversation's thread, oldest first.
func (l *Log) Messages(conversationID string) []models.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.ChatMessage{}, l.byConv[conversationID]...)
}

// Len counts messages across all conversations.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total
}
