// internal/models/chat.go
package models

import "time"

// Conversation is an entry of the chat sidebar.
type Conversation struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // counterpart
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"` // display label
	Unread      int    `json:"unread"`
	Online      bool   `json:"online"`
	Project     string `json:"project"`
}

// CounterpartID is the sender id of the other party in a conversation. It is
// namespaced so it never equals a user id.
func CounterpartID(conversationID string) string {
	return "contact:" + conversationID
}

// ChatMessage is immutable once appended to a log. IsMe is fixed when the
// message is created and never re-evaluated.
type ChatMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	IsMe           bool      `json:"isMe"`
}
