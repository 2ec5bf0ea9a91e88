package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/afrilink/platform_be/internal/apperr"
	"github.com/afrilink/platform_be/internal/chat"
	"github.com/afrilink/platform_be/internal/logger"
	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/realtime"
	"github.com/afrilink/platform_be/internal/session"
)

const publishTimeout = 3 * time.Second

type ChatHandler struct {
	Rooms    *chat.Rooms
	Sessions *session.Registry
	Hub      *realtime.Hub
}

func NewChatHandler(rooms *chat.Rooms, sessions *session.Registry, hub *realtime.Hub) *ChatHandler {
	return &ChatHandler{Rooms: rooms, Sessions: sessions, Hub: hub}
}

// ChatListener pushes every room message to the owning session's sockets
// and publishes a notification to the recipient: the counterpart for the
// user's own messages, the user for counterpart replies. Publish failures
// are logged only.
func ChatListener(hub *realtime.Hub, pub realtime.Publisher) chat.Listener {
	if pub == nil {
		pub = realtime.NopPublisher{}
	}
	return func(sessionID, userID string, msg models.ChatMessage) {
		hub.SendToSession(sessionID, fiber.Map{
			"type":    "new_message",
			"message": msg,
		})

		recipient := userID
		if msg.IsMe {
			recipient = models.CounterpartID(msg.ConversationID)
		}

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		err := pub.Publish(ctx, recipient, fiber.Map{
			"type":            "chat_message",
			"conversation_id": msg.ConversationID,
			"sender_id":       msg.SenderID,
			"text":            msg.Message,
		})
		if err != nil {
			logger.Warn().Err(err).Str("recipient", recipient).Msg("publish chat notification")
		}
	}
}

type SendMessageReq struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text"`
}

func (h *ChatHandler) room(c *fiber.Ctx) (*chat.Room, error) {
	s, u, err := currentSession(c, h.Sessions)
	if err != nil {
		return nil, err
	}
	return h.Rooms.Open(s.ID, *u), nil
}

func (h *ChatHandler) GetConversations(c *fiber.Ctx) error {
	room, err := h.room(c)
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"conversations": room.Conversations(),
		"activeId":      room.Active().ID,
	})
}

func (h *ChatHandler) Activate(c *fiber.Ctx) error {
	room, err := h.room(c)
	if err != nil {
		return err
	}

	conv, err := room.Activate(c.Params("id"))
	if errors.Is(err, chat.ErrConversationNotFound) {
		return apperr.NotFound("Conversation not found")
	}
	return ok(c, conv)
}

func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	room, err := h.room(c)
	if err != nil {
		return err
	}

	msgs, err := room.Messages(c.Params("id"))
	if errors.Is(err, chat.ErrConversationNotFound) {
		return apperr.NotFound("Conversation not found")
	}
	return ok(c, msgs)
}

// SendMessage posts to the active conversation, or to conversationId when
// given (which also makes it active). The counterpart reply arrives later
// over the websocket and in GetMessages.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	room, err := h.room(c)
	if err != nil {
		return err
	}

	var req SendMessageReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.ErrInvalidRequest
	}

	if req.ConversationID != "" && req.ConversationID != room.Active().ID {
		if _, err := room.Activate(req.ConversationID); err != nil {
			return apperr.NotFound("Conversation not found")
		}
	}

	msg, sent := room.Send(req.Text)
	if !sent {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Text is required",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    msg,
	})
}

// UpgradeOnly rejects plain HTTP requests to websocket routes.
func UpgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

type socketFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// WebSocketHandler runs behind the cookie middleware, so the session id is
// already in Locals. Frames of type "send" go through the room like
// SendMessage; "pong" keeps the connection alive.
func (h *ChatHandler) WebSocketHandler(c *websocket.Conn) {
	sid, _ := c.Locals("sessionId").(string)
	s, found := h.Sessions.Get(sid)
	if !found {
		c.Close()
		return
	}
	u, signedIn := s.Current()
	if !signedIn {
		c.Close()
		return
	}
	room := h.Rooms.Open(sid, *u)

	client := &realtime.Client{
		ID:        uuid.NewString(),
		SessionID: sid,
		Conn:      realtime.NewWebSocketConn(c),
		Send:      make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	defer h.Hub.UnregisterClient(client)

	logger.Debug().Str("session_id", sid).Msg("ws connected")

	go func() {
		if err := client.Conn.WritePump(client.Send); err != nil {
			logger.Debug().Err(err).Str("session_id", sid).Msg("ws write")
		}
	}()

	for {
		var frame socketFrame
		if err := c.ReadJSON(&frame); err != nil {
			logger.Debug().Err(err).Str("session_id", sid).Msg("ws closed")
			return
		}

		switch strings.ToLower(frame.Type) {
		case "pong":
		case "send":
			if cur, signedIn := s.Current(); signedIn {
				room.SetMe(*cur)
			}
			room.Send(frame.Text)
		}
	}
}
