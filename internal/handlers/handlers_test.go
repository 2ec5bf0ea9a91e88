package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/afrilink/platform_be/internal/chat"
	"github.com/afrilink/platform_be/internal/directory"
	"github.com/afrilink/platform_be/internal/jobs"
	"github.com/afrilink/platform_be/internal/ledger"
	"github.com/afrilink/platform_be/internal/middleware"
	"github.com/afrilink/platform_be/internal/realtime"
	"github.com/afrilink/platform_be/internal/seeds"
	"github.com/afrilink/platform_be/internal/session"
	"github.com/afrilink/platform_be/internal/utils"
)

const testSecret = "handlers-secret"

func init() {
	utils.PasswordCost = 4
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type testServer struct {
	app      *fiber.App
	sessions *session.Registry
	rooms    *chat.Rooms
	repo     *directory.MemoryRepository
	pub      *recordingPublisher
}

type published struct {
	Recipient string
	Payload   fiber.Map
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
}

func (p *recordingPublisher) Publish(_ context.Context, recipientID string, v interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	payload, _ := v.(fiber.Map)
	p.sent = append(p.sent, published{Recipient: recipientID, Payload: payload})
	return nil
}

func (p *recordingPublisher) Sent() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.sent...)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	repo := directory.NewMemoryRepository(seeds.Users())
	sessions := session.NewRegistry(repo)
	hub := realtime.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	pub := &recordingPublisher{}
	rooms := chat.NewRooms(seeds.Conversations(), seeds.ChatHistory(), chat.Config{
		ReplyDelay: 200 * time.Millisecond,
		Listener:   ChatListener(hub, pub),
	})
	board := jobs.NewDirectory(seeds.Jobs())
	book := ledger.New(seeds.Transactions())

	r := &Router{
		JWTSecret: testSecret,
		Auth:      &AuthHandler{Sessions: sessions, Rooms: rooms, JWTSecret: testSecret, Expires: 60},
		Jobs:      &JobsHandler{Jobs: board, Proposals: jobs.NewProposalBook(board), Sessions: sessions},
		Payments:  NewPaymentHandler(book),
		Chat:      NewChatHandler(rooms, sessions, hub),
		Dashboard: NewDashboardHandler(board, book, sessions),
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	r.Mount(app)

	return &testServer{app: app, sessions: sessions, rooms: rooms, repo: repo, pub: pub}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) (*http.Response, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := s.app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

func tokenCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func (s *testServer) login(t *testing.T, email, role string) *http.Cookie {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": email, "password": "whatever", "role": role,
	}, nil)
	require.True(t, env.Success, env.Message)
	return tokenCookie(t, resp)
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}
