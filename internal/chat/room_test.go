package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/seeds"
)

type manualTimer struct {
	due     time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

// manualClock fires timers only when Advance moves past their due time.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{due: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.due <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func amara() models.User {
	return seeds.Users()[0]
}

func newTestRoom(t *testing.T) (*Room, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	r := NewRoom("s1", amara(), seeds.Conversations(), seeds.ChatHistory(), Config{Scheduler: clock})
	t.Cleanup(r.Close)
	return r, clock
}

func TestNewRoom_SeedsHistoryAndFirstConversation(t *testing.T) {
	r, _ := newTestRoom(t)

	assert.Equal(t, "1", r.Active().ID)
	assert.Len(t, r.Conversations(), 3)

	msgs, err := r.Messages("1")
	require.NoError(t, err)
	require.Len(t, msgs, 7)
	for _, m := range msgs {
		assert.Equal(t, m.SenderID == "1", m.IsMe, "message %s", m.ID)
	}
}

func TestNewRoom_OtherUserOwnsNoSeededMessages(t *testing.T) {
	kofi := seeds.Users()[1]
	r := NewRoom("s2", kofi, seeds.Conversations(), seeds.ChatHistory(), Config{Scheduler: &manualClock{}})
	defer r.Close()

	msgs, err := r.Messages("1")
	require.NoError(t, err)
	require.Len(t, msgs, 7)
	for _, m := range msgs {
		assert.False(t, m.IsMe, "%s: %s", m.SenderName, m.ID)
	}

	sent, ok := r.Send("hello from Kofi")
	require.True(t, ok)
	assert.True(t, sent.IsMe)
	assert.Equal(t, kofi.ID, sent.SenderID)
}

func TestNewRoom_SeededCounterpartIsNamespaced(t *testing.T) {
	for _, m := range seeds.ChatHistory() {
		if m.SenderName == "Kwame Asante" {
			assert.Equal(t, models.CounterpartID("1"), m.SenderID)
		}
	}
}

func TestSend_WhitespaceIsNoop(t *testing.T) {
	r, clock := newTestRoom(t)
	before := r.Len()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, ok := r.Send(text)
		assert.False(t, ok)
	}
	clock.Advance(time.Minute)

	assert.Equal(t, before, r.Len())
	assert.Equal(t, 0, r.Pending())
}

func TestSend_AppendsOwnMessage(t *testing.T) {
	r, _ := newTestRoom(t)
	before := r.Len()

	msg, ok := r.Send("hello")
	require.True(t, ok)

	assert.Equal(t, before+1, r.Len())
	assert.True(t, msg.IsMe)
	assert.Equal(t, "hello", msg.Message)
	assert.Equal(t, "1", msg.ConversationID)
	assert.Equal(t, "Amara Okafor", msg.SenderName)

	msgs, _ := r.Messages("1")
	assert.Equal(t, msg, msgs[len(msgs)-1])
}

func TestSend_ReplyArrivesOnlyAfterDelay(t *testing.T) {
	r, clock := newTestRoom(t)
	before := r.Len()

	_, ok := r.Send("hello")
	require.True(t, ok)
	assert.Equal(t, 1, r.Pending())

	clock.Advance(DefaultReplyDelay - time.Millisecond)
	assert.Equal(t, before+1, r.Len())

	clock.Advance(time.Millisecond)
	assert.Equal(t, before+2, r.Len())
	assert.Equal(t, 0, r.Pending())

	clock.Advance(10 * time.Second)
	assert.Equal(t, before+2, r.Len())

	msgs, _ := r.Messages("1")
	reply := msgs[len(msgs)-1]
	assert.False(t, reply.IsMe)
	assert.Equal(t, DefaultReplyText, reply.Message)
	assert.Equal(t, "Kwame Asante", reply.SenderName)
	assert.Equal(t, models.CounterpartID("1"), reply.SenderID)
}

func TestSend_ReplyKeepsConversationCapturedAtSend(t *testing.T) {
	r, clock := newTestRoom(t)

	_, ok := r.Send("are you there?")
	require.True(t, ok)

	_, err := r.Activate("3")
	require.NoError(t, err)
	clock.Advance(DefaultReplyDelay)

	first, _ := r.Messages("1")
	third, _ := r.Messages("3")
	assert.Len(t, third, 0)
	assert.Equal(t, DefaultReplyText, first[len(first)-1].Message)
}

func TestSend_EachMessageGetsItsOwnReply(t *testing.T) {
	r, clock := newTestRoom(t)
	before := r.Len()

	r.Send("one")
	clock.Advance(time.Second)
	r.Send("two")
	assert.Equal(t, 2, r.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, before+3, r.Len())
	clock.Advance(time.Second)
	assert.Equal(t, before+4, r.Len())
}

func TestComposerStates(t *testing.T) {
	r, _ := newTestRoom(t)
	assert.Equal(t, StateIdle, r.State())

	r.SetDraft("typing")
	assert.Equal(t, StateComposerHasText, r.State())

	_, ok := r.SendDraft()
	require.True(t, ok)
	assert.Equal(t, StateIdle, r.State())
	assert.Empty(t, r.Draft())

	r.SetDraft("  ")
	_, ok = r.SendDraft()
	assert.False(t, ok)
	assert.Equal(t, "  ", r.Draft())
	assert.Equal(t, StateComposerHasText, r.State())

	r.SetDraft("")
	assert.Equal(t, StateIdle, r.State())
}

func TestActivate_UnknownConversation(t *testing.T) {
	r, _ := newTestRoom(t)

	_, err := r.Activate("99")
	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.Equal(t, "1", r.Active().ID)

	_, err = r.Messages("99")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestClose_DropsPendingReplies(t *testing.T) {
	r, clock := newTestRoom(t)

	r.Send("hello")
	before := r.Len()
	r.Close()
	clock.Advance(DefaultReplyDelay)

	assert.Equal(t, before, r.Len())
	assert.Equal(t, 0, r.Pending())

	_, ok := r.Send("after close")
	assert.False(t, ok)
}

func TestListener_SeesMessageAndReply(t *testing.T) {
	clock := &manualClock{}
	var got []models.ChatMessage
	r := NewRoom("s1", amara(), seeds.Conversations(), nil, Config{
		Scheduler: clock,
		Listener: func(sessionID, userID string, msg models.ChatMessage) {
			assert.Equal(t, "s1", sessionID)
			assert.Equal(t, "1", userID)
			got = append(got, msg)
		},
	})
	defer r.Close()

	r.Send("ping")
	clock.Advance(DefaultReplyDelay)

	require.Len(t, got, 2)
	assert.True(t, got[0].IsMe)
	assert.False(t, got[1].IsMe)
}

func TestRealClock_DeliversReply(t *testing.T) {
	r := NewRoom("s1", amara(), seeds.Conversations(), nil, Config{ReplyDelay: 10 * time.Millisecond})
	defer r.Close()

	r.Send("hello")
	assert.Eventually(t, func() bool { return r.Len() == 2 }, time.Second, 5*time.Millisecond)
}

func TestRooms_OpenRefreshesUser(t *testing.T) {
	rs := NewRooms(seeds.Conversations(), nil, Config{Scheduler: &manualClock{}})
	me := amara()
	r := rs.Open("a", me)
	defer r.Close()

	me.Name = "Amara O."
	assert.Same(t, r, rs.Open("a", me))

	msg, ok := r.Send("hello")
	require.True(t, ok)
	assert.Equal(t, "Amara O.", msg.SenderName)
	assert.True(t, msg.IsMe)
}

func TestRooms_OpenIsPerSession(t *testing.T) {
	rs := NewRooms(seeds.Conversations(), seeds.ChatHistory(), Config{Scheduler: &manualClock{}})

	a := rs.Open("a", amara())
	assert.Same(t, a, rs.Open("a", amara()))
	b := rs.Open("b", seeds.Users()[1])
	assert.NotSame(t, a, b)

	a.Send("only in a")
	assert.Equal(t, b.Len()+1, a.Len())

	rs.Close("a")
	_, ok := rs.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, rs.Len())
}
