// Package sweeper evicts idle sessions on a cron schedule.
package sweeper

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/afrilink/platform_be/internal/chat"
	"github.com/afrilink/platform_be/internal/logger"
	"github.com/afrilink/platform_be/internal/session"
)

// Sweeper wraps robfig/cron and runs the eviction pass.
type Sweeper struct {
	cron     *cron.Cron
	sessions *session.Registry
	rooms    *chat.Rooms
	idle     time.Duration
	spec     string // cron spec, e.g. "@every 10m"
}

func New(sessions *session.Registry, rooms *chat.Rooms, idle time.Duration, spec string) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		sessions: sessions,
		rooms:    rooms,
		idle:     idle,
		spec:     spec,
	}
}

// Start registers the job and starts the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce() }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	logger.Info().Str("spec", s.spec).Dur("idle", s.idle).Msg("session sweeper started")
	return nil
}

// Stop waits for a running pass to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce drops idle sessions and closes their chat rooms, returning how many
// were evicted.
func (s *Sweeper) RunOnce() int {
	ids := s.sessions.Sweep(s.idle)
	for _, id := range ids {
		s.rooms.Close(id)
	}
	if len(ids) > 0 {
		logger.Info().Int("evicted", len(ids)).Msg("idle sessions swept")
	}
	return len(ids)
}
