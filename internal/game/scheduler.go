package game

import (
	"log/slog"
	"time"

	"github.com/samdwyer/rpsterm/internal/session"
)

const (
	postAttempts = 50
	postBackoff  = 10 * time.Millisecond
)

// loopScheduler runs timer callbacks on the event loop by posting them to
// the screen's event queue.
type loopScheduler struct {
	post   func(func()) error
	done   <-chan struct{}
	logger *slog.Logger
}

func newLoopScheduler(post func(func()) error, done <-chan struct{}, logger *slog.Logger) *loopScheduler {
	return &loopScheduler{post: post, done: done, logger: logger}
}

// AfterFunc schedules fn on the event loop after d.
func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) session.Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		s.deliver(func() {
			if lt.stopped {
				return
			}
			lt.fired = true
			fn()
		})
	})
	return lt
}

// deliver retries while the event queue is full, and gives up once the
// loop has exited.
func (s *loopScheduler) deliver(fn func()) {
	for i := 0; i < postAttempts; i++ {
		if err := s.post(fn); err == nil {
			return
		}
		select {
		case <-s.done:
			return
		case <-time.After(postBackoff):
		}
	}
	s.logger.Warn("timer callback dropped, event queue full")
}

// loopTimer's flags are only touched on the event loop, so a callback that
// was posted before Stop is discarded when the loop gets to it.
type loopTimer struct {
	timer   *time.Timer
	stopped bool
	fired   bool
}

func (t *loopTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}
