package game

import (
	"log/slog"

	"github.com/samdwyer/rpsterm/internal/gamedata"
	"github.com/samdwyer/rpsterm/internal/metrics"
	"github.com/samdwyer/rpsterm/internal/score"
	"github.com/samdwyer/rpsterm/internal/session"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible move sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Timing of the reveal sequence and auto-play. Zero means the defaults.
	Timing session.Timing

	// Registry supplies move names, keys and colours. Nil loads the
	// embedded table.
	Registry *gamedata.Registry

	// Tracker holds the loaded score. Required.
	Tracker *score.Tracker

	Metrics *metrics.Recorder
	Logger  *slog.Logger

	// Scheduler overrides the event-loop scheduler, e.g. with a manual
	// clock in tests.
	Scheduler session.Scheduler
}
