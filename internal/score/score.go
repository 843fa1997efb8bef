// Package score tracks the cumulative win/loss/tie tally and persists it
// through a key-value store.
package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samdwyer/rpsterm/internal/round"
)

// DefaultKey is the store key the tally is saved under.
const DefaultKey = "rpsScore"

// Score is the persisted tally.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// IsZero reports whether all counters are zero.
func (s Score) IsZero() bool {
	return s.Wins == 0 && s.Losses == 0 && s.Ties == 0
}

// Total returns the number of rounds counted.
func (s Score) Total() int {
	return s.Wins + s.Losses + s.Ties
}

// Summary formats the tally as "Wins: W | Losses: L | Ties: T".
func (s Score) Summary() string {
	return fmt.Sprintf("Wins: %d | Losses: %d | Ties: %d", s.Wins, s.Losses, s.Ties)
}

// Encode returns the JSON form of the tally.
func Encode(s Score) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses a JSON tally. Negative counters are rejected.
func Decode(data []byte) (Score, error) {
	var s Score
	if err := json.Unmarshal(data, &s); err != nil {
		return Score{}, fmt.Errorf("decode score: %w", err)
	}
	if s.Wins < 0 || s.Losses < 0 || s.Ties < 0 {
		return Score{}, errors.New("decode score: negative counter")
	}
	return s, nil
}

// Store is a key-value persistence backend.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key.
	Put(ctx context.Context, key string, value []byte) error
}

// Tracker owns the tally and keeps it in sync with a Store.
type Tracker struct {
	store  Store
	key    string
	score  Score
	logger *slog.Logger
}

// NewTracker creates a tracker with a zero score. A nil store keeps the
// score in memory only.
func NewTracker(store Store, key string, logger *slog.Logger) *Tracker {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		store:  store,
		key:    key,
		logger: logger.With("component", "score"),
	}
}

// Score returns a copy of the current tally.
func (t *Tracker) Score() Score {
	return t.score
}

// Summary returns the formatted tally.
func (t *Tracker) Summary() string {
	return t.score.Summary()
}

// IsZero reports whether the tally is all zero.
func (t *Tracker) IsZero() bool {
	return t.score.IsZero()
}

// Record increments the counter matching the outcome.
// Unknown outcome kinds leave the tally unchanged.
func (t *Tracker) Record(kind round.OutcomeKind) {
	switch kind {
	case round.Win:
		t.score.Wins++
	case round.Lose:
		t.score.Losses++
	case round.Tie:
		t.score.Ties++
	}
}

// Reset zeroes every counter.
func (t *Tracker) Reset() {
	t.score = Score{}
}

// Load replaces the tally with the stored one. A missing, unreadable or
// corrupt record yields a zero tally; Load never fails.
func (t *Tracker) Load(ctx context.Context) Score {
	t.score = Score{}
	if t.store == nil {
		return t.score
	}

	data, ok, err := t.store.Get(ctx, t.key)
	if err != nil {
		t.logger.Warn("score load failed, starting from zero", "key", t.key, "error", err)
		return t.score
	}
	if !ok {
		t.logger.Debug("no saved score", "key", t.key)
		return t.score
	}

	s, err := Decode(data)
	if err != nil {
		t.logger.Warn("saved score is corrupt, starting from zero", "key", t.key, "error", err)
		return t.score
	}

	t.score = s
	t.logger.Info("score loaded", "wins", s.Wins, "losses", s.Losses, "ties", s.Ties)
	return t.score
}

// Save writes the tally to the store.
func (t *Tracker) Save(ctx context.Context) error {
	if t.store == nil {
		return nil
	}

	data, err := Encode(t.score)
	if err != nil {
		return err
	}
	if err := t.store.Put(ctx, t.key, data); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}
