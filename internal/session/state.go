// Package session runs the round state machine: it guards against
// overlapping rounds, keeps the score, drives the timed reveal and the
// auto-play trigger.
package session

// State represents whether a round reveal is in progress.
type State int

const (
	// StateIdle accepts a new round.
	StateIdle State = iota
	// StateAnimating is the reveal of the current round; new rounds are ignored.
	StateAnimating
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}
