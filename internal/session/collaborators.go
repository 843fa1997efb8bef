package session

import (
	"time"

	"github.com/samdwyer/rpsterm/internal/round"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the session's goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Renderer presents rounds and score changes.
type Renderer interface {
	// RoundStarted shows placeholders for the reveal and the immediate
	// result line for r.
	RoundStarted(r round.Round)
	RevealPlayer(m round.Move)
	RevealComputer(m round.Move)
	RevealOutcome(o round.Outcome)
	// ScoreChanged receives the "Wins: W | Losses: L | Ties: T" summary.
	ScoreChanged(summary string)
	AutoPlayChanged(on bool)
	// BoardReset returns the reveal panel to its waiting state.
	BoardReset()
}

// Confirmer asks the user a yes/no question. answer is called at most once.
type Confirmer interface {
	Confirm(prompt string, answer func(ok bool))
}

// MovePicker chooses a move, e.g. the computer's reply.
type MovePicker func() round.Move

// Timing holds the reveal offsets, measured from the start of a round, and
// the auto-play cadence.
type Timing struct {
	RevealPlayer     time.Duration
	RevealComputer   time.Duration
	RevealOutcome    time.Duration
	AutoPlayInterval time.Duration
}

// DefaultTiming returns the standard reveal sequence and a 1.5s auto-play
// cadence.
func DefaultTiming() Timing {
	return Timing{
		RevealPlayer:     300 * time.Millisecond,
		RevealComputer:   800 * time.Millisecond,
		RevealOutcome:    1300 * time.Millisecond,
		AutoPlayInterval: 1500 * time.Millisecond,
	}
}

// ResetPrompt is the question asked before clearing a non-zero score.
const ResetPrompt = "Are you sure you want to reset the score?"

type nopRenderer struct{}

func (nopRenderer) RoundStarted(round.Round)    {}
func (nopRenderer) RevealPlayer(round.Move)     {}
func (nopRenderer) RevealComputer(round.Move)   {}
func (nopRenderer) RevealOutcome(round.Outcome) {}
func (nopRenderer) ScoreChanged(string)         {}
func (nopRenderer) AutoPlayChanged(bool)        {}
func (nopRenderer) BoardReset()                 {}

// denyConfirmer declines every question.
type denyConfirmer struct{}

func (denyConfirmer) Confirm(_ string, answer func(bool)) { answer(false) }
