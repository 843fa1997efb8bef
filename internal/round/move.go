// Package round provides the moves, the win relation and the outcome
// resolver for a single Rock-Paper-Scissors round.
package round

import (
	"errors"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownMove is returned when a string does not name a move.
var ErrUnknownMove = errors.New("unknown move")

// Move is one of the three hand shapes.
type Move int

const (
	// Rock crushes scissors.
	Rock Move = iota
	// Paper covers rock.
	Paper
	// Scissors cut paper.
	Scissors
)

var allMoves = [...]Move{Rock, Paper, Scissors}

// beats maps each move to the single move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Moves returns all moves in canonical order.
func Moves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// String returns the lowercase move id.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// DisplayName returns the capitalized move name, e.g. "Rock".
func (m Move) DisplayName() string {
	return cases.Title(language.English).String(m.String())
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	_, ok := beats[m]
	return ok
}

// Beats returns the move that m defeats.
func Beats(m Move) (Move, bool) {
	b, ok := beats[m]
	return b, ok
}

// ParseMove converts a move id such as "rock" or "Paper" into a Move.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	default:
		return 0, ErrUnknownMove
	}
}

// RandomMove picks a move uniformly at random.
func RandomMove(rng *rand.Rand) Move {
	return allMoves[rng.Intn(len(allMoves))]
}
