package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// MoveDef describes how a move is shown and which key plays it.
type MoveDef struct {
	ID    string `json:"id"`    // Move id matching round.Move.String() (e.g., "rock")
	Name  string `json:"name"`  // Display name (e.g., "Rock")
	Glyph string `json:"glyph"` // Symbol drawn in the reveal panel (e.g., "✊")
	Key   string `json:"key"`   // Single letter that plays the move (e.g., "r")
	Color string `json:"color"` // Hex color code (e.g., "#B07CD8")
}

// KeyRune returns the key as a rune, or 0 if none is set.
func (m *MoveDef) KeyRune() rune {
	r, _ := utf8.DecodeRuneInString(m.Key)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// TCellColor returns the move color, or the default color if it does not parse.
func (m *MoveDef) TCellColor() tcell.Color {
	c, err := ParseColor(m.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// OutcomeDef describes the message and color of a round outcome.
type OutcomeDef struct {
	ID      string `json:"id"`      // Outcome id matching round.OutcomeKind.String() (e.g., "win")
	Message string `json:"message"` // Text shown in the result panel
	Color   string `json:"color"`   // Hex color code
}

// TCellColor returns the outcome color, or the default color if it does not parse.
func (o *OutcomeDef) TCellColor() tcell.Color {
	c, err := ParseColor(o.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// MovesFile represents the structure of moves.json.
type MovesFile struct {
	Moves    []MoveDef    `json:"moves"`
	Outcomes []OutcomeDef `json:"outcomes"`
}
