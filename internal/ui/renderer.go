package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsterm/internal/gamedata"
	"github.com/samdwyer/rpsterm/internal/round"
)

// Button identifies a clickable control.
type Button int

const (
	ButtonNone Button = iota
	ButtonRock
	ButtonPaper
	ButtonScissors
	ButtonAutoPlay
	ButtonReset
	ButtonYes
	ButtonNo
)

// Move returns the move a move button plays.
func (b Button) Move() (round.Move, bool) {
	switch b {
	case ButtonRock:
		return round.Rock, true
	case ButtonPaper:
		return round.Paper, true
	case ButtonScissors:
		return round.Scissors, true
	default:
		return 0, false
	}
}

func moveButton(m round.Move) Button {
	switch m {
	case round.Rock:
		return ButtonRock
	case round.Paper:
		return ButtonPaper
	default:
		return ButtonScissors
	}
}

// Panel texts.
const (
	placeholder  = "?"
	thinkingText = "Thinking..."
	waitingText  = "Make your move!"
)

// Screen rows.
const (
	rowTitle   = 1
	rowMoves   = 3
	rowReveal  = 5
	rowResult  = 7
	rowMessage = 9
	rowPlayed  = 10
	rowScore   = 12
	rowControl = 14
	rowPrompt  = 16
	rowAnswer  = 17
	rowHint    = 19
	marginLeft = 2
)

type hitbox struct {
	x, y, w int
	button  Button
}

// board is everything currently shown.
type board struct {
	player     string
	computer   string
	playerMove *round.Move
	compMove   *round.Move
	result     string
	outcome    *round.OutcomeKind
	message    string
	played     string
	score      string
	autoPlay   bool
	pressed    *round.Move
	prompt     string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	data    *gamedata.Registry
	board   board
	buttons []hitbox
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, data *gamedata.Registry) *Renderer {
	r := &Renderer{screen: screen, data: data}
	r.resetPanel()
	return r
}

func (r *Renderer) resetPanel() {
	r.board.player = placeholder
	r.board.computer = placeholder
	r.board.playerMove = nil
	r.board.compMove = nil
	r.board.outcome = nil
}

// RoundStarted clears the reveal panel and shows the round's result line.
func (r *Renderer) RoundStarted(rd round.Round) {
	r.resetPanel()
	r.board.result = thinkingText
	r.board.message = rd.Outcome.Message
	r.board.played = fmt.Sprintf("You: %s | Computer: %s", r.moveName(rd.Player), r.moveName(rd.Computer))
	pressed := rd.Player
	r.board.pressed = &pressed
	r.Draw()
}

// RevealPlayer shows the player's move.
func (r *Renderer) RevealPlayer(m round.Move) {
	r.board.player = r.moveLabel(m)
	r.board.playerMove = &m
	r.board.pressed = nil
	r.Draw()
}

// RevealComputer shows the computer's move.
func (r *Renderer) RevealComputer(m round.Move) {
	r.board.computer = r.moveLabel(m)
	r.board.compMove = &m
	r.Draw()
}

// RevealOutcome shows the outcome message in the outcome's color.
func (r *Renderer) RevealOutcome(o round.Outcome) {
	r.board.result = o.Message
	kind := o.Kind
	r.board.outcome = &kind
	r.Draw()
}

// ScoreChanged updates the score line.
func (r *Renderer) ScoreChanged(summary string) {
	r.board.score = summary
	r.Draw()
}

// AutoPlayChanged flips the auto-play button label.
func (r *Renderer) AutoPlayChanged(on bool) {
	r.board.autoPlay = on
	r.Draw()
}

// BoardReset returns the reveal panel to its waiting state.
func (r *Renderer) BoardReset() {
	r.resetPanel()
	r.board.result = waitingText
	r.board.pressed = nil
	r.Draw()
}

// ShowConfirm shows a yes/no question below the controls.
func (r *Renderer) ShowConfirm(prompt string) {
	r.board.prompt = prompt
	r.Draw()
}

// HideConfirm removes the question.
func (r *Renderer) HideConfirm() {
	r.board.prompt = ""
	r.Draw()
}

// ButtonAt returns the control drawn at x, y.
func (r *Renderer) ButtonAt(x, y int) Button {
	for _, h := range r.buttons {
		if y == h.y && x >= h.x && x < h.x+h.w {
			return h.button
		}
	}
	return ButtonNone
}

// Draw repaints the whole board.
func (r *Renderer) Draw() {
	r.screen.Clear()
	r.buttons = r.buttons[:0]

	base := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.screen.DrawText(marginLeft, rowTitle, "Rock Paper Scissors", base.Bold(true))

	x := marginLeft
	for _, m := range round.Moves() {
		style := base.Foreground(r.moveColor(m))
		if r.board.pressed != nil && *r.board.pressed == m {
			style = style.Reverse(true)
		}
		x = r.drawButton(x, rowMoves, r.moveLabel(m), moveButton(m), style) + 2
	}

	x = r.screen.DrawText(marginLeft, rowReveal, "You ", dim)
	x = r.screen.DrawText(x, rowReveal, r.board.player, r.slotStyle(base, r.board.playerMove))
	x = r.screen.DrawText(x, rowReveal, "   vs   ", dim)
	x = r.screen.DrawText(x, rowReveal, r.board.computer, r.slotStyle(base, r.board.compMove))
	r.screen.DrawText(x, rowReveal, " Computer", dim)

	resultStyle := base.Bold(true)
	if r.board.outcome != nil {
		resultStyle = resultStyle.Foreground(r.outcomeColor(*r.board.outcome))
	}
	r.screen.DrawText(marginLeft, rowResult, r.board.result, resultStyle)

	r.screen.DrawText(marginLeft, rowMessage, r.board.message, base)
	r.screen.DrawText(marginLeft, rowPlayed, r.board.played, dim)
	r.screen.DrawText(marginLeft, rowScore, r.board.score, base.Bold(true))

	autoLabel := "Auto Play"
	autoStyle := base.Foreground(tcell.ColorDeepSkyBlue)
	if r.board.autoPlay {
		autoLabel = "Stop Auto Play"
		autoStyle = base.Foreground(tcell.ColorDeepPink)
	}
	x = r.drawButton(marginLeft, rowControl, autoLabel, ButtonAutoPlay, autoStyle) + 2
	r.drawButton(x, rowControl, "Reset Score", ButtonReset, base)

	if r.board.prompt != "" {
		r.screen.DrawText(marginLeft, rowPrompt, r.board.prompt, base.Bold(true))
		x = r.drawButton(marginLeft, rowAnswer, "Yes, Reset", ButtonYes, base.Foreground(tcell.ColorRed)) + 2
		r.drawButton(x, rowAnswer, "No, Keep Score", ButtonNo, base.Foreground(tcell.ColorGreen))
	}

	r.screen.DrawText(marginLeft, rowHint, r.Hint(), dim)
	r.screen.Show()
}

// Hint lists the keyboard shortcuts.
func (r *Renderer) Hint() string {
	parts := make([]string, 0, 7)
	for _, m := range round.Moves() {
		key := ""
		if r.data != nil {
			if def := r.data.Move(m); def != nil {
				key = string(unicode.ToUpper(def.KeyRune()))
			}
		}
		if key == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", key, r.moveName(m)))
	}
	parts = append(parts, "A/Space (Auto Play)", "X (Reset)", "Esc (Stop)", "Q (Quit)")
	return "Pro Tip: " + strings.Join(parts, ", ")
}

func (r *Renderer) drawButton(x, y int, label string, b Button, style tcell.Style) int {
	text := "[ " + label + " ]"
	end := r.screen.DrawText(x, y, text, style)
	r.buttons = append(r.buttons, hitbox{x: x, y: y, w: end - x, button: b})
	return end
}

func (r *Renderer) slotStyle(base tcell.Style, m *round.Move) tcell.Style {
	if m == nil {
		return base
	}
	return base.Foreground(r.moveColor(*m)).Bold(true)
}

func (r *Renderer) moveName(m round.Move) string {
	if r.data != nil {
		if def := r.data.Move(m); def != nil && def.Name != "" {
			return def.Name
		}
	}
	return m.DisplayName()
}

func (r *Renderer) moveLabel(m round.Move) string {
	if r.data != nil {
		if def := r.data.Move(m); def != nil && def.Glyph != "" {
			return def.Glyph + " " + r.moveName(m)
		}
	}
	return r.moveName(m)
}

func (r *Renderer) moveColor(m round.Move) tcell.Color {
	if r.data != nil {
		if def := r.data.Move(m); def != nil {
			return def.TCellColor()
		}
	}
	return tcell.ColorWhite
}

func (r *Renderer) outcomeColor(k round.OutcomeKind) tcell.Color {
	if r.data != nil {
		if def := r.data.Outcome(k); def != nil {
			return def.TCellColor()
		}
	}
	return tcell.ColorWhite
}
