package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsterm/internal/gamedata"
	"github.com/samdwyer/rpsterm/internal/round"
)

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(100, 25)
	t.Cleanup(screen.Close)

	reg, err := gamedata.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	return NewRenderer(screen, reg), screen
}

// row reads back the text drawn on line y, one rune per cell, with
// trailing blanks trimmed.
func row(s *Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, combc, _, _ := s.screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
		for _, c := range combc {
			b.WriteRune(c)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestButtonMove(t *testing.T) {
	tests := []struct {
		button Button
		want   round.Move
		ok     bool
	}{
		{ButtonRock, round.Rock, true},
		{ButtonPaper, round.Paper, true},
		{ButtonScissors, round.Scissors, true},
		{ButtonAutoPlay, 0, false},
		{ButtonNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.button.Move()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Button(%d).Move() = %v, %v, want %v, %v", tt.button, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRendererRoundSequence(t *testing.T) {
	r, s := newTestRenderer(t)
	r.ScoreChanged("Wins: 1 | Losses: 0 | Ties: 0")
	r.BoardReset()

	if got := row(s, rowResult); got != "  "+waitingText {
		t.Errorf("result row after BoardReset() = %q, want %q", got, "  "+waitingText)
	}

	rd := round.Round{
		Player:   round.Rock,
		Computer: round.Scissors,
		Outcome:  round.Outcome{Kind: round.Win, Message: round.WinMessage},
	}
	r.RoundStarted(rd)

	if got := row(s, rowResult); !strings.Contains(got, thinkingText) {
		t.Errorf("result row after RoundStarted() = %q, want %q", got, thinkingText)
	}
	if got := row(s, rowPlayed); !strings.Contains(got, "You: Rock | Computer: Scissors") {
		t.Errorf("played row = %q, want the moves line", got)
	}
	if got := row(s, rowReveal); strings.Contains(got, "Rock") {
		t.Errorf("reveal row before RevealPlayer() = %q, want placeholders", got)
	}

	r.RevealPlayer(rd.Player)
	if got := row(s, rowReveal); !strings.Contains(got, "Rock") || strings.Contains(got, "Scissors") {
		t.Errorf("reveal row after RevealPlayer() = %q", got)
	}

	r.RevealComputer(rd.Computer)
	if got := row(s, rowReveal); !strings.Contains(got, "Scissors") {
		t.Errorf("reveal row after RevealComputer() = %q", got)
	}
	if got := row(s, rowResult); !strings.Contains(got, thinkingText) {
		t.Errorf("result row before RevealOutcome() = %q, want %q", got, thinkingText)
	}

	r.RevealOutcome(rd.Outcome)
	if got := row(s, rowResult); !strings.Contains(got, "You Win!") {
		t.Errorf("result row after RevealOutcome() = %q, want win message", got)
	}
	if got := row(s, rowScore); !strings.Contains(got, "Wins: 1 | Losses: 0 | Ties: 0") {
		t.Errorf("score row = %q", got)
	}
}

func TestRendererAutoPlayLabel(t *testing.T) {
	r, s := newTestRenderer(t)

	r.AutoPlayChanged(true)
	if got := row(s, rowControl); !strings.Contains(got, "[ Stop Auto Play ]") {
		t.Errorf("control row with auto-play on = %q", got)
	}

	r.AutoPlayChanged(false)
	got := row(s, rowControl)
	if strings.Contains(got, "Stop") || !strings.Contains(got, "[ Auto Play ]") {
		t.Errorf("control row with auto-play off = %q", got)
	}
}

func TestRendererButtonAt(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.Draw()

	found := make(map[Button]bool)
	for y := 0; y < 25; y++ {
		for x := 0; x < 100; x++ {
			found[r.ButtonAt(x, y)] = true
		}
	}

	for _, b := range []Button{ButtonRock, ButtonPaper, ButtonScissors, ButtonAutoPlay, ButtonReset} {
		if !found[b] {
			t.Errorf("ButtonAt() never returned button %d", b)
		}
	}
	if found[ButtonYes] || found[ButtonNo] {
		t.Error("confirm buttons are clickable without a question shown")
	}
	if got := r.ButtonAt(0, 0); got != ButtonNone {
		t.Errorf("ButtonAt(0, 0) = %d, want ButtonNone", got)
	}
}

func TestRendererConfirm(t *testing.T) {
	r, s := newTestRenderer(t)

	r.ShowConfirm("Are you sure?")
	if got := row(s, rowPrompt); !strings.Contains(got, "Are you sure?") {
		t.Errorf("prompt row = %q", got)
	}
	if got := r.ButtonAt(marginLeft, rowAnswer); got != ButtonYes {
		t.Errorf("ButtonAt(answer row) = %d, want ButtonYes", got)
	}

	r.HideConfirm()
	if got := row(s, rowPrompt); got != "" {
		t.Errorf("prompt row after HideConfirm() = %q, want empty", got)
	}
	if got := r.ButtonAt(marginLeft, rowAnswer); got != ButtonNone {
		t.Errorf("ButtonAt(answer row) after HideConfirm() = %d, want ButtonNone", got)
	}
}

func TestRendererHint(t *testing.T) {
	r, _ := newTestRenderer(t)

	hint := r.Hint()
	for _, want := range []string{"R (Rock)", "P (Paper)", "S (Scissors)", "A/Space", "Q (Quit)"} {
		if !strings.Contains(hint, want) {
			t.Errorf("Hint() = %q, missing %q", hint, want)
		}
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"Rock", 4},
		{"✊", 2},
	}

	for _, tt := range tests {
		if got := TextWidth(tt.text); got != tt.want {
			t.Errorf("TextWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
