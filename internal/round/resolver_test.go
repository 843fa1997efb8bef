package round

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMoveString(t *testing.T) {
	tests := []struct {
		move     Move
		expected string
		display  string
	}{
		{Rock, "rock", "Rock"},
		{Paper, "paper", "Paper"},
		{Scissors, "scissors", "Scissors"},
	}

	for _, tt := range tests {
		if got := tt.move.String(); got != tt.expected {
			t.Errorf("Move(%d).String() = %q, want %q", tt.move, got, tt.expected)
		}
		if got := tt.move.DisplayName(); got != tt.display {
			t.Errorf("Move(%d).DisplayName() = %q, want %q", tt.move, got, tt.display)
		}
	}

	if got := Move(99).String(); got != "unknown" {
		t.Errorf("Move(99).String() = %q, want %q", got, "unknown")
	}
	if Move(99).Valid() {
		t.Error("Move(99).Valid() = true, want false")
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input    string
		expected Move
		wantErr  bool
	}{
		{"rock", Rock, false},
		{"Paper", Paper, false},
		{" SCISSORS ", Scissors, false},
		{"lizard", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMove(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownMove) {
				t.Errorf("ParseMove(%q) error = %v, want ErrUnknownMove", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMove(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestBeatsRelation(t *testing.T) {
	beatenBy := make(map[Move]int)

	for _, m := range Moves() {
		b, ok := Beats(m)
		if !ok {
			t.Fatalf("Beats(%v) not defined", m)
		}
		if b == m {
			t.Errorf("Beats(%v) = %v, move must not beat itself", m, b)
		}
		beatenBy[b]++
	}

	// Every move loses to exactly one other move
	for _, m := range Moves() {
		if beatenBy[m] != 1 {
			t.Errorf("%v is beaten by %d moves, want 1", m, beatenBy[m])
		}
	}

	// For distinct moves exactly one beats the other
	for _, a := range Moves() {
		for _, b := range Moves() {
			if a == b {
				continue
			}
			ab, _ := Beats(a)
			ba, _ := Beats(b)
			if (ab == b) == (ba == a) {
				t.Errorf("exactly one of %v, %v must beat the other", a, b)
			}
		}
	}

	if _, ok := Beats(Move(42)); ok {
		t.Error("Beats(Move(42)) should not be defined")
	}
}

func TestResolveScenarios(t *testing.T) {
	r := NewResolver(Messages{})

	tests := []struct {
		player   Move
		computer Move
		expected OutcomeKind
		message  string
	}{
		{Rock, Scissors, Win, WinMessage},
		{Paper, Rock, Win, WinMessage},
		{Scissors, Paper, Win, WinMessage},
		{Scissors, Scissors, Tie, TieMessage},
		{Paper, Scissors, Lose, LoseMessage},
		{Rock, Paper, Lose, LoseMessage},
	}

	for _, tt := range tests {
		got := r.Resolve(tt.player, tt.computer)
		if got.Kind != tt.expected {
			t.Errorf("Resolve(%v, %v).Kind = %v, want %v", tt.player, tt.computer, got.Kind, tt.expected)
		}
		if got.Message != tt.message {
			t.Errorf("Resolve(%v, %v).Message = %q, want %q", tt.player, tt.computer, got.Message, tt.message)
		}
	}
}

func TestResolveAntiSymmetry(t *testing.T) {
	r := NewResolver(DefaultMessages())

	for _, a := range Moves() {
		for _, b := range Moves() {
			ab := r.Resolve(a, b).Kind
			ba := r.Resolve(b, a).Kind

			if (ab == Tie) != (a == b) {
				t.Errorf("Resolve(%v, %v) = %v, tie must hold iff moves are equal", a, b, ab)
			}
			if a == b {
				continue
			}
			if (ab == Win) != (ba == Lose) {
				t.Errorf("Resolve(%v, %v) = %v but Resolve(%v, %v) = %v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestResolverCustomMessages(t *testing.T) {
	r := NewResolver(Messages{Win: "Nice"})

	if got := r.Resolve(Rock, Scissors).Message; got != "Nice" {
		t.Errorf("custom win message = %q, want %q", got, "Nice")
	}
	if got := r.Resolve(Rock, Paper).Message; got != LoseMessage {
		t.Errorf("lose message should fall back to default, got %q", got)
	}
}

func TestPlay(t *testing.T) {
	r := NewResolver(DefaultMessages())

	rd := r.Play(Paper, Rock)
	if rd.Player != Paper || rd.Computer != Rock {
		t.Errorf("Play() moves = (%v, %v), want (paper, rock)", rd.Player, rd.Computer)
	}
	if rd.Outcome.Kind != Win {
		t.Errorf("Play(paper, rock).Outcome = %v, want win", rd.Outcome.Kind)
	}
}

func TestOutcomeKindString(t *testing.T) {
	tests := []struct {
		kind     OutcomeKind
		expected string
	}{
		{Win, "win"},
		{Lose, "lose"},
		{Tie, "tie"},
		{OutcomeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestRandomMove(t *testing.T) {
	// Same seed produces the same sequence
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	seen := make(map[Move]int)
	for i := 0; i < 300; i++ {
		m1 := RandomMove(rng1)
		m2 := RandomMove(rng2)
		if m1 != m2 {
			t.Fatalf("RandomMove mismatch at %d: %v != %v", i, m1, m2)
		}
		if !m1.Valid() {
			t.Fatalf("RandomMove returned invalid move %v", m1)
		}
		seen[m1]++
	}

	for _, m := range Moves() {
		if seen[m] == 0 {
			t.Errorf("RandomMove never produced %v in 300 draws", m)
		}
	}
}
