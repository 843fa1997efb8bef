package gamedata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsterm/internal/round"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	for _, m := range round.Moves() {
		def := registry.Move(m)
		if def == nil {
			t.Fatalf("Move %v not found", m)
		}
		if def.Name != m.DisplayName() {
			t.Errorf("Move %v name = %q, want %q", m, def.Name, m.DisplayName())
		}
		if def.Glyph == "" {
			t.Errorf("Move %v has no glyph", m)
		}
	}

	msgs := registry.Messages()
	if msgs != round.DefaultMessages() {
		t.Errorf("Messages() = %+v, want defaults %+v", msgs, round.DefaultMessages())
	}

	if registry.Move(round.Move(42)) != nil {
		t.Error("Move(42) should be nil")
	}
}

func TestMoveForKey(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	tests := []struct {
		key      rune
		expected round.Move
		ok       bool
	}{
		{'r', round.Rock, true},
		{'R', round.Rock, true},
		{'p', round.Paper, true},
		{'S', round.Scissors, true},
		{'a', 0, false},
		{'x', 0, false},
	}

	for _, tt := range tests {
		got, ok := registry.MoveForKey(tt.key)
		if ok != tt.ok || (ok && got != tt.expected) {
			t.Errorf("MoveForKey(%q) = %v, %v, want %v, %v", tt.key, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestNewRegistryValidation(t *testing.T) {
	valid := func() MovesFile {
		file, err := Load[MovesFile]("moves.json")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		return file
	}

	tests := []struct {
		name   string
		mutate func(f *MovesFile)
		want   string
	}{
		{"unknown move", func(f *MovesFile) { f.Moves[0].ID = "lizard" }, "lizard"},
		{"duplicate move", func(f *MovesFile) { f.Moves[1].ID = "rock" }, "defined twice"},
		{"missing move", func(f *MovesFile) { f.Moves = f.Moves[:2] }, "not defined"},
		{"duplicate key", func(f *MovesFile) { f.Moves[1].Key = "R" }, "used by both"},
		{"empty key", func(f *MovesFile) { f.Moves[2].Key = "" }, "no key"},
		{"bad color", func(f *MovesFile) { f.Moves[0].Color = "#12" }, "invalid hex"},
		{"unknown outcome", func(f *MovesFile) { f.Outcomes[0].ID = "draw" }, "unknown outcome"},
		{"missing outcome", func(f *MovesFile) { f.Outcomes = f.Outcomes[1:] }, "not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := valid()
			tt.mutate(&file)
			_, err := NewRegistry(file)
			if err == nil {
				t.Fatal("NewRegistry() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("NewRegistry() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRegistryFS(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.json": &fstest.MapFile{Data: []byte(`{
			"moves": [
				{"id": "rock", "name": "Rock", "glyph": "R", "key": "1", "color": "gray"},
				{"id": "paper", "name": "Paper", "glyph": "P", "key": "2", "color": "white"},
				{"id": "scissors", "name": "Scissors", "glyph": "S", "key": "3", "color": "#ff0000"}
			],
			"outcomes": [
				{"id": "win", "message": "W", "color": "green"},
				{"id": "lose", "message": "L", "color": "red"},
				{"id": "tie", "message": "T", "color": "yellow"}
			]
		}`)},
		"broken.json": &fstest.MapFile{Data: []byte(`{`)},
	}

	registry, err := LoadRegistryFS(fsys, "custom.json")
	if err != nil {
		t.Fatalf("LoadRegistryFS() error: %v", err)
	}
	if m, ok := registry.MoveForKey('3'); !ok || m != round.Scissors {
		t.Errorf("MoveForKey('3') = %v, %v", m, ok)
	}
	if got := registry.Messages().Win; got != "W" {
		t.Errorf("win message = %q, want W", got)
	}

	if _, err := LoadRegistryFS(fsys, "broken.json"); err == nil {
		t.Error("LoadRegistryFS(broken) should fail")
	}
	if _, err := LoadRegistryFS(fsys, "missing.json"); err == nil {
		t.Error("LoadRegistryFS(missing) should fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"red", true},
		{" Yellow ", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}

	if got, _ := ParseColor("#FF0000"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("ParseColor(#FF0000) = %v, want pure red", got)
	}
}

func TestDefMethods(t *testing.T) {
	def := MoveDef{ID: "rock", Name: "Rock", Key: "r", Color: "#FF0000"}
	if def.KeyRune() != 'r' {
		t.Errorf("Expected key 'r', got %c", def.KeyRune())
	}
	if def.TCellColor() == tcell.ColorDefault {
		t.Error("TCellColor returned default color")
	}

	bad := OutcomeDef{Color: "nope"}
	if bad.TCellColor() != tcell.ColorDefault {
		t.Error("TCellColor for bad color should be default")
	}
}
