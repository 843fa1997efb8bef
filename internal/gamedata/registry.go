package gamedata

import (
	"fmt"
	"io/fs"
	"unicode"

	"github.com/samdwyer/rpsterm/internal/round"
)

// Registry holds the loaded move and outcome definitions keyed by their
// domain values.
type Registry struct {
	moves    map[round.Move]*MoveDef
	outcomes map[round.OutcomeKind]*OutcomeDef
	keys     map[rune]round.Move
}

// NewRegistry validates the file and indexes it. Every move and every
// outcome must be defined exactly once, and move keys must be distinct.
func NewRegistry(file MovesFile) (*Registry, error) {
	r := &Registry{
		moves:    make(map[round.Move]*MoveDef),
		outcomes: make(map[round.OutcomeKind]*OutcomeDef),
		keys:     make(map[rune]round.Move),
	}

	for i := range file.Moves {
		def := &file.Moves[i]
		m, err := round.ParseMove(def.ID)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", def.ID, err)
		}
		if _, dup := r.moves[m]; dup {
			return nil, fmt.Errorf("move %q defined twice", def.ID)
		}
		if _, err := ParseColor(def.Color); err != nil {
			return nil, fmt.Errorf("move %q: %w", def.ID, err)
		}
		key := unicode.ToLower(def.KeyRune())
		if key == 0 {
			return nil, fmt.Errorf("move %q has no key", def.ID)
		}
		if other, dup := r.keys[key]; dup {
			return nil, fmt.Errorf("key %q used by both %s and %s", key, other, m)
		}
		r.moves[m] = def
		r.keys[key] = m
	}

	for i := range file.Outcomes {
		def := &file.Outcomes[i]
		kind, ok := parseOutcome(def.ID)
		if !ok {
			return nil, fmt.Errorf("unknown outcome %q", def.ID)
		}
		if _, dup := r.outcomes[kind]; dup {
			return nil, fmt.Errorf("outcome %q defined twice", def.ID)
		}
		r.outcomes[kind] = def
	}

	for _, m := range round.Moves() {
		if r.moves[m] == nil {
			return nil, fmt.Errorf("move %s is not defined", m)
		}
	}
	for _, k := range []round.OutcomeKind{round.Win, round.Lose, round.Tie} {
		if r.outcomes[k] == nil {
			return nil, fmt.Errorf("outcome %s is not defined", k)
		}
	}
	return r, nil
}

// LoadRegistry loads and creates a registry from the embedded moves.json.
func LoadRegistry() (*Registry, error) {
	file, err := Load[MovesFile]("moves.json")
	if err != nil {
		return nil, err
	}
	return NewRegistry(file)
}

// LoadRegistryFS loads a registry from a moves.json in fsys.
func LoadRegistryFS(fsys fs.FS, filename string) (*Registry, error) {
	file, err := LoadFS[MovesFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	return NewRegistry(file)
}

func parseOutcome(id string) (round.OutcomeKind, bool) {
	for _, k := range []round.OutcomeKind{round.Win, round.Lose, round.Tie} {
		if k.String() == id {
			return k, true
		}
	}
	return 0, false
}

// Move returns the definition for m, or nil if m is not a move.
func (r *Registry) Move(m round.Move) *MoveDef {
	return r.moves[m]
}

// Outcome returns the definition for kind, or nil if unknown.
func (r *Registry) Outcome(kind round.OutcomeKind) *OutcomeDef {
	return r.outcomes[kind]
}

// MoveForKey returns the move played by key, ignoring case.
func (r *Registry) MoveForKey(key rune) (round.Move, bool) {
	m, ok := r.keys[unicode.ToLower(key)]
	return m, ok
}

// Messages returns the outcome messages for the resolver.
func (r *Registry) Messages() round.Messages {
	return round.Messages{
		Win:  r.outcomes[round.Win].Message,
		Lose: r.outcomes[round.Lose].Message,
		Tie:  r.outcomes[round.Tie].Message,
	}
}
