package round

// OutcomeKind is the result of a round from the player's point of view.
type OutcomeKind int

const (
	// Win - the player's move beats the computer's
	Win OutcomeKind = iota
	// Lose - the computer's move beats the player's
	Lose
	// Tie - both picked the same move
	Tie
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Outcome contains the kind of result and the message shown for it.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Default outcome messages.
const (
	WinMessage  = "You Win! 🎉"
	LoseMessage = "You Lose! 😢"
	TieMessage  = "It's a Tie! 🤝"
)

// Messages holds the message text for each outcome kind.
type Messages struct {
	Win  string
	Lose string
	Tie  string
}

// DefaultMessages returns the built-in outcome messages.
func DefaultMessages() Messages {
	return Messages{Win: WinMessage, Lose: LoseMessage, Tie: TieMessage}
}

// Round is a resolved player move against a computer move.
type Round struct {
	Player   Move
	Computer Move
	Outcome  Outcome
}

// Resolver decides outcomes and attaches their messages.
type Resolver struct {
	messages Messages
}

// NewResolver creates a resolver using the given messages.
// Empty messages fall back to the defaults.
func NewResolver(messages Messages) *Resolver {
	def := DefaultMessages()
	if messages.Win == "" {
		messages.Win = def.Win
	}
	if messages.Lose == "" {
		messages.Lose = def.Lose
	}
	if messages.Tie == "" {
		messages.Tie = def.Tie
	}
	return &Resolver{messages: messages}
}

// Resolve compares the player's move with the computer's.
func (r *Resolver) Resolve(player, computer Move) Outcome {
	kind := Decide(player, computer)
	return Outcome{Kind: kind, Message: r.message(kind)}
}

// Play resolves a full round.
func (r *Resolver) Play(player, computer Move) Round {
	return Round{
		Player:   player,
		Computer: computer,
		Outcome:  r.Resolve(player, computer),
	}
}

func (r *Resolver) message(kind OutcomeKind) string {
	switch kind {
	case Win:
		return r.messages.Win
	case Lose:
		return r.messages.Lose
	default:
		return r.messages.Tie
	}
}

// Decide returns the outcome kind for player against computer.
func Decide(player, computer Move) OutcomeKind {
	if player == computer {
		return Tie
	}
	if beaten, ok := Beats(player); ok && beaten == computer {
		return Win
	}
	return Lose
}
