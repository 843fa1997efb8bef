// Package game provides the main event loop and input routing.
package game

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rpsterm/internal/gamedata"
	"github.com/samdwyer/rpsterm/internal/round"
	"github.com/samdwyer/rpsterm/internal/session"
	"github.com/samdwyer/rpsterm/internal/telemetry"
	"github.com/samdwyer/rpsterm/internal/ui"
)

// Game holds the screen and the single session it drives.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.Registry
	session  *session.Controller
	logger   *slog.Logger

	pending   func(ok bool) // answer for the question on screen
	running   bool
	mouseDown bool
	done      chan struct{}
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(screen, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing on screen.
func NewWithScreen(screen *ui.Screen, cfg Config) (*Game, error) {
	if cfg.Tracker == nil {
		return nil, errors.New("game: score tracker is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		reg, err := gamedata.LoadRegistry()
		if err != nil {
			return nil, err
		}
		cfg.Registry = reg
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	pick := func() round.Move { return round.RandomMove(rng) }

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Registry),
		registry: cfg.Registry,
		logger:   cfg.Logger,
		running:  true,
		done:     make(chan struct{}),
	}

	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = newLoopScheduler(screen.Post, g.done, cfg.Logger)
	}

	g.session = session.New(session.Options{
		Resolver:     round.NewResolver(cfg.Registry.Messages()),
		Tracker:      cfg.Tracker,
		Scheduler:    scheduler,
		Renderer:     g.renderer,
		Confirmer:    g,
		ComputerMove: pick,
		AutoMove:     pick,
		Timing:       cfg.Timing,
		Metrics:      cfg.Metrics,
		Logger:       cfg.Logger,
	})
	g.logger.Debug("game created", "session", g.session.ID(), "seed", seed)
	return g, nil
}

// Session returns the controller the game drives.
func (g *Game) Session() *session.Controller {
	return g.session
}

// Run executes the main event loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	g.session.Start()
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID()),
		attribute.String("score", g.session.Score().Summary()),
	)
	initSpan.End()

	go func() {
		select {
		case <-ctx.Done():
			g.post(g.quit)
		case <-g.done:
		}
	}()

	for g.running {
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	g.session.Close()
	close(g.done)
	g.screen.Close()
	return nil
}

func (g *Game) post(fn func()) {
	for i := 0; i < postAttempts; i++ {
		if err := g.screen.Post(fn); err == nil {
			return
		}
		time.Sleep(postBackoff)
	}
}

// handleEvent processes a single event from the queue.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		g.running = false
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		g.handleMouse(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Draw()
	}
}

// handleKey processes keyboard input.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyCtrlC:
		g.quit()
	case tcell.KeyEscape:
		if g.pending != nil {
			g.answer(false)
		}
		g.session.StopAutoPlay(ctx)
	case tcell.KeyRune:
		g.handleRune(ctx, r)
	}
}

func (g *Game) handleRune(ctx context.Context, r rune) {
	if g.pending != nil {
		switch unicode.ToLower(r) {
		case 'y':
			g.answer(true)
		case 'n':
			g.answer(false)
		case 'q':
			g.quit()
		}
		return
	}

	if m, ok := g.registry.MoveForKey(r); ok {
		g.session.PlayRound(ctx, m)
		return
	}

	switch unicode.ToLower(r) {
	case 'a', ' ':
		g.session.ToggleAutoPlay(ctx)
	case 'x':
		g.session.RequestReset(ctx)
	case 'q':
		g.quit()
	}
}

// handleMouse turns a left-button press into a click.
func (g *Game) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !g.mouseDown {
		x, y := ev.Position()
		g.handleClick(ctx, x, y)
	}
	g.mouseDown = pressed
}

func (g *Game) handleClick(ctx context.Context, x, y int) {
	b := g.renderer.ButtonAt(x, y)

	if g.pending != nil {
		switch b {
		case ui.ButtonYes:
			g.answer(true)
		case ui.ButtonNo:
			g.answer(false)
		}
		return
	}

	if m, ok := b.Move(); ok {
		g.session.PlayRound(ctx, m)
		return
	}
	switch b {
	case ui.ButtonAutoPlay:
		g.session.ToggleAutoPlay(ctx)
	case ui.ButtonReset:
		g.session.RequestReset(ctx)
	}
}

// Confirm shows prompt with yes/no buttons. The answer arrives from a later
// key press or click.
func (g *Game) Confirm(prompt string, answer func(ok bool)) {
	g.pending = answer
	g.renderer.ShowConfirm(prompt)
}

func (g *Game) answer(ok bool) {
	fn := g.pending
	if fn == nil {
		return
	}
	g.pending = nil
	g.renderer.HideConfirm()
	fn(ok)
}

func (g *Game) quit() {
	g.running = false
}

// Close cleans up game resources for a game that was never run.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
