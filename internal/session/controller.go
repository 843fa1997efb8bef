package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rpsterm/internal/metrics"
	"github.com/samdwyer/rpsterm/internal/round"
	"github.com/samdwyer/rpsterm/internal/score"
	"github.com/samdwyer/rpsterm/internal/telemetry"
)

// Options wires a Controller to its collaborators. Scheduler, Tracker and
// the two move pickers are required.
type Options struct {
	Resolver  *round.Resolver
	Tracker   *score.Tracker
	Scheduler Scheduler
	Renderer  Renderer
	Confirmer Confirmer
	// ComputerMove picks the computer's reply each round.
	ComputerMove MovePicker
	// AutoMove picks the player's move on each auto-play tick.
	AutoMove MovePicker
	Timing   Timing
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// Controller is the single game session. All methods must be called from
// the goroutine the Scheduler delivers callbacks on.
type Controller struct {
	id        string
	resolver  *round.Resolver
	tracker   *score.Tracker
	scheduler Scheduler
	renderer  Renderer
	confirmer Confirmer
	computer  MovePicker
	autoMove  MovePicker
	timing    Timing
	metrics   *metrics.Recorder
	logger    *slog.Logger

	state      State
	autoPlay   bool
	autoTimer  Timer
	reveal     []Timer
	confirming bool // a reset question is awaiting an answer
}

// New creates a controller in the idle state with auto-play off.
func New(opts Options) *Controller {
	if opts.Resolver == nil {
		opts.Resolver = round.NewResolver(round.DefaultMessages())
	}
	if opts.Renderer == nil {
		opts.Renderer = nopRenderer{}
	}
	if opts.Confirmer == nil {
		opts.Confirmer = denyConfirmer{}
	}
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	id := uuid.NewString()
	return &Controller{
		id:        id,
		resolver:  opts.Resolver,
		tracker:   opts.Tracker,
		scheduler: opts.Scheduler,
		renderer:  opts.Renderer,
		confirmer: opts.Confirmer,
		computer:  opts.ComputerMove,
		autoMove:  opts.AutoMove,
		timing:    opts.Timing,
		metrics:   opts.Metrics,
		logger:    opts.Logger.With("session", id),
		state:     StateIdle,
	}
}

// ID returns the session identifier used in logs and spans.
func (c *Controller) ID() string {
	return c.id
}

// State returns the current round state.
func (c *Controller) State() State {
	return c.state
}

// AutoPlaying reports whether the auto-play trigger is running.
func (c *Controller) AutoPlaying() bool {
	return c.autoPlay
}

// Score returns the current tally.
func (c *Controller) Score() score.Score {
	return c.tracker.Score()
}

// Start pushes the initial score and an empty board to the renderer.
func (c *Controller) Start() {
	c.renderer.ScoreChanged(c.tracker.Summary())
	c.renderer.AutoPlayChanged(c.autoPlay)
	c.renderer.BoardReset()
}

// PlayRound plays player against a fresh computer move. It returns false
// without touching any state when a reveal is still running or the move is
// not valid.
func (c *Controller) PlayRound(ctx context.Context, player round.Move) bool {
	if c.state == StateAnimating {
		c.metrics.RoundIgnored()
		c.logger.Debug("round ignored while animating", "player", player.String())
		return false
	}
	if !player.Valid() {
		c.logger.Debug("round ignored, unknown move", "player", int(player))
		return false
	}

	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "round.play")
	defer span.End()

	c.state = StateAnimating

	rd := c.resolver.Play(player, c.computer())
	c.tracker.Record(rd.Outcome.Kind)
	c.save(ctx, "round")
	c.metrics.RoundPlayed(rd.Outcome.Kind.String())

	span.SetAttributes(
		attribute.String("session.id", c.id),
		attribute.String("player", rd.Player.String()),
		attribute.String("computer", rd.Computer.String()),
		attribute.String("outcome", rd.Outcome.Kind.String()),
		attribute.Bool("autoplay", c.autoPlay),
	)
	c.logger.Info("round played",
		"player", rd.Player.String(),
		"computer", rd.Computer.String(),
		"outcome", rd.Outcome.Kind.String(),
	)

	c.renderer.ScoreChanged(c.tracker.Summary())
	c.renderer.RoundStarted(rd)
	c.scheduleReveal(rd)
	return true
}

// scheduleReveal queues the three reveal steps. The last one returns the
// session to idle.
func (c *Controller) scheduleReveal(rd round.Round) {
	c.reveal = c.reveal[:0]
	c.reveal = append(c.reveal,
		c.scheduler.AfterFunc(c.timing.RevealPlayer, func() {
			c.renderer.RevealPlayer(rd.Player)
		}),
		c.scheduler.AfterFunc(c.timing.RevealComputer, func() {
			c.renderer.RevealComputer(rd.Computer)
		}),
		c.scheduler.AfterFunc(c.timing.RevealOutcome, func() {
			c.renderer.RevealOutcome(rd.Outcome)
			c.reveal = c.reveal[:0]
			c.state = StateIdle
		}),
	)
}

// ToggleAutoPlay switches auto-play on or off and returns the new setting.
func (c *Controller) ToggleAutoPlay(ctx context.Context) bool {
	if c.autoPlay {
		c.stopAutoPlay(ctx)
	} else {
		c.startAutoPlay(ctx)
	}
	return c.autoPlay
}

// StopAutoPlay turns auto-play off if it is on. A reveal in progress is
// left to finish.
func (c *Controller) StopAutoPlay(ctx context.Context) {
	if c.autoPlay {
		c.stopAutoPlay(ctx)
	}
}

func (c *Controller) startAutoPlay(ctx context.Context) {
	_, span := telemetry.Tracer("session").Start(ctx, "autoplay.start")
	span.SetAttributes(attribute.String("session.id", c.id))
	span.End()

	c.autoPlay = true
	c.autoTimer = c.scheduler.AfterFunc(c.timing.AutoPlayInterval, func() {
		c.autoTick(ctx)
	})
	c.metrics.AutoPlayToggled(true)
	c.logger.Info("auto-play started", "interval", c.timing.AutoPlayInterval)
	c.renderer.AutoPlayChanged(true)
}

func (c *Controller) stopAutoPlay(ctx context.Context) {
	_, span := telemetry.Tracer("session").Start(ctx, "autoplay.stop")
	span.SetAttributes(attribute.String("session.id", c.id))
	span.End()

	c.autoPlay = false
	if c.autoTimer != nil {
		c.autoTimer.Stop()
		c.autoTimer = nil
	}
	c.metrics.AutoPlayToggled(false)
	c.logger.Info("auto-play stopped")
	c.renderer.AutoPlayChanged(false)
}

// autoTick plays one random round and re-arms the trigger. Ticks that land
// during a reveal are dropped by PlayRound.
func (c *Controller) autoTick(ctx context.Context) {
	if !c.autoPlay {
		return
	}
	c.autoTimer = c.scheduler.AfterFunc(c.timing.AutoPlayInterval, func() {
		c.autoTick(ctx)
	})
	c.PlayRound(ctx, c.autoMove())
}

// AutoPlayPending reports whether an auto-play trigger is scheduled.
func (c *Controller) AutoPlayPending() bool {
	return c.autoTimer != nil
}

// RequestReset clears the score after the user confirms. With an all-zero
// score nothing happens and no question is asked.
func (c *Controller) RequestReset(ctx context.Context) {
	if c.tracker.IsZero() || c.confirming {
		return
	}

	c.confirming = true
	c.confirmer.Confirm(ResetPrompt, func(ok bool) {
		c.confirming = false
		if !ok {
			c.logger.Debug("score reset declined")
			return
		}
		c.reset(ctx)
	})
}

func (c *Controller) reset(ctx context.Context) {
	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "score.reset")
	defer span.End()

	before := c.tracker.Score()
	span.SetAttributes(
		attribute.String("session.id", c.id),
		attribute.Int("wins", before.Wins),
		attribute.Int("losses", before.Losses),
		attribute.Int("ties", before.Ties),
	)

	c.tracker.Reset()
	c.save(ctx, "reset")
	c.metrics.ScoreReset()
	c.logger.Info("score reset", "previous", before.Summary())

	c.renderer.ScoreChanged(c.tracker.Summary())
	if c.state == StateIdle {
		c.renderer.BoardReset()
	}
}

// save persists the tally. Failures leave the in-memory score in place.
func (c *Controller) save(ctx context.Context, reason string) {
	if err := c.tracker.Save(ctx); err != nil {
		c.metrics.StoreError("save")
		c.logger.Warn("score not saved", "reason", reason, "error", err)
	}
}

// Close stops auto-play and any pending reveal steps.
func (c *Controller) Close() {
	if c.autoTimer != nil {
		c.autoTimer.Stop()
		c.autoTimer = nil
	}
	c.autoPlay = false
	for _, t := range c.reveal {
		t.Stop()
	}
	c.reveal = nil
	c.state = StateIdle
}
