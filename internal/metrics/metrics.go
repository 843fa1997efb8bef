// Package metrics exposes Prometheus counters for played rounds.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the game counters.
type Recorder struct {
	Rounds          *prometheus.CounterVec
	RoundsIgnored   prometheus.Counter
	AutoPlayToggles *prometheus.CounterVec
	Resets          prometheus.Counter
	StoreErrors     *prometheus.CounterVec
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_rounds_total",
				Help: "Total rounds played by outcome",
			},
			[]string{"outcome"},
		),
		RoundsIgnored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rps_rounds_ignored_total",
				Help: "Round requests dropped because a reveal was still animating",
			},
		),
		AutoPlayToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_autoplay_toggles_total",
				Help: "Auto-play state changes",
			},
			[]string{"state"},
		),
		Resets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rps_score_resets_total",
				Help: "Confirmed score resets",
			},
		),
		StoreErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rps_store_errors_total",
				Help: "Score store failures by operation",
			},
			[]string{"op"},
		),
	}

	if reg != nil {
		reg.MustRegister(r.Rounds, r.RoundsIgnored, r.AutoPlayToggles, r.Resets, r.StoreErrors)
	}
	return r
}

// RoundPlayed counts a resolved round.
func (r *Recorder) RoundPlayed(outcome string) {
	if r == nil {
		return
	}
	r.Rounds.WithLabelValues(outcome).Inc()
}

// RoundIgnored counts a round request absorbed by the animation guard.
func (r *Recorder) RoundIgnored() {
	if r == nil {
		return
	}
	r.RoundsIgnored.Inc()
}

// AutoPlayToggled counts an auto-play state change.
func (r *Recorder) AutoPlayToggled(on bool) {
	if r == nil {
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	r.AutoPlayToggles.WithLabelValues(state).Inc()
}

// ScoreReset counts a confirmed reset.
func (r *Recorder) ScoreReset() {
	if r == nil {
		return
	}
	r.Resets.Inc()
}

// StoreError counts a failed store operation.
func (r *Recorder) StoreError(op string) {
	if r == nil {
		return
	}
	r.StoreErrors.WithLabelValues(op).Inc()
}

// Serve exposes /metrics for gatherer on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
