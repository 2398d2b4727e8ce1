// Package watch detects when an asynchronously rendered chat answer has
// finished appearing. It watches candidate containers of a live document,
// waits for their text to stabilize across a quiet period, and hands off a
// sanitized answer exactly once. When stability cannot be reached within
// budget it falls back to fixed-interval polling, and finally to a terminal
// not-found error.
package watch

import (
	"context"
	"errors"
	"time"

	"github.com/runnerr0/timeliner/internal/config"
)

// ErrNotFound is the terminal signal: every observation and polling budget
// was exhausted without an acceptable answer.
var ErrNotFound = errors.New("watch: no acceptable answer found")

// errUnstable ends one observation round without reaching stability; the
// watcher restarts or escalates to polling.
var errUnstable = errors.New("watch: candidate text never stabilized")

// Source abstracts the live document under observation: the text of its
// candidate answer containers plus a mutation notification stream.
type Source interface {
	// ReadCandidates returns the concatenated text of all candidate
	// containers at this instant.
	ReadCandidates(ctx context.Context) (string, error)
	// Mutations subscribes to change notifications. The channel closes
	// when ctx is done; the subscription holds no resources past that.
	Mutations(ctx context.Context) (<-chan struct{}, error)
}

// Gate validates candidate text before hand-off. Satisfied by
// sanitize.Sanitizer.
type Gate interface {
	Clean(raw string) string
	IsAcceptable(text string) bool
}

// Result is the single successful hand-off of a watch.
type Result struct {
	Text        string // sanitized answer text
	StableReads int    // consecutive identical observations behind it
	ViaPolling  bool   // true when the polling fallback produced it
}

// Watcher runs the answer-ready state machine over one Source.
// It is single-shot: after a successful Wait it never emits again.
type Watcher struct {
	cfg       config.WatchConfig
	src       Source
	gate      Gate
	delivered bool
}

// New creates a Watcher.
func New(cfg config.WatchConfig, src Source, gate Gate) *Watcher {
	return &Watcher{cfg: cfg, src: src, gate: gate}
}

// Wait blocks until an acceptable answer stabilizes, the polling fallback
// finds one, or every budget is exhausted. It returns ErrNotFound on budget
// exhaustion and the context error on cancellation. The hand-off happens at
// most once per Watcher.
func (w *Watcher) Wait(ctx context.Context) (*Result, error) {
	for restart := 0; restart <= w.cfg.MaxRestarts; restart++ {
		res, err := w.observe(ctx)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, errUnstable) {
			return nil, err
		}
	}
	return w.poll(ctx)
}

// observe runs one push-based observation round: stability checks happen a
// debounce interval after the last mutation burst, bounded by MaxAttempts.
func (w *Watcher) observe(ctx context.Context) (*Result, error) {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	muts, err := w.src.Mutations(subCtx)
	if err != nil {
		return nil, err
	}

	var t tracker
	debounce := time.NewTimer(w.cfg.Debounce())
	defer debounce.Stop()

	for attempts := 0; attempts < w.cfg.MaxAttempts; {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case _, ok := <-muts:
			if !ok {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, errUnstable // subscription broke; restart
			}
			// Coalesce the burst: push the quiet period back.
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(w.cfg.Debounce())

		case <-debounce.C:
			attempts++
			debounce.Reset(w.cfg.Debounce())

			text, err := w.src.ReadCandidates(ctx)
			if err != nil {
				continue
			}
			if t.observe(text) < w.cfg.StabilityThreshold {
				continue
			}
			if res := w.deliver(text, t.stable, false); res != nil {
				return res, nil
			}
			// Stable but rejected: expected, keep observing.
		}
	}
	return nil, errUnstable
}

// poll runs the pull-based fallback: a single acceptable read suffices,
// bounded by MaxPolls.
func (w *Watcher) poll(ctx context.Context) (*Result, error) {
	ticker := time.NewTicker(w.cfg.PollInterval())
	defer ticker.Stop()

	for polls := 0; polls < w.cfg.MaxPolls; polls++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			text, err := w.src.ReadCandidates(ctx)
			if err != nil {
				continue
			}
			if res := w.deliver(text, 1, true); res != nil {
				return res, nil
			}
		}
	}
	return nil, ErrNotFound
}

// deliver gates and emits the candidate. The delivered flag guards against
// duplicate emission from overlapping callbacks; nil means rejected.
func (w *Watcher) deliver(raw string, stable int, polled bool) *Result {
	if w.delivered {
		return nil
	}
	text := w.gate.Clean(raw)
	if !w.gate.IsAcceptable(text) {
		return nil
	}
	w.delivered = true
	return &Result{Text: text, StableReads: stable, ViaPolling: polled}
}
