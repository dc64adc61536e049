package animlist

import (
	"log/slog"
	"time"
)

// Engine owns the display state of one list, the two shared timelines and
// the liveness handle. It is not safe for concurrent use; drive it from the
// goroutine that renders.
type Engine[T any] struct {
	key   KeyFunc[T]
	state State[T]
	input Snapshot[T]

	appear    *Timeline
	disappear *Timeline

	life   *Lifetime
	logger *slog.Logger
}

// NewEngine mounts an engine on the initial items. Every initial row starts
// in the enter transition.
func NewEngine[T any](items []T, key KeyFunc[T], cfg EngineConfig) (*Engine[T], error) {
	if key == nil {
		return nil, ErrMissingKeyFunc
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Lifetime == nil {
		cfg.Lifetime = NewLifetime()
	}

	snap := BuildSnapshot(items, key)
	e := &Engine[T]{
		key:       key,
		state:     InitialState(snap),
		input:     snap,
		appear:    NewTimeline(cfg.Duration, cfg.Easing, 0),
		disappear: NewTimeline(cfg.Duration, cfg.Easing, 1),
		life:      cfg.Lifetime,
		logger:    cfg.Logger,
	}
	e.startTimelines()
	return e, nil
}

// EngineConfig tunes an Engine. Zero values select defaults.
type EngineConfig struct {
	Duration time.Duration
	Easing   Easing
	Logger   *slog.Logger
	Lifetime *Lifetime
}

// Apply feeds a debounced collection into the state machine. It reports
// whether the display state changed.
func (e *Engine[T]) Apply(items []T) bool {
	if !e.life.Alive() {
		return false
	}
	next := BuildSnapshot(items, e.key)
	e.input = next

	diff := ComputeDiff(e.state.Data, next)
	if diff.Empty() {
		return false
	}
	e.dispatch(Updated[T]{Diff: diff})
	e.logger.Debug("animlist: update applied",
		"added", len(diff.Added), "removed", len(diff.Removed), "rows", len(diff.Merged))
	e.startTimelines()
	return true
}

// Advance moves both timelines forward by dt. Completion handlers run
// synchronously from here.
func (e *Engine[T]) Advance(dt time.Duration) {
	e.appear.Advance(dt)
	e.disappear.Advance(dt)
}

// Animating reports whether either timeline is running.
func (e *Engine[T]) Animating() bool {
	return e.appear.Running() || e.disappear.Running()
}

// State returns the current display state.
func (e *Engine[T]) State() State[T] { return e.state }

// Animation returns the timeline driving the row with the given key, or nil
// for a row at rest. Leaving takes precedence over entering.
func (e *Engine[T]) Animation(key string) *Timeline {
	switch {
	case e.state.Deleted.Has(key):
		return e.disappear
	case e.state.Added.Has(key):
		return e.appear
	default:
		return nil
	}
}

// Appear returns the shared enter timeline.
func (e *Engine[T]) Appear() *Timeline { return e.appear }

// Disappear returns the shared exit timeline.
func (e *Engine[T]) Disappear() *Timeline { return e.disappear }

// Close tears the engine down. Pending exit commits are suppressed.
func (e *Engine[T]) Close() { e.life.End() }

func (e *Engine[T]) dispatch(ev Event[T]) {
	e.state = Reduce(e.state, ev)
}

func (e *Engine[T]) startTimelines() {
	if e.state.Deleted.Len() > 0 {
		e.disappear.Run(1, 0, e.commitDisappear)
	}
	if e.state.Added.Len() > 0 {
		e.appear.Run(0, 1, e.completeAppear)
	}
}

func (e *Engine[T]) commitDisappear() {
	if !e.life.Alive() {
		e.logger.Debug("animlist: exit commit suppressed after close",
			"pending", e.state.Deleted.Len())
		return
	}
	removed := e.state.Deleted.Len()
	e.dispatch(DisappearCommitted[T]{Input: e.input})
	e.disappear.Set(1)
	e.logger.Debug("animlist: exit committed", "removed", removed, "rows", e.state.Len())
}

func (e *Engine[T]) completeAppear() {
	e.dispatch(AppearCompleted[T]{})
	e.logger.Debug("animlist: enter completed", "rows", e.state.Len())
}
