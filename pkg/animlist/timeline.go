package animlist

import "time"

// DefaultDuration is the length of one appear or disappear transition.
const DefaultDuration = 200 * time.Millisecond

// Timeline drives a single progress value from a start to an end value over
// a fixed duration. It is advanced explicitly by frame deltas and shared by
// every row in one transition class.
type Timeline struct {
	duration time.Duration
	easing   Easing

	from, to float64
	value    float64
	elapsed  time.Duration
	running  bool

	onComplete func()
}

// NewTimeline returns an idle timeline resting at rest.
func NewTimeline(duration time.Duration, easing Easing, rest float64) *Timeline {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = EaseInOut
	}
	return &Timeline{
		duration: duration,
		easing:   easing,
		from:     rest,
		to:       rest,
		value:    rest,
	}
}

// Run starts the timeline from `from` towards `to`. On an already running
// timeline only the end value is retargeted: elapsed time, start value and
// the pending completion callback are kept.
func (t *Timeline) Run(from, to float64, onComplete func()) {
	if t.running {
		t.Retarget(to)
		return
	}
	t.from = from
	t.to = to
	t.value = from
	t.elapsed = 0
	t.running = true
	t.onComplete = onComplete
}

// Retarget moves the end value of a running timeline.
func (t *Timeline) Retarget(to float64) {
	if !t.running {
		return
	}
	t.to = to
	t.value = t.at(t.elapsed)
}

// Advance moves the timeline forward by dt and returns the new value. When
// the end is reached the timeline stops, holds `to` exactly and calls the
// completion callback once.
func (t *Timeline) Advance(dt time.Duration) float64 {
	if !t.running {
		return t.value
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed < t.duration {
		t.value = t.at(t.elapsed)
		return t.value
	}

	t.value = t.to
	t.running = false
	done := t.onComplete
	t.onComplete = nil
	if done != nil {
		done()
	}
	return t.value
}

// Set places an idle timeline at v. It has no effect while running.
func (t *Timeline) Set(v float64) {
	if t.running {
		return
	}
	t.from, t.to, t.value = v, v, v
}

// Value returns the current progress.
func (t *Timeline) Value() float64 { return t.value }

// Running reports whether the timeline is advancing.
func (t *Timeline) Running() bool { return t.running }

// Target returns the value the timeline is heading to.
func (t *Timeline) Target() float64 { return t.to }

func (t *Timeline) at(elapsed time.Duration) float64 {
	p := float64(elapsed) / float64(t.duration)
	if p > 1 {
		p = 1
	}
	return t.from + (t.to-t.from)*t.easing(p)
}
