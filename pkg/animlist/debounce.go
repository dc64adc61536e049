package animlist

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the quiescence window applied to SetItems.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer holds back a changing value until it has been stable for the
// configured delay. Every Push schedules a tick tagged with a sequence
// number; only the tick carrying the latest tag settles the value, so a
// newer Push effectively cancels the older timer.
type Debouncer[V any] struct {
	id      int
	delay   time.Duration
	tag     int
	pending V
	armed   bool
	life    *Lifetime
}

// NewDebouncer returns a debouncer bound to life. Ticks arriving after life
// has ended never settle.
func NewDebouncer[V any](delay time.Duration, life *Lifetime) *Debouncer[V] {
	if delay < 0 {
		delay = 0
	}
	if life == nil {
		life = NewLifetime()
	}
	return &Debouncer[V]{id: nextID(), delay: delay, life: life}
}

// Push records v as the pending value and restarts the window. Values are
// not compared: pushing an equal value still restarts it.
func (d *Debouncer[V]) Push(v V) tea.Cmd {
	d.tag++
	d.pending = v
	d.armed = true

	id, tag := d.id, d.tag
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return settleMsg{id: id, tag: tag}
	})
}

// Settle returns the pending value if msg is the tick for the latest Push.
func (d *Debouncer[V]) Settle(msg tea.Msg) (V, bool) {
	var zero V
	m, ok := msg.(settleMsg)
	if !ok || m.id != d.id {
		return zero, false
	}
	if m.tag != d.tag || !d.armed || !d.life.Alive() {
		return zero, false
	}
	v := d.pending
	d.pending = zero
	d.armed = false
	return v, true
}

// Pending reports whether a value is waiting for its window to elapse.
func (d *Debouncer[V]) Pending() bool { return d.armed }

// Cancel drops the pending value and invalidates any tick in flight.
func (d *Debouncer[V]) Cancel() {
	var zero V
	d.tag++
	d.pending = zero
	d.armed = false
}
