package animlist

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
)

// Model is a bubbletea component rendering an animated list of T.
type Model[T any] struct {
	id        int
	engine    *Engine[T]
	debouncer *Debouncer[[]T]
	life      *Lifetime
	logger    *slog.Logger

	render    RenderFunc[T]
	presenter RowPresenter
	viewport  viewport.Model
	content   string

	frame time.Duration
	clock *frameClock
}

// frameClock tracks the frame tick chain. It is shared by every copy of a
// Model so a tick scheduled from a value receiver is still seen by Update.
// Only ticks carrying the current generation advance the timelines.
type frameClock struct {
	gen       int
	scheduled bool
	last      time.Time
}

// New mounts a list on items. key is required; a nil render prints items
// with fmt.Sprint. Every initial row starts in the enter transition, so
// Init must be called (or its command run) for it to play.
func New[T any](items []T, key KeyFunc[T], render RenderFunc[T], opts ...Option) (Model[T], error) {
	if key == nil {
		return Model[T]{}, ErrMissingKeyFunc
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fg, err := colorful.Hex(cfg.foreground)
	if err != nil {
		return Model[T]{}, &ConfigError{Field: "foreground", Reason: err.Error()}
	}
	bg, err := colorful.Hex(cfg.background)
	if err != nil {
		return Model[T]{}, &ConfigError{Field: "background", Reason: err.Error()}
	}

	if render == nil {
		render = func(item T, _ int) string { return fmt.Sprint(item) }
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	life := NewLifetime()
	engine, err := NewEngine(items, key, EngineConfig{
		Duration: cfg.duration,
		Easing:   cfg.easing,
		Logger:   logger,
		Lifetime: life,
	})
	if err != nil {
		return Model[T]{}, err
	}

	vp := viewport.New(cfg.width, cfg.height)
	for _, fn := range cfg.viewport {
		fn(&vp)
	}

	m := Model[T]{
		id:        nextID(),
		engine:    engine,
		debouncer: NewDebouncer[[]T](cfg.debounce, life),
		life:      life,
		logger:    logger,
		render:    render,
		presenter: RowPresenter{
			ItemHeight: cfg.itemHeight,
			Width:      cfg.width,
			Foreground: fg,
			Background: bg,
		},
		viewport: vp,
		frame:    time.Second / time.Duration(cfg.frameRate),
		clock:    &frameClock{},
	}
	m.refresh()
	return m, nil
}

// ID returns the component id carried by this list's messages.
func (m Model[T]) ID() int { return m.id }

// Init starts the frame ticks for the initial enter transition. Calling it
// again while ticks are running returns nil.
func (m Model[T]) Init() tea.Cmd {
	if m.clock.scheduled {
		return nil
	}
	return m.startFrames()
}

// SetItems supplies a new version of the collection. It takes effect once
// no further SetItems call has arrived for the debounce window.
func (m Model[T]) SetItems(items []T) (Model[T], tea.Cmd) {
	if !m.life.Alive() {
		return m, nil
	}
	return m, m.debouncer.Push(slices.Clone(items))
}

// Update handles settle and frame messages addressed to this list and passes
// everything else to the viewport.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		items, ok := m.debouncer.Settle(msg)
		if !ok {
			return m, nil
		}
		if !m.engine.Apply(items) {
			return m, nil
		}
		m.refresh()
		return m, m.startFrames()

	case frameMsg:
		if msg.id != m.id || msg.gen != m.clock.gen {
			return m, nil
		}
		return m.advance(msg.at)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible rows.
func (m Model[T]) View() string {
	if m.viewport.Height <= 0 {
		return m.content
	}
	return m.viewport.View()
}

// SetSize resizes the viewport and the row width.
func (m *Model[T]) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.presenter.Width = width
	m.refresh()
}

// State returns the current display state.
func (m Model[T]) State() State[T] { return m.engine.State() }

// Len returns the number of rendered rows, including rows animating out.
func (m Model[T]) Len() int { return m.engine.State().Len() }

// Animating reports whether a transition is playing.
func (m Model[T]) Animating() bool { return m.engine.Animating() }

// Pending reports whether a SetItems call is waiting out its debounce window.
func (m Model[T]) Pending() bool { return m.debouncer.Pending() }

// Animation returns the shared timeline attached to the row with key, or nil
// when the row is at rest.
func (m Model[T]) Animation(key string) *Timeline { return m.engine.Animation(key) }

// Close unmounts the list: the pending update is dropped, in-flight ticks are
// ignored and an exit transition that completes later does not commit.
func (m Model[T]) Close() {
	m.debouncer.Cancel()
	m.engine.Close()
	m.logger.Debug("animlist: closed", "id", m.id)
}

// startFrames begins a new tick chain when a transition is playing. Any tick
// of an earlier chain still in flight becomes stale and is dropped.
func (m Model[T]) startFrames() tea.Cmd {
	if !m.engine.Animating() {
		return nil
	}
	m.clock.gen++
	m.clock.scheduled = true
	m.clock.last = time.Time{}
	return m.tick()
}

func (m Model[T]) advance(now time.Time) (Model[T], tea.Cmd) {
	m.clock.scheduled = false
	if !m.life.Alive() {
		return m, nil
	}

	dt := m.frame
	if !m.clock.last.IsZero() {
		dt = now.Sub(m.clock.last)
	}
	m.clock.last = now
	m.engine.Advance(dt)
	m.refresh()

	if m.engine.Animating() {
		m.clock.scheduled = true
		return m, m.tick()
	}
	m.clock.last = time.Time{}
	return m, nil
}

func (m Model[T]) tick() tea.Cmd {
	id, gen := m.id, m.clock.gen
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen, at: t}
	})
}

func (m *Model[T]) refresh() {
	m.content = m.renderRows()
	m.viewport.SetContent(m.content)
}

// renderRows wraps the caller's renderer: each row gets the progress of the
// timeline its key belongs to, or rests at full visibility.
func (m Model[T]) renderRows() string {
	st := m.engine.State()
	rows := make([]string, 0, len(st.Exact))
	for i, item := range st.Exact {
		progress := 1.0
		if tl := m.engine.Animation(st.Data[i].Key); tl != nil {
			progress = tl.Value()
		}
		if row, ok := m.presenter.Present(m.render(item, i), progress); ok {
			rows = append(rows, row)
		}
	}
	return strings.Join(rows, "\n")
}
