package animlist

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestModel(t *testing.T, items []row, opts ...Option) Model[row] {
	t.Helper()
	base := []Option{
		WithDebounce(0),
		WithDuration(testDuration),
		WithEasing(Linear),
		WithLogger(slog.New(slog.DiscardHandler)),
	}
	m, err := New(items, rowKey, func(r row, _ int) string { return r.Label }, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// frameAt builds the next frame tick of m's current chain.
func frameAt[T any](m Model[T], at time.Time) frameMsg {
	return frameMsg{id: m.ID(), gen: m.clock.gen, at: at}
}

// play delivers frames until the list stops animating.
func play(t *testing.T, m Model[row]) Model[row] {
	t.Helper()
	now := time.Now()
	for i := 0; i < 100 && m.Animating(); i++ {
		now = now.Add(testDuration / 4)
		m, _ = m.Update(frameAt(m, now))
	}
	if m.Animating() {
		t.Fatal("list never settled")
	}
	return m
}

// settle pushes items and delivers the debounce tick.
func settle(t *testing.T, m Model[row], items []row) (Model[row], tea.Cmd) {
	t.Helper()
	m, cmd := m.SetItems(items)
	return m.Update(fire(t, cmd))
}

func visible(m Model[row]) []string {
	out := ansi.Strip(m.View())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestNewMissingKey(t *testing.T) {
	_, err := New[row](rows("a"), nil, nil)
	if !errors.Is(err, ErrMissingKeyFunc) {
		t.Fatalf("err = %v, want ErrMissingKeyFunc", err)
	}
}

func TestNewInvalidColor(t *testing.T) {
	_, err := New(rows("a"), rowKey, nil, WithColors("not-a-color", "#000000"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "foreground" {
		t.Fatalf("err = %v, want foreground ConfigError", err)
	}
}

func TestModelInitialAppear(t *testing.T) {
	m := newTestModel(t, rows("a", "b", "c"))
	if m.Init() == nil {
		t.Fatal("Init should start frame ticks for the enter transition")
	}
	if got := m.State().Added.Len(); got != 3 {
		t.Errorf("added = %d, want 3", got)
	}

	m = play(t, m)
	if got := visible(m); strings.Join(got, ",") != "a,b,c" {
		t.Errorf("view = %v, want [a b c]", got)
	}
	if m.State().Added.Len() != 0 {
		t.Errorf("added after appear = %v", m.State().Added)
	}
}

func TestModelRemovalFlow(t *testing.T) {
	m := play(t, newTestModel(t, rows("a", "b", "c")))

	m, cmd := settle(t, m, rows("a", "c"))
	if cmd == nil {
		t.Fatal("applied update should start frame ticks")
	}
	if !m.State().Deleted.Has("b") {
		t.Fatalf("deleted = %v, want b", m.State().Deleted)
	}
	if got := visible(m); strings.Join(got, ",") != "a,b,c" {
		t.Errorf("view while b leaves = %v", got)
	}
	if m.Animation("b") == nil || m.Animation("a") != nil {
		t.Error("only b should carry a timeline")
	}

	m = play(t, m)
	if got := visible(m); strings.Join(got, ",") != "a,c" {
		t.Errorf("view after exit = %v, want [a c]", got)
	}
}

func TestModelAdditionIsImmediate(t *testing.T) {
	m := play(t, newTestModel(t, rows("a", "b", "c")))
	m, _ = settle(t, m, rows("a", "b", "c", "d"))

	if got := m.Len(); got != 4 {
		t.Errorf("rows = %d, want 4 right after the update", got)
	}
	if !m.State().Added.Has("d") {
		t.Errorf("added = %v, want d", m.State().Added)
	}
}

func TestModelDebounceUsesLastValue(t *testing.T) {
	m := play(t, newTestModel(t, rows("a")))

	var cmds []tea.Cmd
	for _, ids := range [][]string{{"a", "b"}, {"a", "b", "c"}, {"a", "x"}} {
		var cmd tea.Cmd
		m, cmd = m.SetItems(rows(ids...))
		cmds = append(cmds, cmd)
	}
	if !m.Pending() {
		t.Error("update should be pending")
	}
	applied := 0
	for _, cmd := range cmds {
		before := m.State()
		m, _ = m.Update(fire(t, cmd))
		if m.State().Len() != before.Len() || m.State().Added.Len() != before.Added.Len() {
			applied++
		}
	}
	if applied != 1 {
		t.Errorf("applied %d updates, want 1", applied)
	}
	if got := keysOf(m.State().Data); strings.Join(got, ",") != "a,x" {
		t.Errorf("data = %v, want [a x]", got)
	}
}

func TestModelNoopUpdateDoesNotAnimate(t *testing.T) {
	m := play(t, newTestModel(t, rows("a", "b")))
	m, cmd := settle(t, m, rows("a", "b"))
	if cmd != nil || m.Animating() {
		t.Error("identical update should not start a transition")
	}
}

func TestModelIgnoresForeignFrames(t *testing.T) {
	m := newTestModel(t, rows("a"))
	m, cmd := m.Update(frameMsg{id: m.ID() + 1000, at: time.Now()})
	if cmd != nil {
		t.Error("foreign frame should not schedule work")
	}
	if m.State().Added.Len() != 1 {
		t.Error("foreign frame advanced the timeline")
	}
}

func TestModelItemHeightCollapses(t *testing.T) {
	m := newTestModel(t, rows("a", "b"), WithItemHeight(2))
	if got := visible(m); len(got) != 0 {
		t.Errorf("entering rows at progress 0 should collapse, got %v", got)
	}
	m = play(t, m)
	if got := visible(m); len(got) != 4 {
		t.Errorf("settled rows should take 2 lines each, got %d lines", len(got))
	}
}

func TestModelCloseStopsUpdates(t *testing.T) {
	m := play(t, newTestModel(t, rows("a", "b")))
	m, cmd := m.SetItems(rows("a"))
	m.Close()

	m, next := m.Update(fire(t, cmd))
	if next != nil || m.Len() != 2 {
		t.Errorf("update applied after close: rows=%d", m.Len())
	}
	if _, cmd := m.SetItems(rows("z")); cmd != nil {
		t.Error("SetItems after close should be a no-op")
	}
}

func TestModelCloseDuringExit(t *testing.T) {
	m := play(t, newTestModel(t, rows("a", "b")))
	m, _ = settle(t, m, rows("a"))
	m.Close()

	now := time.Now()
	for i := 0; i < 10; i++ {
		now = now.Add(testDuration)
		m, _ = m.Update(frameAt(m, now))
	}
	if m.Len() != 2 {
		t.Errorf("exit committed after close: rows=%d", m.Len())
	}
}

func TestModelDefaultRender(t *testing.T) {
	m, err := New([]int{1, 2}, func(n int, _ int) string { return string(rune('0' + n)) }, nil,
		WithDebounce(0), WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	for i := 0; i < 50 && m.Animating(); i++ {
		now = now.Add(DefaultDuration)
		m, _ = m.Update(frameAt(m, now))
	}
	if got := ansi.Strip(m.View()); got != "1\n2" {
		t.Errorf("view = %q, want fmt.Sprint rows", got)
	}
}

func TestModelViewportHeight(t *testing.T) {
	m := play(t, newTestModel(t, rows("a", "b", "c", "d"), WithSize(10, 2)))
	if got := visible(m); len(got) != 2 {
		t.Errorf("viewport shows %d lines, want 2", len(got))
	}
}

func TestModelAnimatesWithoutInit(t *testing.T) {
	// The host never runs Init, so the enter transition has no ticks.
	m := newTestModel(t, rows("a", "b"))

	m, cmd := settle(t, m, rows("a"))
	if cmd == nil {
		t.Fatal("applied update should schedule frames even without Init")
	}
	if !m.State().Deleted.Has("b") {
		t.Fatalf("deleted = %v, want b", m.State().Deleted)
	}

	m = play(t, m)
	if got := keysOf(m.State().Data); strings.Join(got, ",") != "a" {
		t.Errorf("data after exit = %v, want [a]", got)
	}
	if m.State().Deleted.Len() != 0 {
		t.Errorf("deleted after commit = %v", m.State().Deleted)
	}
}

func TestModelInitSchedulesOnce(t *testing.T) {
	m := newTestModel(t, rows("a"))
	if m.Init() == nil {
		t.Fatal("first Init should schedule frames")
	}
	if m.Init() != nil {
		t.Error("second Init should not start another tick chain")
	}
}

func TestModelDropsStaleFrameChain(t *testing.T) {
	m := newTestModel(t, rows("a", "b"))
	if m.Init() == nil {
		t.Fatal("Init should schedule frames")
	}
	stale := frameAt(m, time.Now())

	// An applied update starts a new chain.
	m, cmd := settle(t, m, rows("a"))
	if cmd == nil {
		t.Fatal("applied update should schedule frames")
	}
	before := m.engine.Disappear().Value()

	m, next := m.Update(stale)
	if next != nil {
		t.Error("stale frame should not schedule work")
	}
	if m.engine.Disappear().Value() != before {
		t.Error("stale frame advanced the timeline")
	}

	m = play(t, m)
	if m.Len() != 1 {
		t.Errorf("rows = %d after exit, want 1", m.Len())
	}
}
