// Package viewer is the interactive terminal program that shows a live row
// source through an animated list with a fuzzy filter.
package viewer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/fadelist/internal/config"
	"github.com/marcus/fadelist/internal/source"
	"github.com/marcus/fadelist/pkg/animlist"
)

// RowsMsg delivers a new snapshot from the running source.
type RowsMsg struct {
	Rows []source.Row
}

// ErrMsg reports a source failure to the status line.
type ErrMsg struct {
	Err error
}

// Model is the top-level viewer program model.
type Model struct {
	list  animlist.Model[source.Row]
	keys  keyMap
	help  help.Model
	input textinput.Model

	title     string
	rows      []source.Row
	shown     int
	filtering bool
	err       error

	width  int
	height int
}

// ListOptions converts resolved settings into list options.
func ListOptions(cfg config.Config, logger *slog.Logger) []animlist.Option {
	return []animlist.Option{
		animlist.WithDebounce(cfg.Debounce()),
		animlist.WithDuration(cfg.Duration()),
		animlist.WithFrameRate(cfg.FrameRate),
		animlist.WithItemHeight(cfg.ItemHeight),
		animlist.WithColors(cfg.Foreground, cfg.Background),
		animlist.WithLogger(logger),
	}
}

// New builds an empty viewer titled after the source.
func New(title string, cfg config.Config, logger *slog.Logger) (Model, error) {
	list, err := animlist.New(nil, source.Key, RenderRow, ListOptions(cfg, logger)...)
	if err != nil {
		return Model{}, fmt.Errorf("create list: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = FilterPrompt
	ti.Placeholder = "filter"
	ti.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		list:  list,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: ti,
		title: title,
	}, nil
}

// RenderRow draws a source row as its label followed by the muted detail.
func RenderRow(r source.Row, _ int) string {
	s := RowLabel.Render(r.Label)
	if r.Detail != "" {
		s += "  " + RowDetail.Render(r.Detail)
	}
	return s
}

func (m Model) Init() tea.Cmd {
	return m.list.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case RowsMsg:
		m.rows = msg.Rows
		m.err = nil
		return m.refilter()

	case ErrMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.list.Close()
			return m, tea.Quit
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.list.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.ClearFilter):
			if m.input.Value() == "" {
				return m, nil
			}
			m.input.Reset()
			return m.refilter()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ClearFilter):
		m.filtering = false
		m.input.Blur()
		m.input.Reset()
		return m.refilter()
	case key.Matches(msg, m.keys.Accept):
		m.filtering = false
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	next, listCmd := m.refilter()
	return next, tea.Batch(cmd, listCmd)
}

// refilter hands the rows matching the current query to the list, which
// animates whatever entered or left the result set.
func (m Model) refilter() (Model, tea.Cmd) {
	visible := filterRows(m.rows, m.input.Value())
	m.shown = len(visible)
	var cmd tea.Cmd
	m.list, cmd = m.list.SetItems(visible)
	return m, cmd
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 0)
	body := m.height - 1 - lipgloss.Height(m.footer())
	m.list.SetSize(m.width, max(body, 0))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	if body := m.list.View(); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) header() string {
	count := fmt.Sprintf(" %d/%d", m.shown, len(m.rows))
	if q := m.input.Value(); q != "" && !m.filtering {
		count += fmt.Sprintf("  filter: %s", q)
	}
	return Title.Render(m.title) + MutedText.Render(count)
}

func (m Model) footer() string {
	switch {
	case m.filtering:
		return m.input.View()
	case m.err != nil:
		return ErrorText.Render("error: " + m.err.Error())
	default:
		return StatusBar.Render(m.help.View(m.keys))
	}
}

// Displayed returns the rows on screen, exiting ones included.
func (m Model) Displayed() []source.Row {
	return m.list.State().Data.Items()
}

// Animating reports whether a transition is in flight.
func (m Model) Animating() bool { return m.list.Animating() }

// Settled reports whether the list has no pending update or transition.
func (m Model) Settled() bool { return !m.list.Pending() && !m.list.Animating() }

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool { return m.filtering }

// Close ends the list's pending work.
func (m Model) Close() { m.list.Close() }
