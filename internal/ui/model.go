// Package ui implements the interactive history browser. A single Bubble Tea
// event loop hosts everything: the tick that drives the clipboard poller, the
// read-only render snapshot, and the intent queue that is drained between
// snapshots. No store access ever leaves this loop.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"copycat/internal/clip"
	"copycat/internal/config"
	"copycat/internal/dispatch"
	"copycat/internal/history"
	"copycat/internal/poller"
)

// tickMsg fires at the poll interval; it is the only clock the model sees.
type tickMsg time.Time

// applyMsg requests a drain of queued intents after the current render.
type applyMsg struct{}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

var requestApply tea.Cmd = func() tea.Msg { return applyMsg{} }

// Model is the complete state of the browser. It holds the only mutable
// references to the store, passed explicitly through each update cycle.
type Model struct {
	cfg     config.Config
	store   *history.Store
	poll    *poller.Poller
	actions *dispatch.Dispatcher

	search        textinput.Model
	searching     bool
	favoritesOnly bool

	visible []history.Entry // snapshot rendered by View
	cursor  int
	now     time.Time
	status  string

	width  int
	height int
}

// NewModel builds the initial browser state over an already-loaded store.
func NewModel(cfg config.Config, store *history.Store, poll *poller.Poller, actions *dispatch.Dispatcher) Model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 256

	m := Model{
		cfg:     cfg,
		store:   store,
		poll:    poll,
		actions: actions,
		search:  search,
		now:     time.Now(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick(m.poll.Interval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.poll.Poll(m.now) {
			m.status = "clipboard captured"
		}
		m.actions.Drain()
		m.refresh()
		return m, tick(m.poll.Interval())

	case applyMsg:
		m.actions.Drain()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.refresh()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}

	case "tab":
		m.favoritesOnly = !m.favoritesOnly
		m.cursor = 0
		m.refresh()

	case "enter":
		if e, ok := m.current(); ok {
			m.actions.SelectAndCopy(e.ID, e.Content)
			m.status = "copied to clipboard"
			return m, requestApply
		}

	case "f":
		if e, ok := m.current(); ok {
			m.actions.ToggleFavorite(e.ID)
			return m, requestApply
		}

	case "d", "x":
		if e, ok := m.current(); ok {
			m.actions.Delete(e.ID)
			m.status = "entry deleted"
			return m, requestApply
		}

	case "ctrl+l":
		m.store.ClearNonFavorites()
		m.status = "cleared non-favorites"
		m.refresh()
	}
	return m, nil
}

// refresh recomputes the render snapshot from the store and clamps the
// cursor into range.
func (m *Model) refresh() {
	m.visible = m.store.Filter(m.search.Value(), m.favoritesOnly)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the entry under the cursor.
func (m Model) current() (history.Entry, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return history.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// Run opens the interactive history browser and blocks until the user quits.
// The poller and dispatcher are wired here so that all clipboard traffic
// flows through the one event loop.
func Run(cfg config.Config, store *history.Store, backend clip.Backend) error {
	poll := poller.New(backend, store, cfg.PollInterval)
	actions := dispatch.New(store, backend, poll)

	prog := tea.NewProgram(NewModel(cfg, store, poll, actions), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
