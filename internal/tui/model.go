package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhilc162005/anti-location-tracker/internal/app/session"
)

// Mode selects which dashboard the model renders.
type Mode int

const (
	ModeMonitor Mode = iota
	ModeTracker
)

// refreshInterval drives the redraw poll; sessions tick on their own
// schedule.
const refreshInterval = 500 * time.Millisecond

type refreshMsg time.Time

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

type keyMap struct {
	Start key.Binding
	Stop  key.Binding
	Links key.Binding
	Route key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Links, k.Route, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Stop}, {k.Links, k.Route, k.Quit}}
}

var keys = keyMap{
	Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Stop:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
	Links: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "share links")),
	Route: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "route mode")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the single dashboard for both monitoring and tracking.
type Model struct {
	mode    Mode
	theme   Theme
	monitor *session.Monitor
	tracker *session.Tracker

	spinner   spinner.Model
	help      help.Model
	showLinks bool
	width     int
	lastErr   error

	monSnap   session.MonitorSnapshot
	trackSnap session.TrackerSnapshot
}

// NewMonitorModel builds the signal-monitoring dashboard.
func NewMonitorModel(m *session.Monitor, theme Theme) Model {
	return newModel(ModeMonitor, theme, m, nil)
}

// NewTrackerModel builds the location-tracking dashboard.
func NewTrackerModel(t *session.Tracker, theme Theme) Model {
	return newModel(ModeTracker, theme, nil, t)
}

func newModel(mode Mode, theme Theme, m *session.Monitor, t *session.Tracker) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.KeyHint
	return Model{
		mode:    mode,
		theme:   theme,
		monitor: m,
		tracker: t,
		spinner: sp,
		help:    help.New(),
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.stopSession()
			return m, tea.Quit
		case key.Matches(msg, keys.Start):
			m.lastErr = m.startSession()
			return m, nil
		case key.Matches(msg, keys.Stop):
			m.stopSession()
			return m, nil
		case key.Matches(msg, keys.Links):
			if m.mode == ModeTracker {
				m.showLinks = !m.showLinks
			}
			return m, nil
		case key.Matches(msg, keys.Route):
			if m.mode == ModeTracker && m.tracker != nil {
				m.tracker.SetRouteMode(!m.trackSnap.RouteMode)
			}
			return m, nil
		}
		return m, nil

	case refreshMsg:
		if m.monitor != nil {
			m.monSnap = m.monitor.Snapshot()
		}
		if m.tracker != nil {
			m.trackSnap = m.tracker.Snapshot()
		}
		return m, refreshCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) startSession() error {
	switch m.mode {
	case ModeMonitor:
		if m.monitor != nil {
			return m.monitor.Start()
		}
	case ModeTracker:
		if m.tracker != nil {
			return m.tracker.Start()
		}
	}
	return nil
}

func (m Model) stopSession() {
	if m.monitor != nil {
		m.monitor.Stop()
	}
	if m.tracker != nil {
		m.tracker.Stop()
	}
}
