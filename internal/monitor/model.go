package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/pidash/internal/config"
)

// tickMsg asks for a sample. Ticks carrying an old sequence number were
// scheduled before a key press cut the wait short and are dropped.
type tickMsg struct {
	seq int
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	sampler  *Sampler
	history  *History
	settings Settings
	theme    Theme
	keys     KeyMap
	help     help.Model
	graph    config.GraphConfig
	journal  string
	version  string
	width    int
	height   int
	last     Snapshot
	seq      int
	quitting bool
}

// NewModel creates the dashboard model. cfg is assumed normalized.
func NewModel(sampler *Sampler, cfg *config.Config, version string) Model {
	settings := SettingsFromConfig(cfg)
	m := Model{
		sampler:  sampler,
		history:  NewHistory(cfg.Graph.Width),
		settings: settings,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		graph:    cfg.Graph,
		journal:  cfg.Sources.JournalUnit,
		version:  version,
	}
	m.setTheme(settings.Color)
	return m
}

// Settings returns the current user settings.
func (m Model) Settings() Settings {
	return m.settings
}

// Last returns the most recent snapshot.
func (m Model) Last() Snapshot {
	return m.last
}

// History returns the graph windows.
func (m Model) History() *History {
	return m.history
}

// Init takes the first sample immediately.
func (m Model) Init() tea.Cmd {
	return m.tickNow()
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.tick()
		return m, m.waitCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// tick samples every metric and records the readings.
func (m *Model) tick() {
	m.last = m.sampler.Sample(m.settings.Interval, m.settings.LogLines)
	m.history.Record(m.last)
}

// handleKey applies at most one control transition. Any bound key ends the
// current wait so the next frame reflects the change.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)
	if action == ActionNone {
		return m, nil
	}

	next, effect := Apply(m.settings, action)
	if next.Color != m.settings.Color {
		m.setTheme(next.Color)
	}
	m.settings = next

	switch effect {
	case EffectQuit:
		m.quitting = true
		return m, tea.Quit
	case EffectClear:
		m.seq++
		return m, tea.Sequence(tea.ClearScreen, m.tickNow())
	default:
		m.seq++
		return m, m.tickNow()
	}
}

func (m *Model) setTheme(mode ColorMode) {
	m.theme = NewTheme(mode)
	m.help.ShortSeparator = " | "
	m.help.Styles.ShortKey = m.theme.Heading
	m.help.Styles.ShortDesc = m.theme.Text
	m.help.Styles.ShortSeparator = m.theme.Muted
}

// tickNow requests a sample right away.
func (m Model) tickNow() tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		return tickMsg{seq: seq}
	}
}

// waitCmd schedules the next sample one interval from now.
func (m Model) waitCmd() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.settings.Interval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}
