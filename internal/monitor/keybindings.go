package monitor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Faster    key.Binding
	Slower    key.Binding
	MoreLogs  key.Binding
	FewerLogs key.Binding
	Color     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Faster: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		MoreLogs: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "more logs"),
		),
		FewerLogs: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "fewer logs"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// ActionFor maps a key press to an action. Unbound keys map to ActionNone.
func (k KeyMap) ActionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Faster):
		return ActionFaster
	case key.Matches(msg, k.Slower):
		return ActionSlower
	case key.Matches(msg, k.MoreLogs):
		return ActionMoreLogs
	case key.Matches(msg, k.FewerLogs):
		return ActionFewerLogs
	case key.Matches(msg, k.Color):
		return ActionCycleColor
	case key.Matches(msg, k.Quit):
		return ActionQuit
	default:
		return ActionNone
	}
}

// footerKeys describes the controls with the current settings filled in.
type footerKeys []key.Binding

func (f footerKeys) ShortHelp() []key.Binding  { return f }
func (f footerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{f} }

// footerFor builds the help entries shown in the bottom row.
func footerFor(s Settings) footerKeys {
	return footerKeys{
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("[+/-]", fmt.Sprintf("Speed (%s)", s.SpeedLabel()))),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("[c]", fmt.Sprintf("Color (%s)", s.Color))),
		key.NewBinding(key.WithKeys(",", "."), key.WithHelp("[,/.]", fmt.Sprintf("Logs (%d)", s.LogLines))),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("[q]", "Exit")),
	}
}
