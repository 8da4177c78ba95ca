package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the dashboard bindings. It satisfies help.KeyMap.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	ResetY   key.Binding
	Renderer key.Binding
	Legend   key.Binding
	Pause    key.Binding
	Close    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ResetY: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset y range"),
		),
		Renderer: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "switch renderer"),
		),
		Legend: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle legend"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.ResetY, k.Renderer, k.Help}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help, k.Close},
		{k.Pause, k.ResetY},
		{k.Renderer, k.Legend},
	}
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.ResetY):
		m.set.ResetY()
		return true, nil

	case key.Matches(msg, m.keys.Renderer):
		m.renderer = (m.renderer + 1) % len(m.renderers)
		return true, nil

	case key.Matches(msg, m.keys.Legend):
		m.showLegend = !m.showLegend
		return true, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return true, nil
	}

	return false, nil
}
