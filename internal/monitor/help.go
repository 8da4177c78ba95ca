package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)
)

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
// The baseContent parameter is preserved for future overlay blending.
func (m Model) renderHelpOverlay(_ string) string {
	full := m.help
	full.ShowAll = true

	lines := []string{
		helpTitleStyle.Render("Keyboard Shortcuts"),
		full.View(m.keys),
		"",
		LabelStyle.Render("Press ? or esc to close"),
	}
	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	// Center the help box using lipgloss.Place
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
	)
}
