package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// Dashboard color palette
const (
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	AxisStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(ColorCritical).
				Bold(true)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// spanStyle turns a core text span into a lipgloss style.
func spanStyle(s graph.Span) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(s.Bold)
	if s.Color != "" {
		style = style.Foreground(lipgloss.Color(string(s.Color)))
	}
	return style
}

// seriesColor converts a core color to lipgloss. Empty colors fall back to
// the primary text color.
func seriesColor(c graph.Color) lipgloss.Color {
	if c == "" {
		return ColorTextPrimary
	}
	return lipgloss.Color(string(c))
}
