package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // e.g. "v0.2.0"
	Tagline string // optional
}

// HeaderWidth is the width of the header divider.
const HeaderWidth = 50

// RenderHeader renders the program name, version and tagline over a divider.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	taglineStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	dividerStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("sysgraph"))
	if info.Version != "" {
		b.WriteString(" ")
		b.WriteString(versionStyle.Render(info.Version))
	}
	b.WriteString("\n")

	if info.Tagline != "" {
		b.WriteString(taglineStyle.Render(info.Tagline))
		b.WriteString("\n")
	}

	b.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	b.WriteString("\n")
	return b.String()
}
