package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a non-focused Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is focused, so the cursor row must look like any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a table as a plain string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}
	return NewTable(columns, tableRows).View()
}

// ProbeRow is the outcome of probing one graph kind on this host.
type ProbeRow struct {
	Kind    string
	OK      bool
	Message string // series found, or the error
	Hint    string // shown for failures only
}

// RenderProbeTable lists probe results, one line per kind.
func RenderProbeTable(rows []ProbeRow) string {
	if len(rows) == 0 {
		return "No graph kinds to probe\n"
	}

	okStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	failStyle := lipgloss.NewStyle().Foreground(ColorError)
	kindStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	width := 0
	for _, r := range rows {
		width = max(width, len(r.Kind))
	}

	var b strings.Builder
	for _, r := range rows {
		icon := okStyle.Render(SymbolSuccess)
		if !r.OK {
			icon = failStyle.Render(SymbolFail)
		}
		b.WriteString("  " + icon + " " + kindStyle.Render(padRight(r.Kind, width)) + "  " + r.Message + "\n")
		if !r.OK && r.Hint != "" {
			b.WriteString("    " + strings.Repeat(" ", width) + mutedStyle.Render(r.Hint) + "\n")
		}
	}
	return b.String()
}

// padRight pads s to width visible cells.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
