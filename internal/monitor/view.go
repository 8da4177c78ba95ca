package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// Layout constants
const (
	minChartWidth    = 10
	minChartHeight   = 3
	legendEntryWidth = 36
	legendSparkWidth = 12
)

// renderDashboard renders the complete graph view.
func (m Model) renderDashboard() string {
	snap := graph.TakeSnapshot(m.set, m.labels)

	header := m.renderHeader(snap)
	footer := m.renderFooter()

	var legend string
	if m.showLegend {
		legend = m.renderLegend(snap)
	}

	yLabelWidth := 0
	for _, l := range snap.YLabels {
		yLabelWidth = max(yLabelWidth, lipgloss.Width(l))
	}
	// label + space + axis line
	chartWidth := max(m.width-yLabelWidth-2, minChartWidth)

	used := lipgloss.Height(header) + 1 /* y caption */ + 1 /* x labels */ + lipgloss.Height(footer)
	if legend != "" {
		used += lipgloss.Height(legend)
	}
	chartHeight := max(m.height-used, minChartHeight)

	plot := m.Renderer().Render(snap, chartWidth, chartHeight)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(spanStyle(snap.YLabel).Render(snap.YLabel.Text))
	b.WriteString("\n")
	b.WriteString(renderYAxis(plot, snap.YLabels, yLabelWidth, chartHeight))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yLabelWidth+2))
	b.WriteString(renderXLabels(snap.XLabels, chartWidth, snap.XLabel))
	if legend != "" {
		b.WriteString("\n")
		b.WriteString(legend)
	}
	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

// renderHeader renders the title line with elapsed time and status.
func (m Model) renderHeader(snap graph.Snapshot) string {
	title := spanStyle(snap.Title).Foreground(ColorAccent).Render(snap.Title.Text)

	stats := LabelStyle.Render(fmt.Sprintf(" | %.1fs elapsed | %d samples | %s",
		m.set.Elapsed(), m.set.Ticks(), m.Renderer().Name()))

	status := ""
	if m.paused {
		status = " " + PausedStyle.Render("PAUSED")
	}

	return HeaderStyle.Render(title + stats + status)
}

// renderYAxis prefixes each plot row with its y label and an axis line.
// Labels are spread evenly from the bottom row (lowest) to the top row.
func renderYAxis(plot string, labels []string, labelWidth, height int) string {
	rows := strings.Split(plot, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}

	byRow := make(map[int]string, len(labels))
	if n := len(labels); n > 0 {
		for i, l := range labels {
			row := height - 1
			if n > 1 {
				row = int(math.Round(float64(height-1) * (1 - float64(i)/float64(n-1))))
			}
			byRow[row] = l
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		label := fmt.Sprintf("%*s", labelWidth, byRow[i])
		tick := "│"
		if _, ok := byRow[i]; ok {
			tick = "┤"
		}
		lines[i] = MutedStyle.Render(label) + " " + AxisStyle.Render(tick) + row
	}
	return strings.Join(lines, "\n")
}

// renderXLabels spreads labels across width, followed by the axis caption
// when it fits. Labels that would overlap the previous one are dropped.
func renderXLabels(labels []string, width int, caption graph.Span) string {
	line := []rune(strings.Repeat(" ", width))
	end := -1
	n := len(labels)
	for i, l := range labels {
		text := []rune(l)
		pos := 0
		if n > 1 {
			pos = int(math.Round(float64(i) * float64(width-1) / float64(n-1)))
		}
		start := pos - len(text)/2
		if start < 0 {
			start = 0
		}
		if start+len(text) > width {
			start = width - len(text)
		}
		if start <= end || start < 0 {
			continue
		}
		copy(line[start:], text)
		end = start + len(text)
	}

	out := MutedStyle.Render(string(line))
	if caption.Text != "" {
		out += " " + spanStyle(caption).Render(caption.Text)
	}
	return out
}

// renderLegend renders one entry per dataset: a color swatch, the name, the
// latest value and a sparkline of the visible window.
func (m Model) renderLegend(snap graph.Snapshot) string {
	perRow := max(m.width/legendEntryWidth, 1)

	var rows []string
	var row []string
	for i, ds := range snap.Datasets {
		color := lipgloss.NewStyle().Foreground(seriesColor(ds.Color))
		value := snap.Latest[i]
		if value == "" {
			value = "-"
		}
		entry := color.Render("●") + " " +
			LabelStyle.Width(8).Render(truncate(ds.Name, 8)) + " " +
			lipgloss.NewStyle().Width(10).Render(value) + " " +
			color.Render(RenderMiniSparkline(ds.Values(), legendSparkWidth, snap.Y))
		row = append(row, lipgloss.NewStyle().Width(legendEntryWidth).Render(entry))

		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// renderFooter renders key help, the skip counter and the latest error.
func (m Model) renderFooter() string {
	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.failures > 0 {
		line += MutedStyle.Render(fmt.Sprintf("  %d ticks skipped", m.failures))
	}
	footer := FooterStyle.Render(line)

	if m.lastErr != nil {
		msg := errors.OneLine(m.lastErr)
		banner := ErrorBannerStyle.Render("✗ " + truncate(msg, max(m.width-4, 10)))
		footer = FooterStyle.Render(banner) + "\n" + footer
	}
	return footer
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
