package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func init() {
	DisableColors()
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v1.2.3", Tagline: "live terminal graphs"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, []string{
		"sysgraph v1.2.3",
		"live terminal graphs",
		strings.Repeat("━", HeaderWidth),
	}, lines)

	out = RenderHeader(HeaderInfo{})
	assert.True(t, strings.HasPrefix(out, "sysgraph\n"))
}

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
		{Title: "Kind", Width: 10},
	}
	rows := []table.Row{
		{"cpu0", "cpu"},
		{"eth0 rx", "net"},
	}

	view := NewTable(columns, rows).View()
	for _, want := range []string{"Name", "Kind", "cpu0", "eth0 rx"} {
		assert.Contains(t, view, want)
	}
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{{Title: "Series", Width: 10}}

	assert.Empty(t, RenderSimpleTable(columns, nil))

	out := RenderSimpleTable(columns, [][]string{{"load1"}, {"load5"}})
	assert.Contains(t, out, "Series")
	assert.Contains(t, out, "load1")
	assert.Contains(t, out, "load5")
}

func TestRenderProbeTable(t *testing.T) {
	out := RenderProbeTable([]ProbeRow{
		{Kind: "cpu", OK: true, Message: "8 series"},
		{Kind: "command", OK: false, Message: "No commands configured", Hint: "Add a commands list"},
		{Kind: "net", OK: false, Message: "permission denied"},
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, []string{
		"  ✓ cpu      8 series",
		"  ✗ command  No commands configured",
		"           Add a commands list",
		"  ✗ net      permission denied",
	}, lines)

	assert.Equal(t, "No graph kinds to probe\n", RenderProbeTable(nil))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}
