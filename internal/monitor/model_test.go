package monitor

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepSource returns 1, 2, 3, ... and fails while failing is set.
type stepSource struct {
	n       float64
	failing bool
}

func (s *stepSource) Sample(context.Context) (float64, error) {
	if s.failing {
		return 0, fmt.Errorf("sensor offline")
	}
	s.n++
	return s.n, nil
}

func newTestSet(t *testing.T, sources ...graph.SampleSource) *graph.Set {
	t.Helper()
	entities := make([]*graph.Entity, len(sources))
	for i, src := range sources {
		entities[i] = graph.NewEntity(i, fmt.Sprintf("cpu%d", i), "", src)
	}
	set, err := graph.NewSet(graph.Options{
		Title:  "Cpu Frequency",
		XLabel: "Time",
		YLabel: "Frequency",
		X:      graph.Bounds{Min: 0, Max: 10},
		Y:      graph.AutoBounds,
	}, entities...)
	require.NoError(t, err)
	return set
}

func newTestModel(t *testing.T, set *graph.Set, opts Options) Model {
	t.Helper()
	if opts.Interval == 0 {
		opts.Interval = time.Second
	}
	m, err := NewModel(context.Background(), set, opts)
	require.NoError(t, err)
	return m
}

// send feeds one message through Update and returns the new model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	set := newTestSet(t, &stepSource{})
	m := newTestModel(t, set, Options{Interval: 250 * time.Millisecond})

	assert.Equal(t, 250*time.Millisecond, m.interval)
	assert.Equal(t, RendererBraille, m.Renderer().Name())
	assert.Equal(t, 5, m.labels)
	assert.True(t, m.showLegend)
	assert.False(t, m.Paused())
	assert.NotNil(t, m.Init())
}

func TestNewModel_Validation(t *testing.T) {
	set := newTestSet(t, &stepSource{})

	_, err := NewModel(context.Background(), set, Options{})
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	_, err = NewModel(context.Background(), set, Options{Interval: time.Second, Renderer: "ascii"})
	assert.True(t, errors.IsCode(err, errors.ErrRender))

	m, err := NewModel(context.Background(), set, Options{Interval: time.Second, Renderer: RendererDrawille})
	require.NoError(t, err)
	assert.Equal(t, RendererDrawille, m.Renderer().Name())
}

func TestModel_TickUsesMeasuredDelta(t *testing.T) {
	set := newTestSet(t, &stepSource{})
	m := newTestModel(t, set, Options{})
	start := time.Unix(1000, 0)

	m, cmd := send(t, m, tickMsg(start))
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, 0.0, set.Elapsed())
	assert.Equal(t, 1, set.Ticks())

	// A late tick stretches time rather than counting as one interval.
	m, _ = send(t, m, tickMsg(start.Add(1500*time.Millisecond)))
	assert.InDelta(t, 1.5, set.Elapsed(), 1e-9)

	_, _ = send(t, m, tickMsg(start.Add(2*time.Second)))
	assert.InDelta(t, 2.0, set.Elapsed(), 1e-9)

	points := set.Datasets()[0].Points
	require.Len(t, points, 3)
	assert.InDelta(t, 1.5, points[1].Time, 1e-9)
}

func TestModel_FailedTickIsSkippedAndRetried(t *testing.T) {
	src := &stepSource{}
	set := newTestSet(t, src, &stepSource{})
	buf := logger.NewBufferLogger()
	m := newTestModel(t, set, Options{Logger: buf})
	start := time.Unix(0, 0)

	m, _ = send(t, m, tickMsg(start))
	src.failing = true
	m, cmd := send(t, m, tickMsg(start.Add(time.Second)))

	assert.NotNil(t, cmd, "a failed tick still schedules the next one")
	require.Error(t, m.LastError())
	assert.True(t, errors.IsCode(m.LastError(), errors.ErrSensor))
	assert.Equal(t, 1, m.Failures())
	assert.Equal(t, 1, set.Ticks(), "failed tick leaves the set untouched")
	assert.True(t, buf.HasLevel(logger.LevelWarn))
	assert.Contains(t, m.View(), "sensor offline")

	src.failing = false
	m, _ = send(t, m, tickMsg(start.Add(2*time.Second)))
	assert.NoError(t, m.LastError())
	assert.Equal(t, 1, m.Failures())
	assert.Equal(t, 2, set.Ticks())
	for _, ds := range set.Datasets() {
		assert.Len(t, ds.Points, 2)
	}
}

func TestModel_PauseFreezesElapsed(t *testing.T) {
	set := newTestSet(t, &stepSource{})
	m := newTestModel(t, set, Options{})
	start := time.Unix(0, 0)

	m, _ = send(t, m, tickMsg(start))
	m, _ = send(t, m, keyMsg("p"))
	require.True(t, m.Paused())

	m, cmd := send(t, m, tickMsg(start.Add(5*time.Second)))
	assert.NotNil(t, cmd, "ticks keep coming while paused")
	assert.Equal(t, 1, set.Ticks())
	assert.Contains(t, m.View(), "PAUSED")

	m, _ = send(t, m, keyMsg("p"))
	_, _ = send(t, m, tickMsg(start.Add(6*time.Second)))
	assert.InDelta(t, 1.0, set.Elapsed(), 1e-9, "the paused stretch is not counted")
}

func TestModel_Keys(t *testing.T) {
	set := newTestSet(t, &stepSource{})
	m := newTestModel(t, set, Options{})

	m, _ = send(t, m, keyMsg("m"))
	assert.Equal(t, RendererDrawille, m.Renderer().Name())
	m, _ = send(t, m, keyMsg("m"))
	assert.Equal(t, RendererBraille, m.Renderer().Name())

	m, _ = send(t, m, keyMsg("l"))
	assert.False(t, m.showLegend)

	m, _ = send(t, m, keyMsg("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
	m, _ = send(t, m, keyMsg("esc"))
	assert.False(t, m.showHelp)

	handled, _ := m.HandleKeyMsg(keyMsg("z"))
	assert.False(t, handled)
}

func TestModel_ResetY(t *testing.T) {
	src := &stepSource{}
	set := newTestSet(t, src)
	m := newTestModel(t, set, Options{})
	start := time.Unix(0, 0)

	for i := 0; i < 3; i++ {
		m, _ = send(t, m, tickMsg(start.Add(time.Duration(i)*time.Second)))
	}
	assert.Equal(t, graph.Bounds{Min: 1, Max: 3}, set.YBounds())

	_, _ = send(t, m, keyMsg("r"))
	assert.Equal(t, graph.Bounds{}, set.YBounds(), "auto range starts over")
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t, newTestSet(t, &stepSource{}), Options{})
			m, cmd := send(t, m, keyMsg(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, newTestSet(t, &stepSource{}), Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
