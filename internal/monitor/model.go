package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/logger"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a Model.
type Options struct {
	// Interval between ticks.
	Interval time.Duration

	// Renderer is the name of the renderer shown first.
	Renderer string

	// Labels is the number of labels on each axis.
	Labels int

	// Logger receives tick failures. Wrap it in logger.Throttled to keep a
	// failing sensor from flooding the log.
	Logger logger.Logger
}

// Model is the Bubble Tea model for the live graph.
type Model struct {
	ctx       context.Context
	set       *graph.Set
	interval  time.Duration
	labels    int
	log       logger.Logger
	renderers []Renderer
	renderer  int

	keys keyMap
	help help.Model

	width  int
	height int

	// lastTick is the time of the previous tick, zero before the first.
	lastTick time.Time

	paused     bool
	showHelp   bool
	showLegend bool
	quitting   bool

	lastErr  error
	failures int
}

// tickMsg signals a periodic sample.
type tickMsg time.Time

// NewModel creates a model that drives set.
func NewModel(ctx context.Context, set *graph.Set, opts Options) (Model, error) {
	if opts.Interval <= 0 {
		return Model{}, errors.New(errors.ErrConfig,
			"Tick interval must be positive",
			"Set interval to a duration like 250ms")
	}
	if opts.Labels < 2 {
		opts.Labels = 5
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	renderers := make([]Renderer, 0, len(RendererNames))
	first := -1
	for i, name := range RendererNames {
		r, err := NewRenderer(name)
		if err != nil {
			return Model{}, err
		}
		if name == opts.Renderer {
			first = i
		}
		renderers = append(renderers, r)
	}
	if opts.Renderer == "" {
		first = 0
	}
	if first < 0 {
		_, err := NewRenderer(opts.Renderer)
		return Model{}, err
	}

	return Model{
		ctx:        ctx,
		set:        set,
		interval:   opts.Interval,
		labels:     opts.Labels,
		log:        opts.Logger,
		renderers:  renderers,
		renderer:   first,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      defaultWidth,
		height:     defaultHeight,
		showLegend: true,
	}, nil
}

// Init takes the first sample right away.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.tick(time.Time(msg))
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the graph.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	base := m.renderDashboard()
	if m.showHelp {
		return m.renderHelpOverlay(base)
	}
	return base
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tick advances the set by the measured time since the previous tick.
// While paused the clock keeps moving but nothing is sampled, so the
// paused stretch is not added to elapsed time.
func (m *Model) tick(now time.Time) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if m.paused {
		return
	}

	if err := m.set.Step(m.ctx, dt); err != nil {
		m.lastErr = err
		m.failures++
		m.log.Warn("tick at %.1fs skipped: %s", m.set.Elapsed(), errors.OneLine(err))
		return
	}
	m.lastErr = nil

	if carried := m.set.LastCarried(); len(carried) > 0 {
		m.log.Debug("carried forward %v at %.1fs", carried, m.set.Elapsed())
	}
}

// Renderer returns the active renderer.
func (m Model) Renderer() Renderer {
	return m.renderers[m.renderer]
}

// Paused reports whether sampling is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Failures returns the number of skipped ticks.
func (m Model) Failures() int {
	return m.failures
}

// LastError returns the error of the latest tick, or nil if it succeeded.
func (m Model) LastError() error {
	return m.lastErr
}
