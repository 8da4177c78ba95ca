package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/logger"
	"github.com/rileyhilliard/sysgraph/internal/monitor"
	"github.com/rileyhilliard/sysgraph/internal/palette"
	"github.com/rileyhilliard/sysgraph/internal/sensors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Tick warnings are let through at this rate (per second), after a burst.
const (
	tickLogRate  = 0.2
	tickLogBurst = 3
)

// graphFlags holds the flags shared by the root and graph commands.
type graphFlags struct {
	interval string
	window   string
	renderer string
	palette  string
	seed     int64
	policy   string
	labels   int
	yMin     float64
	yMax     float64
	margin   float64
	ticks    int
	headless bool
}

var gflags graphFlags

func addGraphFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&gflags.interval, "interval", "", "time between samples (e.g. 250ms, 1s)")
	f.StringVar(&gflags.window, "window", "", "width of the visible time window (e.g. 30s, 2m)")
	f.StringVar(&gflags.renderer, "renderer", "", "plot renderer: braille or drawille")
	f.StringVar(&gflags.palette, "palette", "", "series colors: random or fixed")
	f.Int64Var(&gflags.seed, "seed", 0, "seed for random colors (0 picks a new one)")
	f.StringVar(&gflags.policy, "failure-policy", "", "on a failed read: fail-fast or carry-forward")
	f.IntVar(&gflags.labels, "labels", 0, "number of y axis labels")
	f.Float64Var(&gflags.yMin, "y-min", 0, "pin the lower bound of the y axis")
	f.Float64Var(&gflags.yMax, "y-max", 0, "pin the upper bound of the y axis")
	f.Float64Var(&gflags.margin, "margin", 0, "headroom added around new extremes")
	f.IntVar(&gflags.ticks, "ticks", 0, "stop after this many ticks when printing (0 runs until interrupted)")
	f.BoolVar(&gflags.headless, "headless", false, "print values instead of drawing, even on a terminal")
}

// graphCmd is the explicit form of the root command.
var graphCmd = &cobra.Command{
	Use:   "graph [kind]",
	Short: "Show a live graph",
	Long: `Sample every series of a kind on a fixed tick and graph the sliding window.

Kinds:
  cpu      current frequency of each logical CPU
  usage    busy percentage of each logical CPU
  memory   used RAM and swap
  load     1, 5 and 15 minute load averages
  net      bytes per second per interface and direction
  command  values printed by the commands in .sysgraph.yaml

Keys: p pause, r reset y range, m switch renderer, l legend, ? help, q quit.

Examples:
  sysgraph graph cpu
  sysgraph graph memory --y-min 0 --y-max 100
  sysgraph graph command --failure-policy carry-forward`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return kindNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return graphCommand(cmd, args)
	},
}

func init() {
	addGraphFlags(graphCmd)
}

// cataloger lists the series of a kind.
type cataloger interface {
	Catalog(ctx context.Context, kind sensors.Kind, commands []sensors.CommandDef) ([]sensors.SeriesDef, error)
}

// graphRun carries the process-level choices of a graph run.
type graphRun struct {
	tty     bool
	ticks   int
	logFile string
}

func graphCommand(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	applyGraphFlags(cfg, args, gflags, cmd.Flags().Changed)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if path != "" {
		logger.New(logger.SourceConfig).Debug("using config %s", path)
	}

	interval, err := cfg.IntervalDuration()
	if err != nil {
		return err
	}
	run := graphRun{
		tty:     !gflags.headless && term.IsTerminal(int(os.Stdout.Fd())),
		ticks:   gflags.ticks,
		logFile: logFile,
	}
	return runGraph(cmd.Context(), cmd.OutOrStdout(), cfg, sensors.NewProbe(interval/2), run)
}

// applyGraphFlags overrides config fields with the flags that were given.
func applyGraphFlags(cfg *config.Config, args []string, f graphFlags, changed func(string) bool) {
	if len(args) > 0 {
		cfg.Kind = args[0]
	}
	if changed("interval") {
		cfg.Interval = f.interval
	}
	if changed("window") {
		cfg.Window = f.window
	}
	if changed("renderer") {
		cfg.Renderer = f.renderer
	}
	if changed("palette") {
		cfg.Palette.Mode = f.palette
	}
	if changed("seed") {
		cfg.Palette.Seed = f.seed
	}
	if changed("failure-policy") {
		cfg.FailurePolicy = f.policy
	}
	if changed("labels") {
		cfg.Labels = f.labels
	}
	if changed("y-min") {
		v := f.yMin
		cfg.YMin = &v
	}
	if changed("y-max") {
		v := f.yMax
		cfg.YMax = &v
	}
	if changed("margin") {
		v := f.margin
		cfg.Margin = &v
	}
}

// buildSet turns a validated config into a graph set: one colored entity
// per series of the configured kind.
func buildSet(ctx context.Context, cfg *config.Config, cat cataloger) (*graph.Set, error) {
	kind := sensors.Kind(cfg.Kind)
	info, err := sensors.Describe(kind)
	if err != nil {
		return nil, err
	}
	window, err := cfg.WindowSeconds()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	defs, err := cat.Catalog(ctx, kind, cfg.CommandDefs())
	if err != nil {
		return nil, err
	}
	colors := palette.Colors(palette.Mode(cfg.Palette.Mode), len(defs), cfg.Palette.Seed)

	entities := make([]*graph.Entity, len(defs))
	for i, s := range defs {
		entities[i] = graph.NewEntity(s.ID, s.Name, colors[i], s.Source)
	}

	return graph.NewSet(graph.Options{
		Title:  info.Title,
		XLabel: "Time",
		YLabel: info.YLabel,
		X:      graph.Bounds{Min: 0, Max: window},
		Y:      cfg.YBounds(info.Y),
		Margin: cfg.MarginOr(info.Margin),
		Format: info.Format,
		Policy: policy,
	}, entities...)
}

// runGraph builds the set and drives it on the terminal or as plain lines.
func runGraph(ctx context.Context, out io.Writer, cfg *config.Config, cat cataloger, run graphRun) error {
	set, err := buildSet(ctx, cfg, cat)
	if err != nil {
		return err
	}
	interval, err := cfg.IntervalDuration()
	if err != nil {
		return err
	}

	if !run.tty {
		return monitor.RunHeadless(ctx, out, set, monitor.HeadlessOptions{
			Interval: interval,
			Ticks:    run.ticks,
			Logger:   logger.NewTickLogger(tickLogRate, tickLogBurst),
		})
	}
	return runTUI(ctx, out, set, cfg, interval, run.logFile)
}

// runTUI runs the full-screen graph until the user quits.
func runTUI(ctx context.Context, out io.Writer, set *graph.Set, cfg *config.Config, interval time.Duration, logPath string) error {
	// The std logger would write over the alternate screen.
	restore, err := logger.Redirect(logPath)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open log file "+logPath,
			"Check the directory exists and is writable")
	}
	defer restore()

	model, err := monitor.NewModel(ctx, set, monitor.Options{
		Interval: interval,
		Renderer: cfg.Renderer,
		Labels:   cfg.Labels,
		Logger:   logger.NewTickLogger(tickLogRate, tickLogBurst),
	})
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"The graph stopped unexpectedly",
			"Try --headless, or a different renderer with --renderer")
	}

	if m, ok := final.(monitor.Model); ok {
		fmt.Fprintf(out, "%d samples over %.1fs", set.Ticks(), set.Elapsed())
		if n := m.Failures(); n > 0 {
			fmt.Fprintf(out, ", %d ticks skipped", n)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func kindNames() []string {
	kinds := sensors.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
