package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/monitor"
	"github.com/rileyhilliard/sysgraph/internal/palette"
	"github.com/rileyhilliard/sysgraph/internal/sensors"
	"github.com/rileyhilliard/sysgraph/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Kind           string // Pre-selected graph kind
	Global         bool   // Write the user-wide config instead of ./.sysgraph.yaml
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init writes a new config file, asking for the main settings unless
// running non-interactively.
func Init(out io.Writer, opts InitOptions) error {
	path := filepath.Join(".", config.ConfigFileName)
	if opts.Global {
		path = config.GlobalPath()
		if path == "" {
			return errors.New(errors.ErrConfig,
				"Couldn't locate your home directory",
				"Write a project config instead by dropping --global")
		}
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Kind != "" {
		cfg.Kind = opts.Kind
	}

	if !opts.NonInteractive {
		if err := initForm(cfg).Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}
		cfg.Interval = strings.TrimSpace(cfg.Interval)
		cfg.Window = strings.TrimSpace(cfg.Window)
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(path, cfg, true); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, path)
	fmt.Fprintf(out, "Start graphing with: sysgraph %s\n", cfg.Kind)
	return nil
}

// initForm asks for the settings most people change, writing into cfg.
func initForm(cfg *config.Config) *huh.Form {
	kinds := make([]huh.Option[string], 0, len(sensors.Kinds()))
	for _, k := range sensors.Kinds() {
		info, _ := sensors.Describe(k)
		kinds = append(kinds, huh.NewOption(fmt.Sprintf("%-8s %s", k, info.Description), string(k)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default graph").
				Options(kinds...).
				Value(&cfg.Kind),
			huh.NewInput().
				Title("Sample interval").
				Description("Time between samples").
				Placeholder("250ms").
				Value(&cfg.Interval).
				Validate(validateDurationInput),
			huh.NewInput().
				Title("Time window").
				Description("How much history the graph shows").
				Placeholder("30s").
				Value(&cfg.Window).
				Validate(validateDurationInput),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Renderer").
				Options(huh.NewOptions(monitor.RendererNames...)...).
				Value(&cfg.Renderer),
			huh.NewSelect[string]().
				Title("Series colors").
				Options(huh.NewOptions(string(palette.ModeRandom), string(palette.ModeFixed))...).
				Value(&cfg.Palette.Mode),
			huh.NewSelect[string]().
				Title("When a sensor read fails").
				Options(
					huh.NewOption("Skip the tick", graph.FailFast.String()),
					huh.NewOption("Repeat the last value", graph.CarryForward.String()),
				).
				Value(&cfg.FailurePolicy),
		),
	)
}

func validateDurationInput(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 250ms or 30s")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// nonInteractiveEnv reports whether prompts should be skipped because
// SYSGRAPH_NON_INTERACTIVE or CI is set.
func nonInteractiveEnv() bool {
	for _, name := range []string{"SYSGRAPH_NON_INTERACTIVE", "CI"} {
		switch strings.ToLower(os.Getenv(name)) {
		case "1", "true", "yes":
			return true
		}
	}
	return false
}
