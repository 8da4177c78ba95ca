package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/sensors"
)

const (
	// MinInterval is the fastest allowed sampling interval.
	MinInterval = 10 * time.Millisecond
	// MaxLabels caps the number of y axis labels.
	MaxLabels = 20
)

// Renderers lists the accepted renderer names.
var Renderers = []string{"braille", "drawille"}

// PaletteModes lists the accepted palette modes.
var PaletteModes = []string{"random", "fixed"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysgraph only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest sysgraph release")
	}

	if _, err := sensors.Describe(sensors.Kind(cfg.Kind)); err != nil {
		return err
	}

	interval, err := cfg.IntervalDuration()
	if err != nil {
		return err
	}
	window, err := parsePositiveDuration("window", cfg.Window)
	if err != nil {
		return err
	}
	if window <= interval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Window %s must be longer than the interval %s", window, interval),
			"Use a window of at least a few intervals, like 30s")
	}

	if cfg.YMin != nil && cfg.YMax != nil && *cfg.YMin >= *cfg.YMax {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("y_min (%g) must be below y_max (%g)", *cfg.YMin, *cfg.YMax),
			"Swap the values or drop one to let the range grow")
	}

	if cfg.Margin != nil && *cfg.Margin < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("margin can't be negative (got %g)", *cfg.Margin),
			"Use 0 for no margin")
	}

	if cfg.Labels < 2 || cfg.Labels > MaxLabels {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("labels must be between 2 and %d (got %d)", MaxLabels, cfg.Labels),
			"Try 5")
	}

	if _, err := graph.ParseFailurePolicy(cfg.FailurePolicy); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Unknown failure_policy %q", cfg.FailurePolicy),
			"Use 'fail-fast' or 'carry-forward'")
	}

	if !oneOf(cfg.Renderer, Renderers) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown renderer %q", cfg.Renderer),
			"Use one of: "+strings.Join(Renderers, ", "))
	}

	if !oneOf(cfg.Palette.Mode, PaletteModes) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown palette mode %q", cfg.Palette.Mode),
			"Use one of: "+strings.Join(PaletteModes, ", "))
	}

	return validateCommands(cfg.Commands)
}

func validateCommands(commands []CommandConfig) error {
	seen := make(map[string]bool, len(commands))
	for i, c := range commands {
		if strings.TrimSpace(c.Name) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Command #%d has no name", i+1),
				"Give every entry under 'commands' a name")
		}
		if seen[c.Name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Command name '%s' is used twice", c.Name),
				"Command names label the series, so they must be unique")
		}
		seen[c.Name] = true

		if strings.TrimSpace(c.Command) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Command '%s' has nothing to run", c.Name),
				"Set 'command' to an executable, with arguments under 'args'")
		}
		if c.Timeout != "" {
			if _, err := parsePositiveDuration("timeout of "+c.Name, c.Timeout); err != nil {
				return err
			}
		}
	}
	return nil
}

// IntervalDuration parses the sampling interval.
func (c *Config) IntervalDuration() (time.Duration, error) {
	d, err := parsePositiveDuration("interval", c.Interval)
	if err != nil {
		return 0, err
	}
	if d < MinInterval {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too fast", d),
			fmt.Sprintf("Use at least %s", MinInterval))
	}
	return d, nil
}

// WindowSeconds returns the window width in seconds.
func (c *Config) WindowSeconds() (float64, error) {
	d, err := parsePositiveDuration("window", c.Window)
	if err != nil {
		return 0, err
	}
	return d.Seconds(), nil
}

// Policy returns the parsed failure policy.
func (c *Config) Policy() (graph.FailurePolicy, error) {
	return graph.ParseFailurePolicy(c.FailurePolicy)
}

// CommandDefs converts the configured commands for the sensors catalog.
func (c *Config) CommandDefs() []sensors.CommandDef {
	defs := make([]sensors.CommandDef, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		var timeout time.Duration
		if cmd.Timeout != "" {
			timeout, _ = time.ParseDuration(cmd.Timeout)
		}
		defs = append(defs, sensors.CommandDef{
			Name:     cmd.Name,
			Command:  cmd.Command,
			Args:     cmd.Args,
			JSONPath: cmd.JSONPath,
			Timeout:  timeout,
		})
	}
	return defs
}

// YBounds resolves the y range from the config over a graph default.
// A single pinned bound keeps the other from the default when that leaves a
// valid range, and otherwise starts as the single value {v, v} so the
// watermark grows it from the data.
func (c *Config) YBounds(def graph.Bounds) graph.Bounds {
	switch {
	case c.YMin != nil && c.YMax != nil:
		return graph.Bounds{Min: *c.YMin, Max: *c.YMax}
	case c.YMin != nil:
		if def.Min <= def.Max && *c.YMin <= def.Max {
			return graph.Bounds{Min: *c.YMin, Max: def.Max}
		}
		return graph.Bounds{Min: *c.YMin, Max: *c.YMin}
	case c.YMax != nil:
		if def.Min <= def.Max && def.Min <= *c.YMax {
			return graph.Bounds{Min: def.Min, Max: *c.YMax}
		}
		return graph.Bounds{Min: *c.YMax, Max: *c.YMax}
	}
	return def
}

// MarginOr returns the configured margin or def when unset.
func (c *Config) MarginOr(def float64) float64 {
	if c.Margin != nil {
		return *c.Margin
	}
	return def
}

func parsePositiveDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid %s %q", field, s),
			"Use a Go duration like 250ms, 2s or 1m")
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("The %s must be positive (got %s)", field, s),
			"Use a Go duration like 250ms, 2s or 1m")
	}
	return d, nil
}

func oneOf(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
