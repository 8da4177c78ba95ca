package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .sysgraph.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Kind is the graph shown when none is given on the command line.
	Kind string `yaml:"kind" mapstructure:"kind"`

	// Interval between samples, as a duration string ("250ms").
	Interval string `yaml:"interval" mapstructure:"interval"`

	// Window is the width of the visible time range ("30s").
	Window string `yaml:"window" mapstructure:"window"`

	// YMin and YMax pin the y range. Unset bounds use the graph's default.
	YMin *float64 `yaml:"y_min,omitempty" mapstructure:"y_min"`
	YMax *float64 `yaml:"y_max,omitempty" mapstructure:"y_max"`

	// Margin is added around new extremes when the y range grows.
	// Unset uses the graph's default.
	Margin *float64 `yaml:"margin,omitempty" mapstructure:"margin"`

	// Labels is the number of y axis labels.
	Labels int `yaml:"labels" mapstructure:"labels"`

	// FailurePolicy is "fail-fast" or "carry-forward".
	FailurePolicy string `yaml:"failure_policy" mapstructure:"failure_policy"`

	// Renderer is "braille" or "drawille".
	Renderer string `yaml:"renderer" mapstructure:"renderer"`

	Palette PaletteConfig `yaml:"palette" mapstructure:"palette"`

	// Commands back the "command" graph, one series each.
	Commands []CommandConfig `yaml:"commands,omitempty" mapstructure:"commands"`
}

// PaletteConfig controls series colors.
type PaletteConfig struct {
	// Mode is "random" or "fixed".
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Seed makes random colors reproducible. Zero picks a new seed each run.
	Seed int64 `yaml:"seed,omitempty" mapstructure:"seed"`
}

// CommandConfig defines one command-backed series.
type CommandConfig struct {
	Name     string   `yaml:"name" mapstructure:"name"`
	Command  string   `yaml:"command" mapstructure:"command"`
	Args     []string `yaml:"args,omitempty" mapstructure:"args"`
	JSONPath string   `yaml:"json_path,omitempty" mapstructure:"json_path"`
	Timeout  string   `yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentConfigVersion,
		Kind:          "cpu",
		Interval:      "250ms",
		Window:        "30s",
		Labels:        5,
		FailurePolicy: "fail-fast",
		Renderer:      "braille",
		Palette: PaletteConfig{
			Mode: "random",
		},
	}
}
