package sensors

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// Kind names a family of series that are graphed together.
type Kind string

const (
	KindCPU     Kind = "cpu"
	KindUsage   Kind = "usage"
	KindMemory  Kind = "memory"
	KindLoad    Kind = "load"
	KindNet     Kind = "net"
	KindCommand Kind = "command"
)

// SeriesDef describes one series before it is given a color and turned into an
// entity.
type SeriesDef struct {
	ID     int
	Name   string
	Source graph.SampleSource
}

// CommandDef configures one command-backed series.
type CommandDef struct {
	Name     string
	Command  string
	Args     []string
	JSONPath string
	Timeout  time.Duration
}

// KindInfo carries the presentation defaults of a kind.
type KindInfo struct {
	Title       string
	YLabel      string
	Y           graph.Bounds
	Margin      float64
	Format      graph.Formatter
	Description string
}

var kinds = map[Kind]KindInfo{
	KindCPU: {
		Title:       "Cpu Frequency",
		YLabel:      "Frequency",
		Y:           graph.AutoBounds,
		Margin:      100,
		Format:      graph.FormatMegahertz,
		Description: "current frequency of each logical CPU",
	},
	KindUsage: {
		Title:       "Cpu Usage",
		YLabel:      "Busy",
		Y:           graph.Bounds{Min: 0, Max: 100},
		Format:      graph.FormatPercent,
		Description: "busy percentage of each logical CPU",
	},
	KindMemory: {
		Title:       "Memory",
		YLabel:      "Used",
		Y:           graph.Bounds{Min: 0, Max: 100},
		Format:      graph.FormatPercent,
		Description: "used RAM and swap as a percentage",
	},
	KindLoad: {
		Title:       "Load Average",
		YLabel:      "Load",
		Y:           graph.AutoBounds,
		Margin:      0.25,
		Format:      graph.FormatPlain,
		Description: "1, 5 and 15 minute load averages",
	},
	KindNet: {
		Title:       "Network",
		YLabel:      "Throughput",
		Y:           graph.Bounds{Min: 0, Max: 0},
		Format:      graph.FormatByteRate,
		Description: "received and transmitted bytes per second per interface",
	},
	KindCommand: {
		Title:       "Commands",
		YLabel:      "Value",
		Y:           graph.AutoBounds,
		Format:      graph.FormatPlain,
		Description: "values printed by configured commands",
	},
}

// Kinds returns every known kind in display order.
func Kinds() []Kind {
	return []Kind{KindCPU, KindUsage, KindMemory, KindLoad, KindNet, KindCommand}
}

// Describe returns the presentation defaults of a kind.
func Describe(kind Kind) (KindInfo, error) {
	info, ok := kinds[kind]
	if !ok {
		return KindInfo{}, unknownKind(kind)
	}
	return info, nil
}

func unknownKind(kind Kind) error {
	names := make([]string, 0, len(kinds))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown graph kind %q", kind),
		"Choose one of: "+strings.Join(names, ", "))
}

// Catalog builds the series of a kind. Command defs are only used by
// KindCommand.
func (p *Probe) Catalog(ctx context.Context, kind Kind, commands []CommandDef) ([]SeriesDef, error) {
	switch kind {
	case KindCPU, KindUsage:
		n, err := p.cpuCount(ctx)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrSensor,
				"Couldn't count CPUs", "")
		}
		if n <= 0 {
			return nil, errors.New(errors.ErrSensor, "No CPUs reported", "")
		}
		defs := make([]SeriesDef, 0, n)
		for i := 0; i < n; i++ {
			var src graph.SampleSource = &CoreFrequency{probe: p, CPU: i}
			if kind == KindUsage {
				src = &CoreUsage{probe: p, CPU: i}
			}
			defs = append(defs, SeriesDef{ID: i, Name: fmt.Sprintf("cpu%d", i), Source: src})
		}
		return defs, nil

	case KindMemory:
		return []SeriesDef{
			{ID: 0, Name: "ram", Source: &MemoryUsage{probe: p}},
			{ID: 1, Name: "swap", Source: &SwapUsage{probe: p}},
		}, nil

	case KindLoad:
		return []SeriesDef{
			{ID: 0, Name: "load1", Source: &LoadAverage{probe: p, Minutes: 1}},
			{ID: 1, Name: "load5", Source: &LoadAverage{probe: p, Minutes: 5}},
			{ID: 2, Name: "load15", Source: &LoadAverage{probe: p, Minutes: 15}},
		}, nil

	case KindNet:
		counters, err := p.netIO.get(ctx)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrSensor,
				"Couldn't list network interfaces", "")
		}
		var names []string
		for _, c := range counters {
			if isLoopback(c.Name) {
				continue
			}
			names = append(names, c.Name)
		}
		if len(names) == 0 {
			return nil, errors.New(errors.ErrSensor, "No network interfaces found",
				"Loopback interfaces are not graphed")
		}
		sort.Strings(names)
		defs := make([]SeriesDef, 0, 2*len(names))
		for i, name := range names {
			for _, dir := range []Direction{Receive, Transmit} {
				defs = append(defs, SeriesDef{
					ID:     2*i + int(dir),
					Name:   name + " " + dir.String(),
					Source: &InterfaceRate{probe: p, Interface: name, Direction: dir},
				})
			}
		}
		return defs, nil

	case KindCommand:
		if len(commands) == 0 {
			return nil, errors.New(errors.ErrConfig, "No commands configured",
				"Add a commands list to .sysgraph.yaml")
		}
		defs := make([]SeriesDef, 0, len(commands))
		for i, c := range commands {
			defs = append(defs, SeriesDef{
				ID:     i,
				Name:   c.Name,
				Source: NewCommand(c.Name, c.Command, c.Args, c.JSONPath, c.Timeout),
			})
		}
		return defs, nil
	}
	return nil, unknownKind(kind)
}

func isLoopback(name string) bool {
	return name == "lo" || strings.HasPrefix(name, "lo0") || strings.EqualFold(name, "loopback")
}
