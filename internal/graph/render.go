package graph

import "fmt"

// Span is a piece of display text with optional emphasis.
type Span struct {
	Text  string
	Color Color
	Bold  bool
}

// Dataset is one entity's styled point list, ready to draw.
type Dataset struct {
	Name   string
	Color  Color
	Points []Point
}

// Values returns the dataset's values in chronological order.
func (d Dataset) Values() []float64 {
	if len(d.Points) == 0 {
		return nil
	}
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Value
	}
	return out
}

// Renderable is everything a graph widget needs to draw one frame.
// Implementations return copies; nothing a renderer receives aliases state
// that a later update mutates.
type Renderable interface {
	Title() Span
	XAxisLabel() Span
	YAxisLabel() Span
	// Labels returns n y-axis tick labels from the lower to the upper bound.
	Labels(n int) []string
	// XLabels returns n time labels across the window, oldest first.
	XLabels(n int) []string
	XBounds() Bounds
	YBounds() Bounds
	Datasets() []Dataset
	// Format renders a single value the way the y labels are rendered.
	Format(v float64) string
}

// axisLabelColor is ANSI white.
const axisLabelColor Color = "7"

var _ Renderable = (*Set)(nil)

// Title returns the plot title, emphasized.
func (s *Set) Title() Span {
	return Span{Text: s.opts.Title, Bold: true}
}

// XAxisLabel returns the x-axis caption.
func (s *Set) XAxisLabel() Span {
	return Span{Text: s.opts.XLabel, Color: axisLabelColor}
}

// YAxisLabel returns the y-axis caption.
func (s *Set) YAxisLabel() Span {
	return Span{Text: s.opts.YLabel, Color: axisLabelColor}
}

// Labels splits the y range into n evenly spaced, formatted tick labels,
// lowest first. Fewer than two labels still yields the two bounds.
func (s *Set) Labels(n int) []string {
	return boundsLabels(s.axis.Y(), n, s.opts.Format)
}

// XLabels splits the x window into n evenly spaced labels in seconds.
func (s *Set) XLabels(n int) []string {
	return boundsLabels(s.axis.X(), n, func(v float64) string {
		return fmt.Sprintf("%.0fs", v)
	})
}

// XBounds returns the visible time window.
func (s *Set) XBounds() Bounds {
	return s.axis.X()
}

// YBounds returns the visible value range.
func (s *Set) YBounds() Bounds {
	return s.axis.Y()
}

// Datasets returns one dataset per entity in reference order.
func (s *Set) Datasets() []Dataset {
	out := make([]Dataset, len(s.entities))
	for i, e := range s.entities {
		out[i] = Dataset{
			Name:   e.Name,
			Color:  e.Color,
			Points: e.series.Points(),
		}
	}
	return out
}

func boundsLabels(b Bounds, n int, format Formatter) []string {
	if n < 2 {
		n = 2
	}
	labels := make([]string, n)
	step := b.Span() / float64(n-1)
	for i := range labels {
		labels[i] = format(b.Min + step*float64(i))
	}
	// Pin the last label to the bound itself to avoid accumulated drift.
	labels[n-1] = format(b.Max)
	return labels
}

// Snapshot is a self-contained frame of render data.
type Snapshot struct {
	Title    Span
	XLabel   Span
	YLabel   Span
	X        Bounds
	Y        Bounds
	YLabels  []string
	XLabels  []string
	Datasets []Dataset
	// Latest holds the formatted newest value of each dataset, or "" when
	// the dataset is empty.
	Latest []string
}

// TakeSnapshot collects a frame from r with the requested number of labels
// on each axis.
func TakeSnapshot(r Renderable, labels int) Snapshot {
	datasets := r.Datasets()
	latest := make([]string, len(datasets))
	for i, ds := range datasets {
		if n := len(ds.Points); n > 0 {
			latest[i] = r.Format(ds.Points[n-1].Value)
		}
	}
	return Snapshot{
		Title:    r.Title(),
		XLabel:   r.XAxisLabel(),
		YLabel:   r.YAxisLabel(),
		X:        r.XBounds(),
		Y:        r.YBounds(),
		YLabels:  r.Labels(labels),
		XLabels:  r.XLabels(labels),
		Datasets: datasets,
		Latest:   latest,
	}
}
