package monitor

import (
	plot "github.com/chriskim06/drawille-go"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/palette"
)

// drawilleRenderer draws through a drawille canvas. The canvas spaces values
// evenly and scales to the data, so each series is first resampled onto a
// fixed grid across the time window.
type drawilleRenderer struct {
	canvas        *plot.Canvas
	width, height int
}

func (r *drawilleRenderer) Name() string { return RendererDrawille }

func (r *drawilleRenderer) Render(snap graph.Snapshot, width, height int) string {
	if width <= 0 || height <= 0 || len(snap.Datasets) == 0 {
		return ""
	}
	r.resize(width, height)

	columns := width * 2
	data := make([][]float64, 0, len(snap.Datasets))
	colors := make([]plot.Color, 0, len(snap.Datasets))
	for _, ds := range snap.Datasets {
		if len(ds.Points) == 0 {
			continue
		}
		data = append(data, gridValues(ds.Points, snap.X, columns))
		colors = append(colors, palette.Drawille(ds.Color))
	}
	if len(data) == 0 {
		return ""
	}

	r.canvas.NumDataPoints = columns
	r.canvas.LineColors = colors
	r.canvas.Fill(data)
	return r.canvas.String()
}

// resize replaces the canvas when the plot area changes size.
func (r *drawilleRenderer) resize(width, height int) {
	if r.canvas != nil && r.width == width && r.height == height {
		return
	}
	c := plot.NewCanvas(width, height)
	c.ShowAxis = false
	r.canvas = &c
	r.width, r.height = width, height
}

// gridValues samples points at n evenly spaced times across the window.
func gridValues(points []graph.Point, window graph.Bounds, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = sampleAt(points, window.Max)
		return out
	}
	step := window.Span() / float64(n-1)
	for i := range out {
		out[i] = sampleAt(points, window.Min+step*float64(i))
	}
	return out
}
