package monitor

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// findMinMax returns the minimum and maximum values in a slice.
func findMinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 0
	}
	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// brailleCanvas is a grid of braille cells addressed in dot coordinates,
// (0, 0) being the bottom-left dot. Each cell remembers the color of the
// last series that touched it.
type brailleCanvas struct {
	width, height int // in characters
	cells         [][]rune
	colors        [][]graph.Color
}

func newBrailleCanvas(width, height int) *brailleCanvas {
	c := &brailleCanvas{width: width, height: height}
	c.cells = make([][]rune, height)
	c.colors = make([][]graph.Color, height)
	for i := range c.cells {
		c.cells[i] = make([]rune, width)
		c.colors[i] = make([]graph.Color, width)
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBase
		}
	}
	return c
}

func (c *brailleCanvas) dotsWide() int { return c.width * 2 }
func (c *brailleCanvas) dotsHigh() int { return c.height * 4 }

// set lights one dot. Dots outside the canvas are ignored.
func (c *brailleCanvas) set(x, y int, color graph.Color) {
	if x < 0 || y < 0 || x >= c.dotsWide() || y >= c.dotsHigh() {
		return
	}
	row := c.height - 1 - y/4
	subRow := 3 - y%4
	col := x / 2
	c.cells[row][col] |= rune(1 << brailleDots[subRow][x%2])
	c.colors[row][col] = color
}

// line draws a straight segment between two dots (Bresenham).
func (c *brailleCanvas) line(x0, y0, x1, y1 int, color graph.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String renders the canvas, coloring runs of cells that share a color.
func (c *brailleCanvas) String() string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		var b strings.Builder
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.colors[i][j] == c.colors[i][start] {
				continue
			}
			run := string(row[start:j])
			if color := c.colors[i][start]; color != "" {
				run = lipgloss.NewStyle().Foreground(seriesColor(color)).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RenderBrailleChart draws every dataset as a line chart on the given axis
// bounds. Each character holds 2x4 dots. Segments are clipped to the bounds
// and points that are not finite are skipped; a degenerate range draws
// values on the middle row.
func RenderBrailleChart(datasets []graph.Dataset, x, y graph.Bounds, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := newBrailleCanvas(width, height)
	maxX, maxY := float64(c.dotsWide()-1), float64(c.dotsHigh()-1)

	toDot := func(p graph.Point) (float64, float64) {
		return normalizeValue(p.Time, x.Min, x.Max) * maxX,
			normalizeValue(p.Value, y.Min, y.Max) * maxY
	}

	for _, ds := range datasets {
		for i, p := range ds.Points {
			x1, y1 := toDot(p)
			// After a skipped point the next one starts afresh as a dot.
			x0, y0 := x1, y1
			if i > 0 {
				if px, py := toDot(ds.Points[i-1]); isFinite(px) && isFinite(py) {
					x0, y0 = px, py
				}
			}
			cx0, cy0, cx1, cy1, ok := clipSegment(x0, y0, x1, y1, maxX, maxY)
			if !ok {
				continue
			}
			c.line(int(math.Round(cx0)), int(math.Round(cy0)),
				int(math.Round(cx1)), int(math.Round(cy1)), ds.Color)
		}
	}
	return c.String()
}

// clipSegment clips a segment to [0, maxX] x [0, maxY] (Liang-Barsky) and
// reports whether any of it is left. A segment with a non-finite end is
// dropped whole. A zero-length segment is kept only if it lies inside.
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	for _, v := range [...]float64{x0, y0, x1, y1, dx, dy} {
		if !isFinite(v) {
			return 0, 0, 0, 0, false
		}
	}

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// RenderMiniSparkline renders a single-row sparkline using block characters,
// scaled to bounds. An empty range scales to the data itself.
func RenderMiniSparkline(data []float64, width int, bounds graph.Bounds) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	minVal, maxVal := bounds.Min, bounds.Max
	if maxVal <= minVal {
		minVal, maxVal = findMinMax(data)
	}

	// Short histories fill from the right rather than being stretched.
	resampled := data
	if len(data) > width {
		resampled = resampleData(data, width)
	}

	var result strings.Builder
	result.WriteString(strings.Repeat(" ", width-len(resampled)))
	for _, val := range resampled {
		normalized := normalizeValue(val, minVal, maxVal)
		idx := clampInt(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1)
		result.WriteRune(sparklineBlocks[idx])
	}

	return result.String()
}

// resampleData resamples data to the target size.
// When downsampling (compressing), uses max-based sampling to preserve peaks/spikes.
// When upsampling (expanding), uses linear interpolation.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	// Downsampling: use max within each bucket to preserve peaks
	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}
			if start < 0 {
				start = 0
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxVal {
					maxVal = data[j]
				}
			}
			result[i] = maxVal
		}
		return result
	}

	// Upsampling: linear interpolation
	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}

	return result
}

// sampleAt linearly interpolates points (sorted by time) at t. Times before
// the first point or after the last take the nearest value.
func sampleAt(points []graph.Point, t float64) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}
	if t <= points[0].Time {
		return points[0].Value
	}
	if t >= points[n-1].Time {
		return points[n-1].Value
	}
	// Binary search for the segment containing t.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if points[mid].Time <= t {
			lo = mid
		} else {
			hi = mid
		}
	}
	a, b := points[lo], points[hi]
	if b.Time == a.Time {
		return b.Value
	}
	frac := (t - a.Time) / (b.Time - a.Time)
	return a.Value + (b.Value-a.Value)*frac
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
