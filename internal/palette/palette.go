// Package palette assigns series colors at construction time.
package palette

import (
	"math/rand"
	"strconv"
	"time"

	plot "github.com/chriskim06/drawille-go"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// Mode selects how colors are picked.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeFixed  Mode = "fixed"
)

// minValue keeps random colors readable on a dark terminal.
const minValue = 0.55

// Random returns n random colors as hex strings. The same non-zero seed
// always yields the same colors; seed 0 seeds from the clock.
func Random(n int, seed int64) []graph.Color {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	colors := make([]graph.Color, n)
	for i := range colors {
		h := rng.Float64() * 360
		s := 0.45 + rng.Float64()*0.5
		v := minValue + rng.Float64()*(1-minValue)
		colors[i] = graph.Color(colorful.Hsv(h, s, v).Hex())
	}
	return colors
}

// ansi is the cycle used by Fixed: the bright ANSI colors, then the normal ones.
var ansi = []graph.Color{"9", "10", "11", "12", "13", "14", "1", "2", "3", "4", "5", "6"}

// Fixed returns n ANSI colors, cycling when n exceeds the palette.
func Fixed(n int) []graph.Color {
	colors := make([]graph.Color, n)
	for i := range colors {
		colors[i] = ansi[i%len(ansi)]
	}
	return colors
}

// Colors picks n colors for the given mode. Unknown modes fall back to random.
func Colors(mode Mode, n int, seed int64) []graph.Color {
	if mode == ModeFixed {
		return Fixed(n)
	}
	return Random(n, seed)
}

// hueStops maps the six primary hues onto drawille's named colors.
var hueStops = []struct {
	hue   float64
	color plot.Color
}{
	{0, plot.Red},
	{60, plot.Yellow},
	{120, plot.Green},
	{180, plot.Cyan},
	{240, plot.Blue},
	{300, plot.Magenta},
}

// ansiDrawille maps ANSI color indexes to drawille colors.
var ansiDrawille = map[int]plot.Color{
	0: plot.DimGray, 1: plot.Red, 2: plot.Green, 3: plot.Yellow,
	4: plot.Blue, 5: plot.Magenta, 6: plot.Cyan, 7: plot.LightGray,
	8: plot.DimGray, 9: plot.Red, 10: plot.Green, 11: plot.Yellow,
	12: plot.Blue, 13: plot.Magenta, 14: plot.Cyan, 15: plot.LightGray,
}

// Drawille returns the drawille color closest to c. Hex colors are matched
// by hue; washed out ones become gray.
func Drawille(c graph.Color) plot.Color {
	if n, err := strconv.Atoi(string(c)); err == nil {
		if dc, ok := ansiDrawille[n]; ok {
			return dc
		}
		return plot.LightGray
	}

	col, err := colorful.Hex(string(c))
	if err != nil {
		return plot.LightGray
	}
	h, s, _ := col.Hsv()
	if s < 0.2 {
		return plot.LightGray
	}

	best, bestDist := plot.Red, 360.0
	for _, stop := range hueStops {
		d := hueDistance(h, stop.hue)
		if d < bestDist {
			best, bestDist = stop.color, d
		}
	}
	return best
}

func hueDistance(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}
