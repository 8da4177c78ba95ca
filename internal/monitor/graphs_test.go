package monitor

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain output so tests can inspect the characters drawn.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name   string
		val    float64
		minVal float64
		maxVal float64
		want   float64
	}{
		{name: "middle value", val: 50, minVal: 0, maxVal: 100, want: 0.5},
		{name: "min value", val: 0, minVal: 0, maxVal: 100, want: 0},
		{name: "max value", val: 100, minVal: 0, maxVal: 100, want: 1},
		{name: "equal min max returns 0.5", val: 50, minVal: 50, maxVal: 50, want: 0.5},
		{name: "negative range", val: -5, minVal: -10, maxVal: 0, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValue(tt.val, tt.minVal, tt.maxVal)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name string
		val  int
		max  int
		want int
	}{
		{name: "within range", val: 5, max: 10, want: 5},
		{name: "at max", val: 10, max: 10, want: 10},
		{name: "over max", val: 15, max: 10, want: 10},
		{name: "negative clamped to zero", val: -5, max: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampInt(tt.val, tt.max))
		})
	}
}

func TestFindMinMax(t *testing.T) {
	lo, hi := findMinMax(nil)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)

	lo, hi = findMinMax([]float64{800, -50, 3400})
	assert.Equal(t, -50.0, lo)
	assert.Equal(t, 3400.0, hi)
}

func TestResampleData(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		targetSize int
		wantLen    int
		wantNil    bool
	}{
		{name: "empty data returns nil", data: []float64{}, targetSize: 10, wantNil: true},
		{name: "zero target returns nil", data: []float64{1, 2, 3}, targetSize: 0, wantNil: true},
		{name: "same size returns original", data: []float64{1, 2, 3}, targetSize: 3, wantLen: 3},
		{name: "single value fills target", data: []float64{42}, targetSize: 5, wantLen: 5},
		{name: "downsampling reduces size", data: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, targetSize: 5, wantLen: 5},
		{name: "upsampling increases size", data: []float64{0, 100}, targetSize: 5, wantLen: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resampleData(tt.data, tt.targetSize)
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Len(t, result, tt.wantLen)
		})
	}
}

func TestResampleData_DownsamplingPreservesPeaks(t *testing.T) {
	data := []float64{10, 10, 10, 100, 10, 10, 10, 10, 10, 10}
	result := resampleData(data, 5)

	require.Len(t, result, 5)
	assert.Contains(t, result, 100.0, "downsampling should preserve peak values")
}

func TestResampleData_UpsamplingInterpolates(t *testing.T) {
	result := resampleData([]float64{0, 100}, 5)

	require.Len(t, result, 5)
	for i, want := range []float64{0, 25, 50, 75, 100} {
		assert.InDelta(t, want, result[i], 0.1)
	}
}

func TestSampleAt(t *testing.T) {
	points := []graph.Point{{Time: 0, Value: 0}, {Time: 1, Value: 10}, {Time: 3, Value: 30}}

	assert.Equal(t, 0.0, sampleAt(nil, 1))
	assert.Equal(t, 0.0, sampleAt(points, -5), "before first point")
	assert.Equal(t, 30.0, sampleAt(points, 9), "after last point")
	assert.InDelta(t, 5.0, sampleAt(points, 0.5), 1e-9)
	assert.InDelta(t, 20.0, sampleAt(points, 2), 1e-9)
	assert.Equal(t, 10.0, sampleAt(points, 1))
}

func TestGridValues(t *testing.T) {
	points := []graph.Point{{Time: 0, Value: 0}, {Time: 4, Value: 40}}

	assert.Equal(t, []float64{0, 10, 20, 30, 40}, gridValues(points, graph.Bounds{Min: 0, Max: 4}, 5))
	assert.Equal(t, []float64{40}, gridValues(points, graph.Bounds{Min: 0, Max: 4}, 1))
}

// dots returns the braille bits of a rendered cell.
func dots(t *testing.T, line string, col int) rune {
	t.Helper()
	runes := []rune(line)
	require.Greater(t, len(runes), col)
	return runes[col] - brailleBase
}

func TestRenderBrailleChart_Dimensions(t *testing.T) {
	out := RenderBrailleChart(nil, graph.Bounds{Max: 10}, graph.Bounds{Max: 10}, 6, 3)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, strings.Repeat(string(brailleBase), 6), l)
	}

	assert.Empty(t, RenderBrailleChart(nil, graph.Bounds{}, graph.Bounds{}, 0, 3))
	assert.Empty(t, RenderBrailleChart(nil, graph.Bounds{}, graph.Bounds{}, 3, 0))
}

func TestRenderBrailleChart_PositionsPoints(t *testing.T) {
	ds := []graph.Dataset{{
		Name:   "cpu0",
		Points: []graph.Point{{Time: 0, Value: 0}, {Time: 10, Value: 10}},
	}}
	out := RenderBrailleChart(ds, graph.Bounds{Min: 0, Max: 10}, graph.Bounds{Min: 0, Max: 10}, 5, 2)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	// (0, 0) is the bottom-left dot: dot 7 of the first cell of the last row.
	assert.NotZero(t, dots(t, lines[1], 0)&(1<<6))
	// (10, 10) is the top-right dot: dot 4 of the last cell of the first row.
	assert.NotZero(t, dots(t, lines[0], 4)&(1<<3))
	// The line passes through the middle of the chart.
	assert.NotZero(t, dots(t, lines[0], 2)|dots(t, lines[1], 2))
}

func TestRenderBrailleChart_FollowsWindow(t *testing.T) {
	// Same point, window slid so that it sits on the left edge.
	ds := []graph.Dataset{{Points: []graph.Point{{Time: 20, Value: 5}}}}
	out := RenderBrailleChart(ds, graph.Bounds{Min: 20, Max: 30}, graph.Bounds{Min: 0, Max: 10}, 5, 1)

	assert.NotZero(t, dots(t, out, 0))
	for col := 1; col < 5; col++ {
		assert.Zero(t, dots(t, out, col))
	}
}

func TestRenderBrailleChart_ClipsOutOfRange(t *testing.T) {
	ds := []graph.Dataset{{Points: []graph.Point{{Time: -5, Value: 1000}, {Time: 50, Value: -1000}}}}

	out := RenderBrailleChart(ds, graph.Bounds{Min: 0, Max: 10}, graph.Bounds{Min: 0, Max: 10}, 4, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Len(t, []rune(l), 4)
	}
}

func TestRenderBrailleChart_SkipsNonFinitePoints(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ds := []graph.Dataset{{Points: []graph.Point{{Time: 0, Value: 1}, {Time: 1, Value: bad}, {Time: 2, Value: 1}}}}

		out := RenderBrailleChart(ds, graph.Bounds{Min: 0, Max: 2}, graph.Bounds{Min: 0, Max: 2}, 40, 10)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 10)
		// Both finite points are still drawn, on dot row 20 of 40.
		assert.NotZero(t, dots(t, lines[4], 0)&(1<<6), "value %v", bad)
		assert.NotZero(t, dots(t, lines[4], 39)&(1<<7), "value %v", bad)
		assert.Zero(t, dots(t, lines[4], 20), "no segment through the gap")
	}
}

func TestRenderBrailleChart_FarAboveRangeAfterReset(t *testing.T) {
	// Pinned y range restored while the buffer still holds a huge value.
	ds := []graph.Dataset{{Points: []graph.Point{{Time: 0, Value: 0.5}, {Time: 1, Value: 1e12}}}}

	out := RenderBrailleChart(ds, graph.Bounds{Min: 0, Max: 1}, graph.Bounds{Min: 0, Max: 1}, 40, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	// The visible part climbs from the middle to the top on the left edge.
	assert.NotZero(t, dots(t, lines[0], 0))
	assert.NotZero(t, dots(t, lines[4], 0))
	assert.Zero(t, dots(t, lines[5], 0))
	assert.Zero(t, dots(t, lines[0], 39))
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           [4]float64
		ok             bool
	}{
		{name: "inside", x0: 1, y0: 1, x1: 5, y1: 3, want: [4]float64{1, 1, 5, 3}, ok: true},
		{name: "crosses right edge", x0: 5, y0: 2, x1: 15, y1: 2, want: [4]float64{5, 2, 10, 2}, ok: true},
		{name: "crosses top edge", x0: 0, y0: 5, x1: 0, y1: 1e12, want: [4]float64{0, 5, 0, 10}, ok: true},
		{name: "crosses both sides", x0: -10, y0: 5, x1: 20, y1: 5, want: [4]float64{0, 5, 10, 5}, ok: true},
		{name: "entirely outside", x0: 11, y0: 0, x1: 20, y1: 5, ok: false},
		{name: "point inside", x0: 3, y0: 4, x1: 3, y1: 4, want: [4]float64{3, 4, 3, 4}, ok: true},
		{name: "point outside", x0: 3, y0: -1, x1: 3, y1: -1, ok: false},
		{name: "nan end", x0: 0, y0: 0, x1: 1, y1: math.NaN(), ok: false},
		{name: "infinite end", x0: 0, y0: 0, x1: math.Inf(1), y1: 1, ok: false},
		{name: "overflowing delta", x0: -math.MaxFloat64, y0: 0, x1: math.MaxFloat64, y1: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clipSegment(tt.x0, tt.y0, tt.x1, tt.y1, 10, 10)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.InDeltaSlice(t, tt.want[:], []float64{x0, y0, x1, y1}, 1e-9)
		})
	}
}

func TestRenderBrailleChart_FlatRangeUsesMiddle(t *testing.T) {
	ds := []graph.Dataset{{Points: []graph.Point{{Time: 0, Value: 7}}}}
	out := RenderBrailleChart(ds, graph.Bounds{Min: 0, Max: 10}, graph.Bounds{Min: 7, Max: 7}, 2, 2)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	// 8 dots high, middle is dot row 4: the bottom dot of the top cell.
	assert.NotZero(t, dots(t, lines[0], 0)&(1<<6))
	assert.Zero(t, dots(t, lines[1], 0))
}

func TestRenderMiniSparkline(t *testing.T) {
	bounds := graph.Bounds{Min: 0, Max: 10}

	assert.Empty(t, RenderMiniSparkline(nil, 10, bounds))
	assert.Empty(t, RenderMiniSparkline([]float64{5}, 0, bounds))

	assert.Equal(t, "  ▁█", RenderMiniSparkline([]float64{0, 10}, 4, bounds), "short data fills from the right")

	long := make([]float64, 40)
	assert.Len(t, []rune(RenderMiniSparkline(long, 12, bounds)), 12)

	// Empty bounds fall back to the data range.
	assert.Equal(t, "▁█", RenderMiniSparkline([]float64{800, 3400}, 2, graph.Bounds{}))
}
