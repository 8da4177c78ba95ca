package graph

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisElapsed(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, Bounds{0, 100})
	assert.Equal(t, 0.0, a.Elapsed())

	a.AdvanceElapsed(0.25)
	a.AdvanceElapsed(0.25)
	a.AdvanceElapsed(-5)
	assert.InDelta(t, 0.5, a.Elapsed(), 1e-9)
}

func TestAxisTranslatePreservesWidth(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, Bounds{0, 100})
	width := a.Width()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a.TranslateX(rng.Float64() * 2)
		assert.InDelta(t, width, a.X().Max-a.X().Min, 1e-6)
	}
	assert.Greater(t, a.X().Min, 0.0)
}

func TestAxisYWatermark(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, Bounds{10, 20})

	rng := rand.New(rand.NewSource(7))
	prev := a.Y()
	for i := 0; i < 500; i++ {
		v := rng.Float64()*200 - 100
		if rng.Intn(2) == 0 {
			a.RaiseYMaxIf(v)
		} else {
			a.LowerYMinIf(v)
		}
		cur := a.Y()
		assert.GreaterOrEqual(t, cur.Max, prev.Max)
		assert.LessOrEqual(t, cur.Min, prev.Min)
		assert.LessOrEqual(t, cur.Min, cur.Max)
		prev = cur
	}
}

func TestAxisYNeverShrinks(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, Bounds{0, 100})

	a.RaiseYMaxIf(50)
	a.LowerYMinIf(10)
	assert.Equal(t, Bounds{0, 100}, a.Y())

	a.RaiseYMaxIf(150)
	a.LowerYMinIf(-5)
	assert.Equal(t, Bounds{-5, 150}, a.Y())
}

func TestAxisAutoBounds(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, AutoBounds)
	assert.Equal(t, Bounds{}, a.Y())

	a.RaiseYMaxIf(2400)
	assert.Equal(t, Bounds{2400, 2400}, a.Y())

	a.LowerYMinIf(1800)
	a.RaiseYMaxIf(3100)
	assert.Equal(t, Bounds{1800, 3100}, a.Y())
}

func TestAxisIgnoresNonFinite(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, Bounds{0, 100})
	a.RaiseYMaxIf(math.Inf(1))
	a.LowerYMinIf(math.Inf(-1))
	a.RaiseYMaxIf(math.NaN())
	a.LowerYMinIf(math.NaN())
	assert.Equal(t, Bounds{0, 100}, a.Y())

	auto := NewAxis(Bounds{0, 30}, AutoBounds)
	auto.RaiseYMaxIf(math.NaN())
	assert.Equal(t, Bounds{}, auto.Y(), "a NaN does not seed the range")
	auto.RaiseYMaxIf(5)
	assert.Equal(t, Bounds{5, 5}, auto.Y())
}

func TestAxisExplicitReset(t *testing.T) {
	a := NewAxis(Bounds{0, 30}, Bounds{0, 100})
	a.RaiseYMaxIf(400)
	a.LowerYMinIf(-20)

	a.SetYMax(120)
	assert.Equal(t, Bounds{-20, 120}, a.Y())

	a.SetYMin(200)
	assert.Equal(t, Bounds{200, 200}, a.Y(), "min above max drags max along")

	a.ResetY()
	assert.Equal(t, Bounds{0, 100}, a.Y())

	auto := NewAxis(Bounds{0, 30}, AutoBounds)
	auto.RaiseYMaxIf(5)
	auto.ResetY()
	assert.Equal(t, Bounds{}, auto.Y())
	auto.LowerYMinIf(3)
	assert.Equal(t, Bounds{3, 3}, auto.Y())
}
