package graph

import "math"

// Bounds is a closed [Min, Max] range on one axis.
type Bounds struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

// AutoBounds is the y-range placeholder for sources with no natural range.
// The first expansion seeds both bounds with the first sample.
var AutoBounds = Bounds{Min: 1, Max: 0}

// Axis describes the visible plot window shared by every series in a set.
//
// The x window has a fixed width and only slides. The y range is a watermark:
// it only grows, unless reset explicitly.
type Axis struct {
	x       Bounds
	y       Bounds
	initial Bounds
	ySet    bool
	elapsed float64
}

// NewAxis creates axis state with the given x window and y range.
// A y range with Min > Max (see AutoBounds) starts unset.
func NewAxis(x, y Bounds) *Axis {
	a := &Axis{x: x, initial: y}
	a.ResetY()
	return a
}

// AdvanceElapsed adds delta seconds to the total elapsed time.
// Negative deltas are ignored so elapsed time never runs backwards.
func (a *Axis) AdvanceElapsed(delta float64) {
	if delta <= 0 {
		return
	}
	a.elapsed += delta
}

// Elapsed returns the seconds elapsed since start.
func (a *Axis) Elapsed() float64 {
	return a.elapsed
}

// TranslateX slides the x window by delta, preserving its width.
func (a *Axis) TranslateX(delta float64) {
	a.x.Min += delta
	a.x.Max += delta
}

// RaiseYMaxIf raises the upper y bound if v is above it. Values that are
// not finite are ignored.
func (a *Axis) RaiseYMaxIf(v float64) {
	if !finite(v) {
		return
	}
	if !a.ySet {
		a.seedY(v)
		return
	}
	if v > a.y.Max {
		a.y.Max = v
	}
}

// LowerYMinIf lowers the lower y bound if v is below it. Values that are
// not finite are ignored.
func (a *Axis) LowerYMinIf(v float64) {
	if !finite(v) {
		return
	}
	if !a.ySet {
		a.seedY(v)
		return
	}
	if v < a.y.Min {
		a.y.Min = v
	}
}

// SetYMax overrides the upper y bound. The lower bound follows if needed so
// that Min <= Max still holds.
func (a *Axis) SetYMax(v float64) {
	if !a.ySet {
		a.seedY(v)
		return
	}
	a.y.Max = v
	if a.y.Min > v {
		a.y.Min = v
	}
}

// SetYMin overrides the lower y bound. The upper bound follows if needed.
func (a *Axis) SetYMin(v float64) {
	if !a.ySet {
		a.seedY(v)
		return
	}
	a.y.Min = v
	if a.y.Max < v {
		a.y.Max = v
	}
}

// ResetY restores the y range given at construction.
func (a *Axis) ResetY() {
	if a.initial.Min > a.initial.Max {
		a.y = Bounds{}
		a.ySet = false
		return
	}
	a.y = a.initial
	a.ySet = true
}

// X returns the current x window.
func (a *Axis) X() Bounds {
	return a.x
}

// Y returns the current y range. An unset range reports {0, 0}.
func (a *Axis) Y() Bounds {
	return a.y
}

// Width returns the constant width of the x window.
func (a *Axis) Width() float64 {
	return a.x.Span()
}

func (a *Axis) seedY(v float64) {
	a.y = Bounds{Min: v, Max: v}
	a.ySet = true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
