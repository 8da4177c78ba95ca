package graph

import "context"

// Color is a terminal color as understood by the renderers: an ANSI index
// ("1".."255") or a hex string ("#ff2e97").
type Color string

// SampleSource produces one numeric sample per call. Implementations may
// block; the set applies no timeout of its own.
type SampleSource interface {
	Sample(ctx context.Context) (float64, error)
}

// SourceFunc adapts a plain function to SampleSource.
type SourceFunc func(ctx context.Context) (float64, error)

// Sample calls f.
func (f SourceFunc) Sample(ctx context.Context) (float64, error) {
	return f(ctx)
}

// Entity binds an identifier, display style and series to a sample source.
type Entity struct {
	ID     int
	Name   string
	Color  Color
	series *Series
	source SampleSource
}

// NewEntity creates a tracked entity with an empty series.
func NewEntity(id int, name string, color Color, source SampleSource) *Entity {
	return &Entity{
		ID:     id,
		Name:   name,
		Color:  color,
		series: NewSeries(),
		source: source,
	}
}
