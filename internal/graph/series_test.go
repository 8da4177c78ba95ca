package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesAppendAndLookup(t *testing.T) {
	s := NewSeries()
	assert.Equal(t, 0, s.Len())

	s.Append(0, 10)
	s.Append(1, 20)
	s.Append(2, 30)

	assert.Equal(t, 3, s.Len())

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, Point{Time: 0, Value: 10}, first)

	p, ok := s.At(2)
	require.True(t, ok)
	assert.Equal(t, Point{Time: 2, Value: 30}, p)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, p, last)

	_, ok = s.At(3)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestSeriesFIFOEviction(t *testing.T) {
	s := NewSeries()
	s.Append(1, 100)
	s.Append(2, 200)
	s.Append(3, 300)

	p, ok := s.EvictOldest()
	require.True(t, ok)
	assert.Equal(t, 1.0, p.Time)

	p, ok = s.EvictOldest()
	require.True(t, ok)
	assert.Equal(t, 2.0, p.Time)

	assert.Equal(t, 1, s.Len())
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, Point{Time: 3, Value: 300}, first)
}

func TestSeriesEvictEmpty(t *testing.T) {
	s := NewSeries()

	p, ok := s.EvictOldest()
	assert.False(t, ok)
	assert.Equal(t, Point{Time: 0, Value: 0}, p)
	assert.Equal(t, 0, s.Len(), "length must not go negative")

	_, ok = s.First()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
	assert.Nil(t, s.Points())
}

func TestSeriesEvictUntilEmptyThenReuse(t *testing.T) {
	s := NewSeries()
	s.Append(0, 1)

	_, ok := s.EvictOldest()
	require.True(t, ok)
	_, ok = s.EvictOldest()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	s.Append(5, 2)
	assert.Equal(t, 1, s.Len())
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 5.0, first.Time)
}

func TestSeriesPointsIsCopy(t *testing.T) {
	s := NewSeries()
	s.Append(0, 1)
	s.Append(1, 2)

	pts := s.Points()
	pts[0].Value = 99

	first, _ := s.First()
	assert.Equal(t, 1.0, first.Value, "mutating the copy must not affect the series")

	s.EvictOldest()
	assert.Len(t, pts, 2, "a previously returned copy keeps its points")
	assert.Equal(t, []Point{{Time: 1, Value: 2}}, s.Points())
}
