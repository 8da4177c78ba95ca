package graph

// Point is a single (timestamp, value) sample. Time is measured in seconds
// since the set started ticking.
type Point struct {
	Time  float64
	Value float64
}

// Series is an insertion-ordered buffer of points for one tracked entity.
// Points are appended at the tail and evicted from the head.
type Series struct {
	data  []Point
	count int
}

// NewSeries creates an empty series.
func NewSeries() *Series {
	return &Series{}
}

// Append adds a point at the tail. Ordering is the caller's contract and is
// not validated here.
func (s *Series) Append(t, value float64) {
	s.data = append(s.data, Point{Time: t, Value: value})
	s.count++
}

// EvictOldest removes and returns the head point.
// On an empty series it returns the zero Point and false; the zero Point is
// not a real sample and must not be used to compute deltas.
func (s *Series) EvictOldest() (Point, bool) {
	if s.count == 0 {
		return Point{}, false
	}
	head := s.data[0]
	// Shift in place so the backing array is reused by later appends.
	copy(s.data, s.data[1:])
	s.data = s.data[:len(s.data)-1]
	s.count--
	return head, true
}

// At returns the point at index i if present.
func (s *Series) At(i int) (Point, bool) {
	if i < 0 || i >= s.count {
		return Point{}, false
	}
	return s.data[i], true
}

// First returns the oldest point if present.
func (s *Series) First() (Point, bool) {
	return s.At(0)
}

// Last returns the newest point if present.
func (s *Series) Last() (Point, bool) {
	return s.At(s.count - 1)
}

// Len returns the number of stored points.
func (s *Series) Len() int {
	return s.count
}

// Points returns a copy of the stored points in chronological order.
func (s *Series) Points() []Point {
	if s.count == 0 {
		return nil
	}
	out := make([]Point, s.count)
	copy(out, s.data)
	return out
}
