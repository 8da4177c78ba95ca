package graph

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rileyhilliard/sysgraph/internal/errors"
)

// FailurePolicy decides what a tick does when a sample source fails.
type FailurePolicy int

const (
	// FailFast aborts the whole tick before any buffer is touched.
	FailFast FailurePolicy = iota
	// CarryForward repeats a failing entity's last value. An entity with no
	// previous value still fails the tick.
	CarryForward
)

// String returns the config spelling of the policy.
func (p FailurePolicy) String() string {
	switch p {
	case CarryForward:
		return "carry-forward"
	default:
		return "fail-fast"
	}
}

// ParseFailurePolicy parses "fail-fast" or "carry-forward". Empty means FailFast.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "carry-forward", "carryforward":
		return CarryForward, nil
	default:
		return FailFast, fmt.Errorf("unknown failure policy %q (want fail-fast or carry-forward)", s)
	}
}

// Options configures a Set.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// X is the initial visible time window in seconds.
	X Bounds
	// Y is the initial value range. Use AutoBounds to size it from data.
	Y Bounds
	// Margin is added above (and subtracted below) each sample when the
	// y range expands, so curves never touch the plot edge.
	Margin float64

	Format Formatter
	Policy FailurePolicy
}

// ErrNonFinite is the cause recorded when a source returns NaN or an
// infinity.
var ErrNonFinite = stderrors.New("sample is not a finite number")

// SampleError reports which entity failed to produce a sample.
type SampleError struct {
	Entity string
	Err    error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %s: %v", e.Entity, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// Set owns the axis state and an ordered, fixed collection of entities.
// The first entity by ID is the reference series: its evictions decide how
// far the x window slides.
//
// A Set is not safe for concurrent use. Update and rendering must alternate
// on a single goroutine.
type Set struct {
	opts     Options
	axis     *Axis
	entities []*Entity

	staged  []float64
	carried []string
	ticks   int
}

// NewSet creates a set from entities, sorted by ID.
func NewSet(opts Options, entities ...*Entity) (*Set, error) {
	if len(entities) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"Nothing to graph",
			"No sensors were found for this graph kind on this machine.")
	}
	if opts.X.Span() <= 0 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid time window [%g, %g]", opts.X.Min, opts.X.Max),
			"The window end must be after its start, e.g. window: 30s")
	}
	if opts.Format == nil {
		opts.Format = FormatPlain
	}

	sorted := make([]*Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return &Set{
		opts:     opts,
		axis:     NewAxis(opts.X, opts.Y),
		entities: sorted,
		staged:   make([]float64, 0, len(sorted)),
	}, nil
}

// Update samples every entity and appends the samples at time t, then slides
// the window if t has passed its end.
//
// All entities are sampled before any buffer changes, so a failing tick
// leaves every buffer exactly as it was. A sample that is NaN or infinite
// counts as a failure of its source and follows the failure policy like any
// other, so buffers and the y range only ever hold finite values.
func (s *Set) Update(ctx context.Context, t float64) error {
	s.staged = s.staged[:0]
	s.carried = s.carried[:0]

	for _, e := range s.entities {
		v, err := e.source.Sample(ctx)
		if err == nil && !finite(v) {
			err = fmt.Errorf("%w: %v", ErrNonFinite, v)
		}
		if err != nil {
			last, ok := e.series.Last()
			if s.opts.Policy != CarryForward || !ok {
				return errors.WrapWithCode(&SampleError{Entity: e.Name, Err: err}, errors.ErrSensor,
					fmt.Sprintf("Failed to read %s", e.Name),
					"Check the sensor is available on this machine, or set failure_policy: carry-forward")
			}
			v = last.Value
			s.carried = append(s.carried, e.Name)
		}
		s.staged = append(s.staged, v)
	}

	for i, e := range s.entities {
		v := s.staged[i]
		e.series.Append(t, v)
		s.axis.RaiseYMaxIf(v + s.opts.Margin)
		s.axis.LowerYMinIf(v - s.opts.Margin)
	}
	s.ticks++

	if t > s.axis.X().Max {
		s.slide()
	}
	return nil
}

// Step advances elapsed time by dt seconds and updates at the new time.
func (s *Set) Step(ctx context.Context, dt float64) error {
	s.axis.AdvanceElapsed(dt)
	return s.Update(ctx, s.axis.Elapsed())
}

// slide evicts the oldest point of every series and moves the window by the
// spacing between the reference series' old and new first points.
func (s *Set) slide() {
	ref := s.entities[0].series
	evicted, ok := ref.EvictOldest()
	if ok {
		if first, ok := ref.First(); ok {
			s.axis.TranslateX(first.Time - evicted.Time)
		}
	}
	for _, e := range s.entities[1:] {
		e.series.EvictOldest()
	}
}

// ResetY restores the configured y range.
func (s *Set) ResetY() {
	s.axis.ResetY()
}

// Axis returns a copy of the current axis state.
func (s *Set) Axis() Axis {
	return *s.axis
}

// Elapsed returns seconds elapsed since the first tick.
func (s *Set) Elapsed() float64 {
	return s.axis.Elapsed()
}

// Ticks returns the number of successful updates.
func (s *Set) Ticks() int {
	return s.ticks
}

// LastCarried names the entities whose value was carried forward on the last
// successful update.
func (s *Set) LastCarried() []string {
	if len(s.carried) == 0 {
		return nil
	}
	out := make([]string, len(s.carried))
	copy(out, s.carried)
	return out
}

// Len returns the number of entities.
func (s *Set) Len() int {
	return len(s.entities)
}

// EntityView is a read-only copy of one entity's state.
type EntityView struct {
	ID     int
	Name   string
	Color  Color
	Points []Point
}

// Last returns the newest point of the view.
func (v EntityView) Last() (Point, bool) {
	if len(v.Points) == 0 {
		return Point{}, false
	}
	return v.Points[len(v.Points)-1], true
}

// Entities returns views of every entity in reference order.
func (s *Set) Entities() []EntityView {
	views := make([]EntityView, len(s.entities))
	for i, e := range s.entities {
		views[i] = EntityView{
			ID:     e.ID,
			Name:   e.Name,
			Color:  e.Color,
			Points: e.series.Points(),
		}
	}
	return views
}

// Format formats a value with the set's formatter.
func (s *Set) Format(v float64) string {
	return s.opts.Format(v)
}
