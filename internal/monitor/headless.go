package monitor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/logger"
)

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	Interval time.Duration

	// Ticks stops the run after this many ticks. Zero runs until ctx is done.
	Ticks int

	Logger logger.Logger

	// now and after are swapped in tests.
	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// RunHeadless drives set on a plain loop and prints one line per tick:
//
//	12.5s  cpu0=2.40 GHz  cpu1=1.20 GHz
//
// Failed ticks print the error instead and are retried on the next tick.
// It returns nil when the tick budget is spent or ctx is cancelled.
func RunHeadless(ctx context.Context, w io.Writer, set *graph.Set, opts HeadlessOptions) error {
	if opts.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			"Tick interval must be positive",
			"Set interval to a duration like 250ms")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	if opts.after == nil {
		opts.after = time.After
	}

	var last time.Time
	for tick := 0; opts.Ticks == 0 || tick < opts.Ticks; tick++ {
		if tick > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-opts.after(opts.Interval):
			}
		}

		now := opts.now()
		dt := 0.0
		if !last.IsZero() {
			dt = now.Sub(last).Seconds()
		}
		last = now

		if err := set.Step(ctx, dt); err != nil {
			opts.Logger.Warn("tick at %.1fs skipped: %s", set.Elapsed(), errors.OneLine(err))
			if _, werr := fmt.Fprintf(w, "%6.1fs  skipped: %s\n", set.Elapsed(), errors.OneLine(err)); werr != nil {
				return werr
			}
			continue
		}

		if _, err := fmt.Fprintln(w, headlessLine(set)); err != nil {
			return err
		}
	}
	return nil
}

// headlessLine formats the newest value of every series.
func headlessLine(set *graph.Set) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6.1fs", set.Elapsed())
	for _, e := range set.Entities() {
		if p, ok := e.Last(); ok {
			fmt.Fprintf(&b, "  %s=%s", e.Name, set.Format(p.Value))
		}
	}
	return b.String()
}
