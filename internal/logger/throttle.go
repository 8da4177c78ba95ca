package logger

import (
	"sync"

	"golang.org/x/time/rate"
)

// Throttled wraps a Logger so that repeated warnings and errors, such as a
// sensor failing on every tick, are written at most at the limiter's rate.
// Suppressed messages are counted and reported with the next one let through.
// Debug and Info pass straight through.
type Throttled struct {
	next    Logger
	limiter *rate.Limiter

	mu         sync.Mutex
	suppressed int
}

// NewThrottled allows a burst of messages, then every per seconds one more.
func NewThrottled(next Logger, every float64, burst int) *Throttled {
	limit := rate.Inf
	if every > 0 {
		limit = rate.Limit(1 / every)
	}
	return &Throttled{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// NewTickLogger returns the throttled logger the scheduler reports failed
// ticks to.
func NewTickLogger(every float64, burst int) *Throttled {
	return NewThrottled(New(SourceTick), every, burst)
}

func (l *Throttled) Debug(format string, args ...interface{}) {
	l.next.Debug(format, args...)
}

func (l *Throttled) Info(format string, args ...interface{}) {
	l.next.Info(format, args...)
}

func (l *Throttled) Warn(format string, args ...interface{}) {
	if format, args, ok := l.admit(format, args); ok {
		l.next.Warn(format, args...)
	}
}

func (l *Throttled) Error(format string, args ...interface{}) {
	if format, args, ok := l.admit(format, args); ok {
		l.next.Error(format, args...)
	}
}

// Suppressed returns how many messages are waiting to be reported as dropped.
func (l *Throttled) Suppressed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.suppressed
}

func (l *Throttled) admit(format string, args []interface{}) (string, []interface{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.limiter.Allow() {
		l.suppressed++
		return "", nil, false
	}
	if l.suppressed > 0 {
		format += " (%d similar messages suppressed)"
		args = append(args, l.suppressed)
		l.suppressed = 0
	}
	return format, args, true
}
