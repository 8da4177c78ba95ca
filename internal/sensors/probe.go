package sensors

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/net"
)

// snapshotCache memoizes one reading for maxAge so that many sources built on
// the same system call (one per core, one per interface) share a single read
// per tick.
type snapshotCache[T any] struct {
	mu     sync.Mutex
	read   func(ctx context.Context) (T, error)
	now    func() time.Time
	maxAge time.Duration

	at    time.Time
	val   T
	err   error
	valid bool
}

func newSnapshotCache[T any](maxAge time.Duration, now func() time.Time, read func(ctx context.Context) (T, error)) *snapshotCache[T] {
	return &snapshotCache[T]{read: read, now: now, maxAge: maxAge}
}

func (c *snapshotCache[T]) get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.valid && now.Sub(c.at) < c.maxAge {
		return c.val, c.err
	}
	c.val, c.err = c.read(ctx)
	c.at = now
	c.valid = true
	return c.val, c.err
}

// Probe reads host metrics through gopsutil. Sources created from the same
// Probe share its cached readings.
type Probe struct {
	now func() time.Time

	cpuCount func(ctx context.Context) (int, error)
	cpuFreq  func(ctx context.Context, cpu int) (float64, error)
	cpuInfo  *snapshotCache[[]cpu.InfoStat]
	cpuUsage *snapshotCache[[]float64]
	netIO    *snapshotCache[[]net.IOCountersStat]
	memory   *snapshotCache[*mem.VirtualMemoryStat]
	swap     *snapshotCache[*mem.SwapMemoryStat]
	load     *snapshotCache[*load.AvgStat]
}

// DefaultMaxAge is how long a reading is shared when no tick interval is known.
const DefaultMaxAge = 100 * time.Millisecond

// NewProbe creates a probe whose readings are shared for maxAge.
// Pass roughly half the tick interval.
func NewProbe(maxAge time.Duration) *Probe {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	now := time.Now
	p := &Probe{
		now: now,
		cpuCount: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
		cpuFreq: readScalingFrequency,
		cpuInfo: newSnapshotCache(maxAge, now, cpu.InfoWithContext),
		cpuUsage: newSnapshotCache(maxAge, now, func(ctx context.Context) ([]float64, error) {
			// Interval 0 compares against the previous call, so it never blocks.
			return cpu.PercentWithContext(ctx, 0, true)
		}),
		netIO: newSnapshotCache(maxAge, now, func(ctx context.Context) ([]net.IOCountersStat, error) {
			return net.IOCountersWithContext(ctx, true)
		}),
		memory: newSnapshotCache(maxAge, now, mem.VirtualMemoryWithContext),
		swap:   newSnapshotCache(maxAge, now, mem.SwapMemoryWithContext),
		load:   newSnapshotCache(maxAge, now, load.AvgWithContext),
	}
	return p
}

// cpuFreqPath is the sysfs file holding a core's current frequency in kHz.
var cpuFreqPath = "/sys/devices/system/cpu/cpu%d/cpufreq/scaling_cur_freq"

// readScalingFrequency returns the current frequency of a core in MHz.
// gopsutil's cpu.Info reports the nominal maximum where cpufreq is present,
// so the live value is read from sysfs directly.
func readScalingFrequency(_ context.Context, n int) (float64, error) {
	raw, err := os.ReadFile(strings.Replace(cpuFreqPath, "%d", strconv.Itoa(n), 1))
	if err != nil {
		return 0, err
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, err
	}
	return khz / 1000, nil
}
