package sensors

import (
	"context"
	"fmt"
	"time"
)

// CoreFrequency samples the current frequency of one logical CPU in MHz.
type CoreFrequency struct {
	probe *Probe
	CPU   int
}

// Sample reads the live scaling frequency, falling back to the frequency
// reported by cpu.Info on systems without cpufreq.
func (s *CoreFrequency) Sample(ctx context.Context) (float64, error) {
	mhz, err := s.probe.cpuFreq(ctx, s.CPU)
	if err == nil {
		return mhz, nil
	}

	infos, infoErr := s.probe.cpuInfo.get(ctx)
	if infoErr != nil {
		return 0, fmt.Errorf("cpu%d frequency: %w", s.CPU, err)
	}
	for _, info := range infos {
		if int(info.CPU) == s.CPU && info.Mhz > 0 {
			return info.Mhz, nil
		}
	}
	return 0, fmt.Errorf("cpu%d frequency: %w", s.CPU, err)
}

// CoreUsage samples the busy percentage of one logical CPU.
type CoreUsage struct {
	probe *Probe
	CPU   int
}

func (s *CoreUsage) Sample(ctx context.Context) (float64, error) {
	percents, err := s.probe.cpuUsage.get(ctx)
	if err != nil {
		return 0, err
	}
	if s.CPU >= len(percents) {
		return 0, fmt.Errorf("cpu%d not reported (%d cpus)", s.CPU, len(percents))
	}
	return percents[s.CPU], nil
}

// MemoryUsage samples used RAM as a percentage.
type MemoryUsage struct {
	probe *Probe
}

func (s *MemoryUsage) Sample(ctx context.Context) (float64, error) {
	vm, err := s.probe.memory.get(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

// SwapUsage samples used swap as a percentage. No swap reads as zero.
type SwapUsage struct {
	probe *Probe
}

func (s *SwapUsage) Sample(ctx context.Context) (float64, error) {
	sw, err := s.probe.swap.get(ctx)
	if err != nil {
		return 0, err
	}
	if sw.Total == 0 {
		return 0, nil
	}
	return sw.UsedPercent, nil
}

// LoadAverage samples the 1, 5 or 15 minute load average.
type LoadAverage struct {
	probe   *Probe
	Minutes int
}

func (s *LoadAverage) Sample(ctx context.Context) (float64, error) {
	avg, err := s.probe.load.get(ctx)
	if err != nil {
		return 0, err
	}
	switch s.Minutes {
	case 5:
		return avg.Load5, nil
	case 15:
		return avg.Load15, nil
	default:
		return avg.Load1, nil
	}
}

// Direction selects received or transmitted bytes.
type Direction int

const (
	Receive Direction = iota
	Transmit
)

func (d Direction) String() string {
	if d == Transmit {
		return "tx"
	}
	return "rx"
}

// InterfaceRate samples the throughput of one network interface in bytes
// per second, derived from successive counter readings. The first sample
// is zero because there is no earlier counter to compare with.
type InterfaceRate struct {
	probe     *Probe
	Interface string
	Direction Direction

	prev   uint64
	prevAt time.Time
	primed bool
	rate   float64
}

func (s *InterfaceRate) Sample(ctx context.Context) (float64, error) {
	counters, err := s.probe.netIO.get(ctx)
	if err != nil {
		return 0, err
	}

	var counter uint64
	found := false
	for _, c := range counters {
		if c.Name == s.Interface {
			counter = c.BytesRecv
			if s.Direction == Transmit {
				counter = c.BytesSent
			}
			found = true
			break
		}
	}
	if !found {
		return 0, fmt.Errorf("interface %s not found", s.Interface)
	}

	now := s.probe.now()
	if !s.primed {
		s.prev, s.prevAt, s.primed = counter, now, true
		return 0, nil
	}

	dt := now.Sub(s.prevAt).Seconds()
	if dt <= 0 {
		// Same cached reading as the previous call.
		return s.rate, nil
	}

	// Counter reset or wraparound reads as idle rather than negative.
	s.rate = 0
	if counter >= s.prev {
		s.rate = float64(counter-s.prev) / dt
	}
	s.prev, s.prevAt = counter, now
	return s.rate, nil
}
