package graph

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Formatter renders an axis or legend value.
type Formatter func(float64) string

// FormatPlain prints the value with two decimals.
func FormatPlain(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatPercent prints a percentage.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatMegahertz prints a frequency given in MHz, switching to GHz at 1000.
func FormatMegahertz(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.2f GHz", v/1000)
	}
	return fmt.Sprintf("%.0f MHz", v)
}

// FormatBytes prints a byte count in IEC units.
func FormatBytes(v float64) string {
	if v < 0 {
		return "-" + humanize.IBytes(uint64(-v))
	}
	return humanize.IBytes(uint64(v))
}

// FormatByteRate prints a bytes-per-second rate.
func FormatByteRate(v float64) string {
	return FormatBytes(v) + "/s"
}
