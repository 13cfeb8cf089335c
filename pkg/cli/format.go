package cli

import (
	"fmt"
	"time"
)

// FormatBytes renders a byte count in binary units.
func FormatBytes(n int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
	)
	switch {
	case n >= gib:
		return fmt.Sprintf("%.2f GiB", float64(n)/gib)
	case n >= mib:
		return fmt.Sprintf("%.2f MiB", float64(n)/mib)
	case n >= kib:
		return fmt.Sprintf("%.2f KiB", float64(n)/kib)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// FormatRate renders a throughput given in MiB per second.
func FormatRate(mibPerSec float64) string {
	if mibPerSec >= 1024 {
		return fmt.Sprintf("%.2f GiB/s", mibPerSec/1024)
	}
	return fmt.Sprintf("%.1f MiB/s", mibPerSec)
}

// FormatNsPerOp renders a per-operation cost.
func FormatNsPerOp(ns float64) string {
	if ns >= 1e3 {
		return fmt.Sprintf("%.2f µs/op", ns/1e3)
	}
	return fmt.Sprintf("%.1f ns/op", ns)
}

// FormatDuration renders an elapsed wall time compactly.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
