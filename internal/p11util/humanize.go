// Package p11util has small formatting helpers for command-line output.
package p11util

import (
	"fmt"
	"strings"
	"time"
)

// RoundDuration drops precision that a reader wouldn't care about, in
// proportion to the magnitude of d. Call latencies are usually micro- or
// milliseconds, so those keep the most digits.
func RoundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Hour:
		return d.Truncate(time.Minute)
	case d >= time.Minute:
		return d.Truncate(time.Second)
	case d >= time.Second:
		return d.Truncate(10 * time.Millisecond)
	case d >= 10*time.Millisecond:
		return d.Truncate(100 * time.Microsecond)
	case d >= time.Millisecond:
		return d.Truncate(10 * time.Microsecond)
	case d >= time.Microsecond:
		return d.Truncate(time.Microsecond)
	default:
		return d
	}
}

// Duration returns a compact string for d, e.g. "1.25ms" or "3m12s".
func Duration(d time.Duration) string {
	s := RoundDuration(d).String()
	if d >= time.Hour {
		s = strings.TrimSuffix(s, "0s")
	}
	return s
}

// Bytes returns a compact string for a byte count, using 1024-based units.
func Bytes[T ~int | ~uint | ~int64 | ~uint64](n T) string {
	const (
		kib = 1024.0
		mib = 1024.0 * kib
		gib = 1024.0 * mib
	)
	f := float64(n)
	switch {
	case f < kib:
		return fmt.Sprintf("%dB", uint64(n))
	case f < mib:
		return fmt.Sprintf("%.1fKB", f/kib)
	case f < gib:
		return fmt.Sprintf("%.1fMB", f/mib)
	default:
		return fmt.Sprintf("%.1fGB", f/gib)
	}
}

// Percent formats n/total as a percentage with one decimal, or "-" when total
// is zero.
func Percent(n, total int) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}
