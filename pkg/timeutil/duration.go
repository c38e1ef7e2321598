// Package timeutil provides the duration rounding and formatting used by
// timesheet summaries.
package timeutil

import (
	"fmt"
	"time"
)

// Step is the billing granularity. Recorded durations round up to the next
// multiple of it.
const Step = 5 * time.Minute

// RoundUp rounds d up to the next multiple of Step using ceiling division.
// Exact multiples are unchanged and zero stays zero.
func RoundUp(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	steps := (d + Step - 1) / Step
	return steps * Step
}

// FormatHHMM renders d as zero-padded "HH:MM". Hours are total hours, so a
// duration longer than a day renders as "25:00" rather than wrapping.
func FormatHHMM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Sum totals a sequence of durations. An empty sequence yields zero.
func Sum(ds ...time.Duration) time.Duration {
	total := time.Duration(0)
	for _, d := range ds {
		total += d
	}
	return total
}
