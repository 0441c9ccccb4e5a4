// Package calc provides progress math helpers for download sessions.
package calc

import (
	"math"
	"time"
)

const fullPercent = 100

// Percent calculates the download percentage for a pair of byte counters.
// When total is unknown (zero or negative) or downloaded exceeds total,
// the result is clamped to 100. The result is never negative.
func Percent(downloaded, total int) float64 {
	if total <= 0 {
		return fullPercent
	}

	percent := float64(downloaded) / float64(total) * fullPercent
	if percent < 0 {
		return 0
	}
	if percent > fullPercent {
		return fullPercent
	}
	return percent
}

// SpeedKBps calculates the average download speed in KB/s since started.
// It returns 0 when started is unset or no time has elapsed yet.
func SpeedKBps(downloaded int, started time.Time) float64 {
	if started.IsZero() || downloaded <= 0 {
		return 0
	}

	elapsed := time.Since(started).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return math.Round(float64(downloaded)/elapsed/1024*10) / 10
}
