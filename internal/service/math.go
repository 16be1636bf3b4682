package service

import (
	"math"
	"time"
)

// round2 rounds to 2 decimals. All emission figures are rounded this
// way at each computation step, so repeated reads are bit-identical.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// startOfDay truncates to local midnight; buckets follow the calendar
// date, not a rolling 24h window.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// isUsableNumber rejects the values the write boundary must never
// store: NaN, infinities and negatives.
func isUsableNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
