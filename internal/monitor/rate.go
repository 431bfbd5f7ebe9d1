package monitor

import "time"

// SaturatingDelta returns cur-prev, or 0 when the counter went backwards.
func SaturatingDelta(cur, prev uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

// Utilization is the busy share of the jiffies elapsed between two readings,
// as an integer percent in [0, 100]. A counter reset yields 0.
func Utilization(prev, cur CPUCounters) uint64 {
	dTotal := SaturatingDelta(cur.Total, prev.Total)
	if dTotal == 0 {
		return 0
	}
	dIdle := SaturatingDelta(cur.Idle, prev.Idle)
	return 100 * SaturatingDelta(dTotal, dIdle) / dTotal
}

// PerSecond scales a per-interval delta to a nominal second using the
// configured interval, not the measured wall time.
func PerSecond(delta uint64, interval time.Duration) uint64 {
	ms := uint64(interval.Milliseconds())
	if ms == 0 {
		return delta
	}
	return delta * 1000 / ms
}

// Kbps converts a per-interval byte delta to kilobits per nominal second.
func Kbps(deltaBytes uint64, interval time.Duration) uint64 {
	ms := uint64(interval.Milliseconds())
	if ms == 0 {
		return deltaBytes * 8 / 1024
	}
	return deltaBytes * 8 * 1000 / (1024 * ms)
}
