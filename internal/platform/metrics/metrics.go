package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts gateway calls. Counters are atomic so any goroutine may
// record and snapshot concurrently.
type Collector struct {
	totalCalls      uint64
	failedCalls     uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(failed bool, duration time.Duration) {
	atomic.AddUint64(&c.totalCalls, 1)
	if failed {
		atomic.AddUint64(&c.failedCalls, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalCalls)
	failed := atomic.LoadUint64(&c.failedCalls)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"callsTotal":      total,
		"failuresTotal":   failed,
		"avgDurationMs":   avg,
		"totalDurationMs": totalMs,
	}
}
