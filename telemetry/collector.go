// Package telemetry accumulates per-tick simulation statistics, aggregates
// them over fixed windows, and writes them to CSV for offline analysis.
package telemetry

// Collector accumulates per-tick records within fixed windows and produces
// WindowStats when a window fills.
type Collector struct {
	windowTicks int

	tick            int64
	windowStartTick int64

	connections     []float64 // per-tick connection counts in this window
	transitionTicks int
}

// NewCollector creates a collector with the given window size in ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: windowTicks,
		connections: make([]float64, 0, windowTicks),
	}
}

// RecordTick records the outcome of one simulation tick.
func (c *Collector) RecordTick(connections int, transitioning bool) {
	c.tick++
	c.connections = append(c.connections, float64(connections))
	if transitioning {
		c.transitionTicks++
	}
}

// WindowReady reports whether a full window of ticks has been recorded.
func (c *Collector) WindowReady() bool {
	return len(c.connections) >= c.windowTicks
}

// Flush aggregates the current window into WindowStats and starts the next
// window. Call when WindowReady, or at shutdown for a partial final window.
func (c *Collector) Flush() WindowStats {
	stats := computeWindowStats(c.windowStartTick, c.tick, c.connections, c.transitionTicks)
	c.windowStartTick = c.tick
	c.connections = c.connections[:0]
	c.transitionTicks = 0
	return stats
}
