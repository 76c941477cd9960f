package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window. The csv
// tags drive the column layout of telemetry.csv.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`
	Ticks           int   `csv:"ticks"`

	// Connection counts across the window
	ConnMean float64 `csv:"conn_mean"`
	ConnStd  float64 `csv:"conn_std"`
	ConnMin  float64 `csv:"conn_min"`
	ConnMax  float64 `csv:"conn_max"`

	// Fraction of ticks spent inside a formation transition
	TransitionFrac float64 `csv:"transition_frac"`
}

// computeWindowStats aggregates one window of per-tick connection counts.
func computeWindowStats(start, end int64, connections []float64, transitionTicks int) WindowStats {
	ws := WindowStats{
		WindowStartTick: start,
		WindowEndTick:   end,
		Ticks:           len(connections),
	}
	if len(connections) == 0 {
		return ws
	}

	ws.ConnMean = stat.Mean(connections, nil)
	if len(connections) > 1 {
		ws.ConnStd = stat.StdDev(connections, nil)
	}
	ws.ConnMin = connections[0]
	ws.ConnMax = connections[0]
	for _, v := range connections[1:] {
		if v < ws.ConnMin {
			ws.ConnMin = v
		}
		if v > ws.ConnMax {
			ws.ConnMax = v
		}
	}
	ws.TransitionFrac = float64(transitionTicks) / float64(len(connections))
	return ws
}

// Log writes the window stats through slog.
func (ws WindowStats) Log() {
	slog.Info("window stats",
		"window_end", ws.WindowEndTick,
		"ticks", ws.Ticks,
		"conn_mean", ws.ConnMean,
		"conn_std", ws.ConnStd,
		"conn_min", ws.ConnMin,
		"conn_max", ws.ConnMax,
		"transition_frac", ws.TransitionFrac,
	)
}
