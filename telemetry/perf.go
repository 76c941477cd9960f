package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the simulation tick.
const (
	PhaseAdvance = "advance"
	PhaseGrid    = "grid"
	PhaseConnect = "connect"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks tick timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated timing over the current window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	PhaseAvg        map[string]time.Duration
	PhasePct        map[string]float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	var totalTick, minTick, maxTick time.Duration
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		totalTick += s.TickDuration
		if i == 0 || s.TickDuration < minTick {
			minTick = s.TickDuration
		}
		if s.TickDuration > maxTick {
			maxTick = s.TickDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avgTick := totalTick / time.Duration(p.sampleCount)
	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avgTick > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avgTick) * 100
		}
	}

	return PerfStats{
		AvgTickDuration: avgTick,
		MinTickDuration: minTick,
		MaxTickDuration: maxTick,
		PhaseAvg:        phaseAvg,
		PhasePct:        phasePct,
	}
}

// Log writes the aggregated perf stats through slog.
func (ps PerfStats) Log(tick int64) {
	slog.Info("perf",
		"tick", tick,
		"avg", ps.AvgTickDuration.Round(time.Microsecond),
		"min", ps.MinTickDuration.Round(time.Microsecond),
		"max", ps.MaxTickDuration.Round(time.Microsecond),
		"advance_pct", ps.PhasePct[PhaseAdvance],
		"grid_pct", ps.PhasePct[PhaseGrid],
		"connect_pct", ps.PhasePct[PhaseConnect],
	)
}

// PerfStatsCSV is the flat CSV projection of PerfStats.
type PerfStatsCSV struct {
	WindowEnd  int64   `csv:"window_end"`
	AvgMicros  int64   `csv:"avg_us"`
	MinMicros  int64   `csv:"min_us"`
	MaxMicros  int64   `csv:"max_us"`
	AdvancePct float64 `csv:"advance_pct"`
	GridPct    float64 `csv:"grid_pct"`
	ConnectPct float64 `csv:"connect_pct"`
}

// ToCSV converts the stats to a CSV row tagged with the window end tick.
func (ps PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:  windowEnd,
		AvgMicros:  ps.AvgTickDuration.Microseconds(),
		MinMicros:  ps.MinTickDuration.Microseconds(),
		MaxMicros:  ps.MaxTickDuration.Microseconds(),
		AdvancePct: ps.PhasePct[PhaseAdvance],
		GridPct:    ps.PhasePct[PhaseGrid],
		ConnectPct: ps.PhasePct[PhaseConnect],
	}
}
