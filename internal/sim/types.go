package sim

import "github.com/san-kum/piblocks/internal/engine"

type Metric interface {
	Name() string
	Observe(s engine.Snapshot, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s engine.Snapshot, t float64)
}

// Config describes one run. A new Config always produces a fresh engine;
// there is no partial reconfiguration.
type Config struct {
	Mass         float64
	Velocity     float64
	Dt           float64
	Duration     float64
	StopOnFinish bool
}

type Result struct {
	Snapshots []engine.Snapshot
	Times     []float64
	Metrics   map[string]float64
	Steps     int
}

// Final returns the last recorded snapshot.
func (r *Result) Final() engine.Snapshot {
	if len(r.Snapshots) == 0 {
		return engine.Snapshot{}
	}
	return r.Snapshots[len(r.Snapshots)-1]
}
