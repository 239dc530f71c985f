package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/piblocks/internal/engine"
)

// Driver owns at most one engine instance and steps it at a fixed cadence.
// Reconfiguration replaces the engine wholesale via Reset; nothing else
// mutates physics state.
type Driver struct {
	eng       *engine.Engine
	cfg       Config
	metrics   []Metric
	observers []Observer
}

func NewDriver(cfg Config) (*Driver, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	eng, err := engine.New(cfg.Mass, cfg.Velocity)
	if err != nil {
		return nil, err
	}
	return &Driver{eng: eng, cfg: cfg}, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Engine exposes the live engine for read accessors.
func (d *Driver) Engine() *engine.Engine { return d.eng }

// Config returns the configuration the current engine was built from.
func (d *Driver) Config() Config { return d.cfg }

// Reset discards the current engine and builds a fresh one from cfg.
func (d *Driver) Reset(cfg Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	eng, err := engine.New(cfg.Mass, cfg.Velocity)
	if err != nil {
		return err
	}
	d.eng = eng
	d.cfg = cfg
	return nil
}

// Run steps the engine until the configured duration elapses, the engine
// reports finished (when StopOnFinish is set), or ctx is canceled. All
// results stay in memory; nothing is persisted.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	steps := int(d.cfg.Duration / d.cfg.Dt)
	result := &Result{
		Snapshots: make([]engine.Snapshot, 0, steps+1),
		Times:     make([]float64, 0, steps+1),
		Metrics:   make(map[string]float64),
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	t := 0.0
	d.record(result, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := d.eng.Advance(d.cfg.Dt); err != nil {
			return result, err
		}
		t += d.cfg.Dt
		result.Steps++
		d.record(result, t)

		if d.cfg.StopOnFinish && d.eng.Finished() {
			break
		}
	}

	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (d *Driver) record(result *Result, t float64) {
	s := d.eng.Snapshot()
	for _, m := range d.metrics {
		m.Observe(s, t)
	}
	for _, o := range d.observers {
		o.OnStep(s, t)
	}
	result.Snapshots = append(result.Snapshots, s)
	result.Times = append(result.Times, t)
}

// TheoreticalCount is the expected total collision count for a given large
// mass: floor(pi * sqrt(m)). Purely informational; the engine's own count is
// authoritative.
func TheoreticalCount(massLarge float64) int {
	return int(math.Floor(math.Pi * math.Sqrt(massLarge)))
}
