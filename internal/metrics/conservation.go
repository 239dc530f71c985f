package metrics

import (
	"math"

	"github.com/san-kum/piblocks/internal/engine"
)

// EnergyDrift tracks the maximum relative drift of total kinetic energy over
// a run. The system is perfectly elastic, so any drift above floating-point
// noise indicates a broken resolution step.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s engine.Snapshot, t float64) {
	energy := kineticEnergy(s)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

func kineticEnergy(s engine.Snapshot) float64 {
	return 0.5*s.MassLarge*s.VelocityLarge*s.VelocityLarge +
		0.5*engine.SmallMass*s.VelocitySmall*s.VelocitySmall
}
