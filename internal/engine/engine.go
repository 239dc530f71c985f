package engine

import "math"

// SmallMass is the reference mass of the small block. Collision counts
// approximate pi digits when the large mass is a power of 100 times this.
const SmallMass = 1.0

// Starting layout: the wall sits at coordinate 0, the small block in the
// middle, the large block further right with a strictly positive gap.
const (
	startPositionLarge = 400.0
	startPositionSmall = 200.0
	WidthLarge         = 150.0
	WidthSmall         = 50.0
)

// Engine holds the full simulation state for one configuration. It is not
// safe for concurrent use; callers must serialize Advance with any reads.
type Engine struct {
	massLarge  float64
	posLarge   float64
	posSmall   float64
	velLarge   float64
	velSmall   float64
	collisions int
	finished   bool
}

// Snapshot is a value copy of the observable state, handed to renderers and
// metrics so they never touch the engine's internals.
type Snapshot struct {
	MassLarge     float64
	PositionLarge float64
	PositionSmall float64
	VelocityLarge float64
	VelocitySmall float64
	Collisions    int
	Finished      bool
}

// New builds an engine with the large block approaching from the right at
// initialVelocity and the small block at rest. Returns ErrInvalidMass if
// massLarge is not strictly positive.
func New(massLarge, initialVelocity float64) (*Engine, error) {
	if massLarge <= 0 {
		return nil, ErrInvalidMass
	}
	return &Engine{
		massLarge: massLarge,
		posLarge:  startPositionLarge,
		posSmall:  startPositionSmall,
		velLarge:  initialVelocity,
	}, nil
}

// Advance moves the simulation forward by exactly dt time units, resolving
// every collision that falls inside the interval in chronological order.
// Returns ErrInvalidTimestep for dt <= 0 before touching any state, so a
// rejected call is a strict no-op.
func (e *Engine) Advance(dt float64) error {
	if dt <= 0 {
		return ErrInvalidTimestep
	}

	remaining := dt
	for remaining > 0 {
		// Time until the small block reaches the wall. The guard is a
		// strict inequality: at rest against the wall it never hits again.
		tWall := math.Inf(1)
		if e.velSmall < 0 {
			tWall = e.posSmall / -e.velSmall
		}

		// Time until the large block's leading edge meets the small block.
		// Only defined while the large block is gaining ground.
		tBlock := math.Inf(1)
		if e.velLarge < e.velSmall {
			gap := e.posLarge - (e.posSmall + WidthSmall)
			tBlock = gap / (e.velSmall - e.velLarge)
		}

		tNext := math.Min(tWall, tBlock)
		if tNext > remaining {
			e.drift(remaining)
			break
		}

		e.drift(tNext)
		remaining -= tNext

		// Exact ties resolve as a block collision, matching the original
		// billiard construction.
		if tWall < tBlock {
			e.hitWall()
		} else {
			e.hitBlock()
		}
	}

	// Level-triggered terminal check: both blocks receding and the large one
	// at least as fast, so no event can ever occur again.
	if e.velLarge >= 0 && e.velSmall >= 0 && e.velLarge >= e.velSmall {
		e.finished = true
	}
	return nil
}

// drift integrates both positions linearly over a collision-free interval.
func (e *Engine) drift(t float64) {
	e.posLarge += e.velLarge * t
	e.posSmall += e.velSmall * t
}

// hitWall reflects the small block off the infinite-mass wall. The position
// is snapped to the wall so the invariant posSmall >= 0 holds exactly at the
// contact instant regardless of rounding in the drift.
func (e *Engine) hitWall() {
	e.posSmall = 0
	e.velSmall = -e.velSmall
	e.collisions++
}

// hitBlock applies the 1-D elastic collision formulas, conserving momentum
// and kinetic energy. Both updates use the pre-collision velocities. The
// large block is snapped onto the contact point so the blocks never overlap.
func (e *Engine) hitBlock() {
	e.posLarge = e.posSmall + WidthSmall

	u1, u2 := e.velLarge, e.velSmall
	m1, m2 := e.massLarge, SmallMass
	e.velLarge = ((m1-m2)*u1 + 2*m2*u2) / (m1 + m2)
	e.velSmall = ((m2-m1)*u2 + 2*m1*u1) / (m1 + m2)
	e.collisions++
}

func (e *Engine) MassLarge() float64     { return e.massLarge }
func (e *Engine) MassSmall() float64     { return SmallMass }
func (e *Engine) PositionLarge() float64 { return e.posLarge }
func (e *Engine) PositionSmall() float64 { return e.posSmall }
func (e *Engine) VelocityLarge() float64 { return e.velLarge }
func (e *Engine) VelocitySmall() float64 { return e.velSmall }
func (e *Engine) WidthLarge() float64    { return WidthLarge }
func (e *Engine) WidthSmall() float64    { return WidthSmall }

// Collisions reports the cumulative event count, monotonically non-decreasing.
func (e *Engine) Collisions() int { return e.collisions }

// Finished reports whether the simulation is permanently over. Once true it
// never reverts; further Advance calls only drift positions.
func (e *Engine) Finished() bool { return e.finished }

// KineticEnergy returns the total kinetic energy, conserved across every
// resolution in this perfectly elastic system.
func (e *Engine) KineticEnergy() float64 {
	return 0.5*e.massLarge*e.velLarge*e.velLarge + 0.5*SmallMass*e.velSmall*e.velSmall
}

// Snapshot copies the observable state for external consumers.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		MassLarge:     e.massLarge,
		PositionLarge: e.posLarge,
		PositionSmall: e.posSmall,
		VelocityLarge: e.velLarge,
		VelocitySmall: e.velSmall,
		Collisions:    e.collisions,
		Finished:      e.finished,
	}
}
