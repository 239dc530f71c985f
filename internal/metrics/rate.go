package metrics

import "github.com/san-kum/piblocks/internal/engine"

// CollisionRate reports collisions per simulated second over the observed
// window. Near termination of a high mass-ratio run this spikes sharply.
type CollisionRate struct {
	name       string
	firstTime  float64
	lastTime   float64
	collisions int
	samples    int
}

func NewCollisionRate() *CollisionRate {
	return &CollisionRate{name: "collision_rate"}
}

func (c *CollisionRate) Name() string { return c.name }

func (c *CollisionRate) Observe(s engine.Snapshot, t float64) {
	if c.samples == 0 {
		c.firstTime = t
	}
	c.lastTime = t
	c.collisions = s.Collisions
	c.samples++
}

func (c *CollisionRate) Value() float64 {
	window := c.lastTime - c.firstTime
	if window <= 0 {
		return 0
	}
	return float64(c.collisions) / window
}

func (c *CollisionRate) Reset() {
	c.firstTime = 0
	c.lastTime = 0
	c.collisions = 0
	c.samples = 0
}

// WallApproach records the minimum small-block position seen at frame
// boundaries, i.e. how hard the block gets squeezed against the wall. Must
// never go negative.
type WallApproach struct {
	name    string
	min     float64
	samples int
}

func NewWallApproach() *WallApproach {
	return &WallApproach{name: "wall_approach"}
}

func (w *WallApproach) Name() string { return w.name }

func (w *WallApproach) Observe(s engine.Snapshot, t float64) {
	if w.samples == 0 || s.PositionSmall < w.min {
		w.min = s.PositionSmall
	}
	w.samples++
}

func (w *WallApproach) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return w.min
}

func (w *WallApproach) Reset() {
	w.min = 0
	w.samples = 0
}
