package sim

import (
	"context"
	"math"
	"sync"
)

// Sweep runs the pi-digit ladder: one simulation per mass ratio 100^k for
// k in [0, Digits). Runs are independent, so they fan out over goroutines
// with one engine each.
type Sweep struct {
	Digits      int
	Velocity    float64
	Dt          float64
	MaxDuration float64
}

type SweepResult struct {
	Mass        float64
	Collisions  int
	Theoretical int
	Steps       int
}

// Match reports whether the simulated count landed on the theoretical one.
func (r SweepResult) Match() bool { return r.Collisions == r.Theoretical }

func (s *Sweep) Run(ctx context.Context) ([]SweepResult, error) {
	results := make([]SweepResult, s.Digits)
	errs := make([]error, s.Digits)

	var wg sync.WaitGroup
	for k := 0; k < s.Digits; k++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			mass := math.Pow(100, float64(idx))
			drv, err := NewDriver(Config{
				Mass:         mass,
				Velocity:     s.Velocity,
				Dt:           s.Dt,
				Duration:     s.MaxDuration,
				StopOnFinish: true,
			})
			if err != nil {
				errs[idx] = err
				return
			}

			res, err := drv.Run(ctx)
			if err != nil {
				errs[idx] = err
				return
			}

			results[idx] = SweepResult{
				Mass:        mass,
				Collisions:  res.Final().Collisions,
				Theoretical: TheoreticalCount(mass),
				Steps:       res.Steps,
			}
		}(k)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
