package sim

import (
	"context"
	"testing"
)

func TestSweepRun(t *testing.T) {
	sweep := &Sweep{
		Digits:      2,
		Velocity:    -100,
		Dt:          1.0 / 60.0,
		MaxDuration: 300,
	}

	results, err := sweep.Run(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	expected := []struct {
		mass  float64
		count int
	}{
		{1, 3},
		{100, 31},
	}

	for i, want := range expected {
		r := results[i]
		if r.Mass != want.mass {
			t.Errorf("result %d: expected mass %g, got %g", i, want.mass, r.Mass)
		}
		if r.Collisions != want.count {
			t.Errorf("mass %g: expected %d collisions, got %d", r.Mass, want.count, r.Collisions)
		}
		if !r.Match() {
			t.Errorf("mass %g: expected simulated count to match theory", r.Mass)
		}
	}
}

func TestSweepInvalidConfig(t *testing.T) {
	sweep := &Sweep{Digits: 1, Velocity: -100, Dt: 0, MaxDuration: 10}
	if _, err := sweep.Run(context.Background()); err == nil {
		t.Error("expected error for non-positive dt")
	}
}
