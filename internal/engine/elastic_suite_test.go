package engine_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/piblocks/internal/engine"
)

func TestEngineSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Collision Engine Suite")
}

// trace advances the engine in fixed steps, recording a snapshot per frame
// until the terminal state is reached.
func trace(massLarge, velocity float64) []engine.Snapshot {
	e, err := engine.New(massLarge, velocity)
	Expect(err).NotTo(HaveOccurred())

	snaps := []engine.Snapshot{e.Snapshot()}
	for i := 0; i < 100000 && !e.Finished(); i++ {
		Expect(e.Advance(1.0 / 60.0)).To(Succeed())
		snaps = append(snaps, e.Snapshot())
	}
	Expect(snaps[len(snaps)-1].Finished).To(BeTrue(), "run did not terminate")
	return snaps
}

func kinetic(s engine.Snapshot) float64 {
	return 0.5*s.MassLarge*s.VelocityLarge*s.VelocityLarge +
		0.5*engine.SmallMass*s.VelocitySmall*s.VelocitySmall
}

func momentum(s engine.Snapshot) float64 {
	return s.MassLarge*s.VelocityLarge + engine.SmallMass*s.VelocitySmall
}

var _ = Describe("collision engine", func() {
	Describe("conservation laws", func() {
		It("conserves kinetic energy across the entire run", func() {
			snaps := trace(100, -100)
			initial := kinetic(snaps[0])
			for _, s := range snaps {
				Expect(kinetic(s)).To(BeNumerically("~", initial, initial*1e-9))
			}
		})

		It("conserves momentum between wall contacts", func() {
			// Momentum only changes when the wall absorbs it; across frames
			// containing exclusively block collisions it must be preserved.
			snaps := trace(100, -100)
			for i := 1; i < len(snaps); i++ {
				prev, cur := snaps[i-1], snaps[i]
				if cur.Collisions == prev.Collisions {
					Expect(momentum(cur)).To(BeNumerically("~", momentum(prev), 1e-6))
				}
			}
		})
	})

	Describe("terminal state", func() {
		It("ends with both blocks receding and never colliding again", func() {
			snaps := trace(100, -100)
			final := snaps[len(snaps)-1]
			Expect(final.VelocityLarge).To(BeNumerically(">=", 0))
			Expect(final.VelocitySmall).To(BeNumerically(">=", 0))
			Expect(final.VelocityLarge).To(BeNumerically(">=", final.VelocitySmall))
		})
	})

	DescribeTable("pi digit counts",
		func(mass float64, velocity float64, expected int) {
			snaps := trace(mass, velocity)
			Expect(snaps[len(snaps)-1].Collisions).To(Equal(expected))
		},
		Entry("mass ratio 1", 1.0, -10.0, 3),
		Entry("mass ratio 100", 100.0, -100.0, 31),
		Entry("mass ratio 10000", 10000.0, -50.0, 314),
	)
})
