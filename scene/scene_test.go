package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllPresetsProduceNonEmptySystems(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	cases := []struct {
		name string
		run  func() int
	}{
		{"Debug", func() int { return len(Debug().Bodies) }},
		{"Default", func() int { return len(Default().Bodies) }},
		{"Throwing", func() int { return len(Throwing().Bodies) }},
		{"Random", func() int { return len(Random(r).Bodies) }},
		{"SideWaysCollision", func() int { return len(SideWaysCollision().Bodies) }},
		{"ParallelCollision", func() int { return len(ParallelCollision().Bodies) }},
		{"AngledParallelCollision", func() int { return len(AngledParallelCollision().Bodies) }},
		{"Stable", func() int { return len(Stable().Bodies) }},
		{"Stacking", func() int { return len(Stacking().Bodies) }},
		{"Contact", func() int { return len(Contact().Bodies) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Greater(t, c.run(), 0)
			})
		})
	}
}

func TestRandomIsDeterministicForASeededSource(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)))
	b := Random(rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Bodies[1].A, b.Bodies[1].A)
	assert.Equal(t, a.Bodies[2].A, b.Bodies[2].A)
}
