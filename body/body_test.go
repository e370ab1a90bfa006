package body

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func TestNewBodyIsAtRest(t *testing.T) {
	s := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	b := New(mgl64.Vec3{1, 2, 3}, s)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, b.X)
	assert.Equal(t, mgl64.Vec3{}, b.V)
	assert.Equal(t, mgl64.Vec3{}, b.Omega)
	assert.False(t, b.Static())
}

func TestStaticBody(t *testing.T) {
	s := shape.NewBox(mgl64.Vec3{1, 1, 1}, 0)
	b := New(mgl64.Vec3{}, s)
	assert.True(t, b.Static())
}

func TestRefreshRecomputesAuxiliaries(t *testing.T) {
	s := shape.NewBox(mgl64.Vec3{1, 1, 1}, 2)
	b := New(mgl64.Vec3{}, s)
	b.P = mgl64.Vec3{4, 0, 0}
	b.Refresh()
	assert.Equal(t, b.P.Mul(s.InvMass), b.V)
}

func TestPointVelocityAtCenterOfMassIsLinearVelocity(t *testing.T) {
	s := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	b := New(mgl64.Vec3{0, 0, 0}, s)
	b.P = mgl64.Vec3{1, 0, 0}
	b.Refresh()

	v := b.PointVelocity(b.X)
	assert.Equal(t, b.V, v)
}

func TestSystemAddReturnsIndex(t *testing.T) {
	s := NewSystem()
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	i0 := s.Add(New(mgl64.Vec3{}, sh))
	i1 := s.Add(New(mgl64.Vec3{}, sh))
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Len(t, s.Bodies, 2)
}

func TestSystemCloneIsIndependent(t *testing.T) {
	s := NewSystem()
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	s.Add(New(mgl64.Vec3{}, sh))

	clone := s.Clone()
	clone.Bodies[0].X = mgl64.Vec3{9, 9, 9}

	assert.NotEqual(t, clone.Bodies[0].X, s.Bodies[0].X)
}

func TestApplyForcesClearsBeforeRunning(t *testing.T) {
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	calls := 0
	s := NewSystem(func(sys *System) {
		calls++
		for i := range sys.Bodies {
			sys.Bodies[i].Force = sys.Bodies[i].Force.Add(mgl64.Vec3{1, 0, 0})
		}
	})
	s.Add(New(mgl64.Vec3{}, sh))

	s.ApplyForces()
	s.ApplyForces()

	assert.Equal(t, 2, calls)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, s.Bodies[0].Force)
}
