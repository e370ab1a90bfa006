package force

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func TestGravityLoadsFiniteMassBodies(t *testing.T) {
	s := body.NewSystem(Gravity())
	movable := shape.NewBox(mgl64.Vec3{1, 1, 1}, 2)
	s.Add(body.New(mgl64.Vec3{}, movable))

	s.ApplyForces()

	want := G.Mul(1 / movable.InvMass)
	assert.Equal(t, want, s.Bodies[0].Force)
}

func TestGravitySkipsStaticBodies(t *testing.T) {
	s := body.NewSystem(Gravity())
	static := shape.NewBox(mgl64.Vec3{1, 1, 1}, 0)
	s.Add(body.New(mgl64.Vec3{}, static))

	s.ApplyForces()

	assert.Equal(t, mgl64.Vec3{}, s.Bodies[0].Force)
}

func TestDragOpposesMomentum(t *testing.T) {
	s := body.NewSystem(Drag())
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	s.Add(body.NewWithState(mgl64.Vec3{}, mgl64.Ident3(), mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0, 3, 0}, sh))

	s.ApplyForces()

	assert.Equal(t, mgl64.Vec3{-2 * LinearDragConstant, 0, 0}, s.Bodies[0].Force)
	assert.Equal(t, mgl64.Vec3{0, -3 * AngularDragConstant, 0}, s.Bodies[0].Torque)
}

func TestApplyForcesSumsMultipleGenerators(t *testing.T) {
	s := body.NewSystem(Gravity(), Drag())
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	s.Add(body.NewWithState(mgl64.Vec3{}, mgl64.Ident3(), mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, sh))

	s.ApplyForces()

	want := G.Mul(1 / sh.InvMass).Add(mgl64.Vec3{-1 * LinearDragConstant, 0, 0})
	assert.InDeltaSlice(t, want[:], s.Bodies[0].Force[:], 1e-12)
}
