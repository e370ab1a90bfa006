package resolve

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/contact"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func fallingCubeOnFloor(approachSpeed float64) (*body.RigidBody, *body.RigidBody, *contact.Contact) {
	floorShape := shape.NewBox(mgl64.Vec3{10, 1, 10}, 0)
	floor := body.New(mgl64.Vec3{0, -0.5, 0}, floorShape)

	cubeShape := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	cube := body.NewWithState(
		mgl64.Vec3{0, 0.5, 0}, mgl64.Ident3(),
		mgl64.Vec3{0, -approachSpeed, 0}, mgl64.Vec3{},
		cubeShape,
	)

	c := contact.NewFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, cube, floor, mgl64.Vec3{0, 0, 0})
	return cube, floor, c
}

func TestClosingVelocityNegativeWhenApproaching(t *testing.T) {
	cube, _, c := fallingCubeOnFloor(2)
	v := ClosingVelocity(c)
	assert.InDelta(t, -2, v, 1e-9)
	_ = cube
}

func TestCollideReversesApproachIntoSeparation(t *testing.T) {
	cube, floor, c := fallingCubeOnFloor(2)

	Collide(c, 0.5)

	vAfter := ClosingVelocity(c)
	assert.Greater(t, vAfter, 0.0)
	assert.True(t, floor.Static())
}

func TestCollideRestitutionScalesReboundSpeed(t *testing.T) {
	cube1, _, c1 := fallingCubeOnFloor(2)
	_, _, c2 := fallingCubeOnFloor(2)

	Collide(c1, 1.0)
	Collide(c2, 0.0)

	v1 := ClosingVelocity(c1)
	v2 := ClosingVelocity(c2)

	assert.Greater(t, v1, v2)
	assert.InDelta(t, 0, v2, 1e-9)
	_ = cube1
}

func TestFindCollisionResolvesFirstCollidingContact(t *testing.T) {
	_, _, c := fallingCubeOnFloor(2)
	contacts := []*contact.Contact{c}

	resolved := FindCollision(contacts)
	assert.True(t, resolved)
	assert.Greater(t, ClosingVelocity(c), 0.0)

	resolvedAgain := FindCollision(contacts)
	assert.False(t, resolvedAgain)
}

func TestFindCollisionIgnoresRestingContact(t *testing.T) {
	_, _, c := fallingCubeOnFloor(0)
	contacts := []*contact.Contact{c}

	resolved := FindCollision(contacts)
	assert.False(t, resolved)
}
