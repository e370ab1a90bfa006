package resolve

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/contact"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func restingCubeOnFloor(penetration float64) (*body.RigidBody, *body.RigidBody, *contact.Contact) {
	floorShape := shape.NewBox(mgl64.Vec3{10, 1, 10}, 0)
	floor := body.New(mgl64.Vec3{0, -0.5, 0}, floorShape)

	cubeShape := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	cube := body.New(mgl64.Vec3{0, 0.5, 0}, cubeShape)

	// PB sits penetration above P along N, so Distance() = N.(P-PB) < 0.
	pb := mgl64.Vec3{0, penetration, 0}
	c := contact.NewFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, cube, floor, pb)
	return cube, floor, c
}

func TestCorrectStateNoopWhenNoContactPastWarningThreshold(t *testing.T) {
	cube, floor, c := restingCubeOnFloor(0)
	before := cube.X

	corrected := CorrectState([]*contact.Contact{c})

	assert.False(t, corrected)
	assert.Equal(t, before, cube.X)
	assert.True(t, floor.Static())
}

func TestCorrectStateDisplacesPenetratingBody(t *testing.T) {
	cube, floor, c := restingCubeOnFloor(0.02)
	before := cube.X

	corrected := CorrectState([]*contact.Contact{c})

	assert.True(t, corrected)
	assert.NotEqual(t, before, cube.X)
	// The floor is static: zero inverse mass means the correction leaves
	// its position untouched even though it still receives a force.
	assert.Equal(t, mgl64.Vec3{0, -0.5, 0}, floor.X)
}

func TestCorrectStateHandlesEmptyManifold(t *testing.T) {
	assert.False(t, CorrectState(nil))
}
