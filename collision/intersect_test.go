package collision

import (
	"testing"

	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/linalg"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func box(x linalg.Vec3) *body.RigidBody {
	sh := shape.NewBox(linalg.Vec3{1, 1, 1}, 1)
	return body.New(x, sh)
}

func TestIntersectSeparatedBoxesFindsSeparatingPlane(t *testing.T) {
	a := box(linalg.Vec3{0, 0, 0})
	b := box(linalg.Vec3{3, 0, 0})

	r := Intersect(a, b, 0)

	assert.False(t, r.Intersecting)
	assert.InDelta(t, 1.0, abs(r.N[0]), 1e-9)
}

func TestIntersectOverlappingBoxesReportsIntersecting(t *testing.T) {
	a := box(linalg.Vec3{0, 0, 0})
	b := box(linalg.Vec3{0.5, 0, 0})

	r := Intersect(a, b, 0)

	assert.True(t, r.Intersecting)
}

func TestIntersectResultDistMatchesPlane(t *testing.T) {
	a := box(linalg.Vec3{0, 0, 0})
	b := box(linalg.Vec3{3, 0, 0})

	r := Intersect(a, b, 0)
	assert.InDelta(t, 0, r.Dist(r.P), 1e-12)
}

func TestIntersectOffsetShrinksTolerance(t *testing.T) {
	// Boxes whose faces exactly touch (distance 1 apart, size 1 each) are
	// not intersecting with zero offset, but a positive offset (treating
	// each box as if inflated) reports intersection.
	a := box(linalg.Vec3{0, 0, 0})
	b := box(linalg.Vec3{1, 0, 0})

	r0 := Intersect(a, b, 0)
	assert.False(t, r0.Intersecting)

	rOffset := Intersect(a, b, 0.1)
	assert.True(t, rOffset.Intersecting)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
