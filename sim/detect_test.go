package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func twoCubes(gap float64) *body.System {
	s := body.NewSystem()
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	s.Add(body.New(mgl64.Vec3{0, 0, 0}, sh))
	s.Add(body.New(mgl64.Vec3{1 + gap, 0, 0}, sh))
	return s
}

func TestIntersectsDetectsOverlap(t *testing.T) {
	s := twoCubes(-0.5)
	assert.True(t, Intersects(s, 0))
}

func TestIntersectsFalseWhenSeparated(t *testing.T) {
	s := twoCubes(2)
	assert.False(t, Intersects(s, 0))
}

func TestFindAllContactsTouchingFaces(t *testing.T) {
	s := twoCubes(0)
	contacts := FindAllContacts(s)
	assert.NotEmpty(t, contacts)
}

func TestFindAllContactsPanicsWhenInterpenetrating(t *testing.T) {
	s := twoCubes(-0.5)
	assert.Panics(t, func() { FindAllContacts(s) })
}

func TestFindCollisionStateNotPenetratingWhenFar(t *testing.T) {
	s := twoCubes(5)
	assert.Equal(t, NotPenetrating, FindCollisionState(s))
}

func TestFindCollisionStatePenetrating(t *testing.T) {
	s := twoCubes(-0.5)
	assert.Equal(t, Penetrating, FindCollisionState(s))
}

func TestFindCollisionStateRestingWhenTouching(t *testing.T) {
	s := twoCubes(0)
	assert.Equal(t, RestingOrColliding, FindCollisionState(s))
}
