package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewBoxZeroMassIsImmovable(t *testing.T) {
	w := NewBox(mgl64.Vec3{1, 1, 1}, 0)
	assert.Equal(t, 0.0, w.InvMass)
	assert.Equal(t, mgl64.Mat3{}, w.InvBodyInertia)
	assert.Equal(t, Cube, w.Kind)
}

func TestNewBoxInertiaIsDiagonal(t *testing.T) {
	w := NewBox(mgl64.Vec3{2, 1, 1}, 3)
	assert.Equal(t, 1.0/3, w.InvMass)
	assert.InDelta(t, 12*w.InvMass/(1*1+1*1), w.InvBodyInertia[0], 1e-12)
	assert.Equal(t, 0.0, w.InvBodyInertia[1])
	assert.Equal(t, 0.0, w.InvBodyInertia[2])
}

func TestNewIcosahedronZeroMassIsImmovable(t *testing.T) {
	w := NewIcosahedron(mgl64.Vec3{1, 1, 1}, 0)
	assert.Equal(t, 0.0, w.InvMass)
	assert.Equal(t, Icosahedron, w.Kind)
}

func TestWithMassVertexAppliesScale(t *testing.T) {
	w := NewBox(mgl64.Vec3{2, 4, 6}, 1)
	v := w.Vertex(0)
	raw := w.Template.Vertices[0]
	assert.InDelta(t, raw[0]*2, v[0], 1e-12)
	assert.InDelta(t, raw[1]*4, v[1], 1e-12)
	assert.InDelta(t, raw[2]*6, v[2], 1e-12)
}

func TestCatalogPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { Catalog(Kind(99)) })
}

func TestCubeTopologyInvariants(t *testing.T) {
	c := Catalog(Cube)
	assert.Len(t, c.Vertices, 8)
	assert.Len(t, c.Edges, 12)
	assert.Len(t, c.Faces, 6)
	for _, f := range c.Faces {
		assert.GreaterOrEqual(t, len(f), 3)
	}
}

func TestIcosahedronTopologyInvariants(t *testing.T) {
	ico := Catalog(Icosahedron)
	assert.Len(t, ico.Vertices, 12)
	assert.Len(t, ico.Edges, 30)
	assert.Len(t, ico.Faces, 20)
}
