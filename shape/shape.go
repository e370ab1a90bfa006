// Package shape implements the convex polyhedron topology catalog (cube and
// icosahedron templates) and the per-instance mass/inertia wrapper used to
// turn a template into something a rigid body can simulate.
package shape

import "github.com/go-gl/mathgl/mgl64"

// FaceVertex is one corner of a face: a vertex index plus its texture
// coordinate. Texture coordinates are carried through for the rendering
// collaborator only; the physics pipeline never reads them.
type FaceVertex struct {
	Vertex int
	UV     mgl64.Vec2
}

// Edge is an unordered pair of vertex indices.
type Edge struct {
	A, B int
}

// Face is an ordered, counter-clockwise (viewed from outside the body)
// sequence of face vertices.
type Face []FaceVertex

// Shape is an immutable convex polyhedron template: vertices in model
// space, the set of edges, and the ordered faces. It fits within the unit
// cube centered at the origin.
type Shape struct {
	Vertices []mgl64.Vec3
	Edges    []Edge
	Faces    []Face
}

// NonUnitNormal returns the (non-unit-length) outward normal of face i,
// computed as cross(v3-v2, v1-v2) over the face's first three vertices.
func (s *Shape) NonUnitNormal(face int) mgl64.Vec3 {
	f := s.Faces[face]
	v1 := s.Vertices[f[0].Vertex]
	v2 := s.Vertices[f[1].Vertex]
	v3 := s.Vertices[f[2].Vertex]
	return v3.Sub(v2).Cross(v1.Sub(v2))
}

// Kind identifies which catalog template a Shape was built from, for use at
// the rendering boundary (mesh/shader selection lives entirely outside the
// physics core).
type Kind int

const (
	Cube Kind = iota
	Icosahedron
)

// Catalog returns the immutable template for kind. Panics on an unknown
// kind: this is a programmer error, not a runtime condition.
func Catalog(kind Kind) *Shape {
	switch kind {
	case Cube:
		return &cube
	case Icosahedron:
		return &icosahedron
	default:
		panic("shape: unknown kind")
	}
}
