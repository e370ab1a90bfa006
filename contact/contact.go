// Package contact derives the contact manifold between two bodies that are
// in contact or near contact, separated by a known plane: it classifies which topological feature of the
// one body (a face, a "special" partially-contained face, an edge, or a
// vertex) lies against the separating plane found by the collision package,
// and clips it against the other body's matching feature to produce one or
// more Contact points.
package contact

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/linalg"
)

// Contact is one point of contact between two bodies. P always lies on
// BodyA; N is unit length and points outward from BodyB. Exactly one of a
// vertex-face or edge-edge geometric relationship holds, indicated by VF.
type Contact struct {
	P linalg.Vec3
	N linalg.Vec3

	BodyA, BodyB *body.RigidBody

	// PB is a reference vertex lying in the contact plane, used only to
	// measure Distance. It is a vertex of BodyB's contact face, except for
	// the edge-edge contacts derived from a face of BodyA against an
	// edge-edge plane, which carry a vertex of that face of BodyA.
	PB linalg.Vec3

	// EA, EB are the world-space directions of the edges on BodyA and
	// BodyB that produced the contact. Valid only when !VF.
	EA, EB linalg.Vec3

	VF bool
}

// NewFace builds a vertex-face contact. It panics if the normal does not
// point outward from b, which would indicate a bug in the caller.
func NewFace(p, n linalg.Vec3, a, b *body.RigidBody, pb linalg.Vec3) *Contact {
	if n.Dot(p.Sub(b.X)) < 0 {
		panic("contact: normal does not point outwards from b")
	}
	return &Contact{P: p, N: n, BodyA: a, BodyB: b, PB: pb, VF: true}
}

// NewEdge builds an edge-edge contact.
func NewEdge(p, n linalg.Vec3, a, b *body.RigidBody, pb, ea, eb linalg.Vec3) *Contact {
	c := NewFace(p, n, a, b, pb)
	c.VF = false
	c.EA, c.EB = ea, eb
	return c
}

// Distance returns the separation between P and BodyB along N.
func (c *Contact) Distance() float64 {
	return c.N.Dot(c.P.Sub(c.PB))
}
