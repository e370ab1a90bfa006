// Package resolve turns a derived contact manifold into motion: colliding
// contacts are resolved one at a time by an instantaneous impulse, and the
// remaining resting contacts are resolved together by the contact-force
// LCP stage.
package resolve

import (
	"github.com/hedron-sim/hedron/consts"
	"github.com/hedron-sim/hedron/contact"
	"github.com/hedron-sim/hedron/linalg"
)

// Collide applies a single colliding impulse to c's two bodies, per
// Baraff's instantaneous collision response, using epsilon as the
// coefficient of restitution. It refreshes both bodies' auxiliary
// quantities afterward.
func Collide(c *contact.Contact, epsilon float64) {
	a, b := c.BodyA, c.BodyB
	n := c.N
	ra := c.P.Sub(a.X)
	rb := c.P.Sub(b.X)

	vrel := n.Dot(a.PointVelocity(c.P).Sub(b.PointVelocity(c.P)))
	numerator := -(1 + epsilon) * vrel

	term1 := a.Shape.InvMass
	term2 := b.Shape.InvMass
	term3 := n.Dot(linalg.MulVec3(a.IInv, ra.Cross(n)).Cross(ra))
	term4 := n.Dot(linalg.MulVec3(b.IInv, rb.Cross(n)).Cross(rb))

	impulseMag := numerator / (term1 + term2 + term3 + term4)
	impulse := n.Mul(impulseMag)

	a.P = a.P.Add(impulse)
	b.P = b.P.Sub(impulse)
	a.L = a.L.Add(ra.Cross(impulse))
	b.L = b.L.Sub(rb.Cross(impulse))

	a.Refresh()
	b.Refresh()
}

// ClosingVelocity returns the relative normal velocity at c.P: negative
// means the bodies are approaching each other along c.N.
func ClosingVelocity(c *contact.Contact) float64 {
	return c.N.Dot(c.BodyA.PointVelocity(c.P).Sub(c.BodyB.PointVelocity(c.P)))
}

// FindCollision scans contacts for the first one that is colliding
// (closing faster than consts.CollisionThreshold) and resolves it with an
// impulse, returning true. Contacts moving apart or already at rest are
// left untouched; only one collision is resolved per call, since resolving
// it can change the closing velocity of every other contact.
func FindCollision(contacts []*contact.Contact) bool {
	for _, c := range contacts {
		vrel := ClosingVelocity(c)
		switch {
		case vrel > consts.CollisionThreshold:
			// separating: nothing to do
		case vrel < -consts.CollisionThreshold:
			Collide(c, consts.Restitution)
			return true
		default:
			// resting: handled by the contact force stage
		}
	}
	return false
}
