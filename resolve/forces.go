package resolve

import (
	"github.com/hedron-sim/hedron/consts"
	"github.com/hedron-sim/hedron/contact"
	"github.com/hedron-sim/hedron/lcp"
	"github.com/hedron-sim/hedron/linalg"
)

// ndot computes the time derivative of c.N, needed by the b vector of the
// resting-contact LCP.
func ndot(c *contact.Contact) linalg.Vec3 {
	if c.VF {
		return c.BodyB.Omega.Cross(c.N)
	}
	eaDot := c.BodyA.Omega.Cross(c.EA)
	ebDot := c.BodyB.Omega.Cross(c.EB)
	n1 := c.EA.Cross(c.EB)
	z := eaDot.Cross(c.EB).Add(c.EA.Cross(ebDot))
	l := n1.Len()
	n1 = n1.Mul(1 / l)
	return z.Sub(n1.Mul(z.Dot(n1))).Mul(1 / l)
}

// bVector computes the right-hand side of the resting-contact LCP: how
// quickly each contact's separation would be accelerating apart if no
// contact forces were applied, given the external forces/torques and the
// current velocities.
func bVector(contacts []*contact.Contact) []float64 {
	b := make([]float64, len(contacts))
	for i, c := range contacts {
		a, bb := c.BodyA, c.BodyB
		n := c.N
		ra := c.P.Sub(a.X)
		rb := c.P.Sub(bb.X)

		aExtPart := a.Force.Mul(a.Shape.InvMass).Add(linalg.MulVec3(a.IInv, a.Torque).Cross(ra))
		bExtPart := bb.Force.Mul(bb.Shape.InvMass).Add(linalg.MulVec3(bb.IInv, bb.Torque).Cross(rb))

		aVelPart := a.Omega.Cross(a.Omega.Cross(ra)).Add(linalg.MulVec3(a.IInv, a.L.Cross(a.Omega)).Cross(ra))
		bVelPart := bb.Omega.Cross(bb.Omega.Cross(rb)).Add(linalg.MulVec3(bb.IInv, bb.L.Cross(bb.Omega)).Cross(rb))

		k1 := n.Dot(aExtPart.Add(aVelPart).Sub(bExtPart.Add(bVelPart)))

		nd := ndot(c)
		k2 := 2 * nd.Dot(a.PointVelocity(c.P).Sub(bb.PointVelocity(c.P)))

		b[i] = k1 + k2
	}
	return b
}

// aij computes one entry of the resting-contact LCP matrix: how much the
// unit force of contact j would accelerate the separation of contact i.
// Zero whenever the two contacts share no body.
func aij(ci, cj *contact.Contact) float64 {
	if ci.BodyA != cj.BodyA && ci.BodyB != cj.BodyB && ci.BodyA != cj.BodyB && ci.BodyB != cj.BodyA {
		return 0
	}

	a, b := ci.BodyA, ci.BodyB
	ni, nj := ci.N, cj.N
	pi, pj := ci.P, cj.P
	ra := pi.Sub(a.X)
	rb := pi.Sub(b.X)

	var forceOnA, torqueOnA linalg.Vec3
	switch {
	case cj.BodyA == ci.BodyA:
		forceOnA = nj
		torqueOnA = pj.Sub(a.X).Cross(forceOnA)
	case cj.BodyB == ci.BodyA:
		forceOnA = nj.Mul(-1)
		torqueOnA = pj.Sub(a.X).Cross(forceOnA)
	}

	var forceOnB, torqueOnB linalg.Vec3
	switch {
	case cj.BodyA == ci.BodyB:
		forceOnB = nj
		torqueOnB = pj.Sub(b.X).Cross(forceOnB)
	case cj.BodyB == ci.BodyB:
		forceOnB = nj.Mul(-1)
		torqueOnB = pj.Sub(b.X).Cross(forceOnB)
	}

	aLinear := forceOnA.Mul(a.Shape.InvMass)
	aAngular := linalg.MulVec3(a.IInv, torqueOnA).Cross(ra)

	bLinear := forceOnB.Mul(b.Shape.InvMass)
	bAngular := linalg.MulVec3(b.IInv, torqueOnB).Cross(rb)

	return ni.Dot(aLinear.Add(aAngular).Sub(bLinear.Add(bAngular)))
}

// aMatrix fills the row-major n*n resting-contact LCP matrix.
func aMatrix(contacts []*contact.Contact) []float64 {
	n := len(contacts)
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := aij(contacts[i], contacts[j])
			a[i*n+j] = v
			a[j*n+i] = v
		}
		a[i*n+i] = aij(contacts[i], contacts[i])
	}
	return a
}

// ComputeContactForces partitions contacts into resting and non-resting,
// solves the resting subset's LCP for non-negative normal forces, and
// scatters the resulting forces and torques onto both bodies of each
// resting contact. Separating contacts are skipped. A contact still
// colliding (closing faster than consts.CollisionThreshold) makes it panic:
// reaching this stage with one means the caller's FindCollision pass did
// not converge, which is a bug in the caller rather than something to
// silently patch over here.
func ComputeContactForces(contacts []*contact.Contact) {
	var resting []*contact.Contact
	for _, c := range contacts {
		vrel := ClosingVelocity(c)
		switch {
		case vrel > consts.CollisionThreshold:
			// separating
		case vrel < -consts.CollisionThreshold:
			panic("resolve: ComputeContactForces received an unresolved colliding contact")
		default:
			resting = append(resting, c)
		}
	}

	if len(resting) == 0 {
		return
	}

	b := bVector(resting)
	a := aMatrix(resting)
	f := lcp.Solve(a, b, len(resting))

	for i, c := range resting {
		if f[i] < 0 {
			f[i] = 0
		}
		force := c.N.Mul(f[i])

		c.BodyA.Force = c.BodyA.Force.Add(force)
		c.BodyB.Force = c.BodyB.Force.Sub(force)
		c.BodyA.Torque = c.BodyA.Torque.Add(c.P.Sub(c.BodyA.X).Cross(force))
		c.BodyB.Torque = c.BodyB.Torque.Sub(c.P.Sub(c.BodyB.X).Cross(force))
	}
}
