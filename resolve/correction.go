package resolve

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/consts"
	"github.com/hedron-sim/hedron/contact"
	"github.com/hedron-sim/hedron/lcp"
	"github.com/hedron-sim/hedron/linalg"
)

// CorrectState is the open-loop penetration-recovery path from the source
// engine's CollisionHandling::correct_state. Given an already-derived
// contact manifold, it looks for any contact whose separation has fallen
// past consts.WarningDistanceThreshold and, if so, solves A*f = -distances
// for the displacement-producing forces that would separate every contact
// at once, then applies the resulting position and orientation correction
// directly (no velocity change, no time step) to every body the manifold
// touches. It returns false, leaving every body untouched, when no contact
// warrants it.
//
// The source engine's engine.cpp never calls this path in its default
// step ("todo debug"); it is preserved here, unwired, for the same reason.
// Nothing in sim calls CorrectState.
func CorrectState(contacts []*contact.Contact) bool {
	if len(contacts) == 0 {
		return false
	}

	needsCorrection := false
	deltas := make([]float64, len(contacts))
	for i, c := range contacts {
		deltas[i] = c.Distance()
		if deltas[i] <= -consts.WarningDistanceThreshold {
			needsCorrection = true
		}
	}
	if !needsCorrection {
		return false
	}

	b := make([]float64, len(contacts))
	for i, d := range deltas {
		b[i] = -d
	}
	a := aMatrix(contacts)
	f := lcp.SolveLinear(a, b, len(contacts))

	var touched []*body.RigidBody
	seen := make(map[*body.RigidBody]bool)
	for _, c := range contacts {
		for _, rb := range [2]*body.RigidBody{c.BodyA, c.BodyB} {
			if !seen[rb] {
				seen[rb] = true
				touched = append(touched, rb)
			}
		}
	}
	for _, rb := range touched {
		rb.ClearLoads()
	}

	for i, c := range contacts {
		force := c.N.Mul(f[i])
		c.BodyA.Force = c.BodyA.Force.Add(force)
		c.BodyB.Force = c.BodyB.Force.Sub(force)
		c.BodyA.Torque = c.BodyA.Torque.Add(c.P.Sub(c.BodyA.X).Cross(force))
		c.BodyB.Torque = c.BodyB.Torque.Sub(c.P.Sub(c.BodyB.X).Cross(force))
	}

	for _, rb := range touched {
		rb.X = rb.X.Add(rb.Force.Mul(rb.Shape.InvMass))
		rb.A = linalg.AddMat3(rb.A, linalg.MulMat3(linalg.Star(linalg.MulVec3(rb.IInv, rb.Torque)), rb.A))
		rb.A = linalg.Orthonormalize(rb.A)
		rb.IInv = linalg.WorldInertia(rb.A, rb.Shape.InvBodyInertia)
		rb.Omega = linalg.MulVec3(rb.IInv, rb.L)
	}

	return true
}
