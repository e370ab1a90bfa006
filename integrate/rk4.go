// Package integrate advances a body.System forward in time via fourth
// order Runge-Kutta integration over each body's twelve-dimensional state
// (position, linear momentum, orientation, angular momentum). Forces and
// torques are computed once per step, before integration begins, and held
// fixed across all four substages -- matching the source engine's design,
// where only the state variables and their derived auxiliary quantities
// change from one substage to the next.
package integrate

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/linalg"
)

// stage holds one Runge-Kutta sample: the per-body rate of change (for k1
// through k4) or state increment, matching the fields RK4 advances.
type stage struct {
	x linalg.Vec3
	p linalg.Vec3
	a linalg.Mat3
	l linalg.Vec3
}

// derivative evaluates hf(state, t) for every body: the rate of change of
// x, p, a and l implied by the body's current auxiliary quantities (v,
// omega) and accumulated force/torque, scaled by dt.
func derivative(s *body.System, dt float64) []stage {
	out := make([]stage, len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]
		out[i] = stage{
			x: b.V.Mul(dt),
			p: b.Force.Mul(dt),
			a: linalg.ScaleMat3(linalg.MulMat3(linalg.Star(b.Omega), b.A), dt),
			l: b.Torque.Mul(dt),
		}
	}
	return out
}

// setState writes initial + scale*delta into every body's state variables
// and refreshes the auxiliary quantities, re-orthonormalizing the
// orientation matrix to correct the drift integrating it directly
// introduces.
func setState(s *body.System, initial []body.RigidBody, delta []stage, scale float64) {
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.X = initial[i].X.Add(delta[i].x.Mul(scale))
		b.P = initial[i].P.Add(delta[i].p.Mul(scale))
		b.A = linalg.Orthonormalize(linalg.AddMat3(initial[i].A, linalg.ScaleMat3(delta[i].a, scale)))
		b.L = initial[i].L.Add(delta[i].l.Mul(scale))
		b.Refresh()
	}
}

// Step advances s by dt using classical RK4, leaving every body's force and
// torque accumulators untouched -- the caller clears and refills them
// before the next step.
func Step(s *body.System, dt float64) {
	initial := make([]body.RigidBody, len(s.Bodies))
	copy(initial, s.Bodies)

	k1 := derivative(s, dt)
	setState(s, initial, k1, 0.5)

	k2 := derivative(s, dt)
	setState(s, initial, k2, 0.5)

	k3 := derivative(s, dt)
	setState(s, initial, k3, 1.0)

	k4 := derivative(s, dt)

	const f16 = 1.0 / 6.0
	const f13 = 1.0 / 3.0
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.X = initial[i].X.
			Add(k1[i].x.Mul(f16)).Add(k2[i].x.Mul(f13)).Add(k3[i].x.Mul(f13)).Add(k4[i].x.Mul(f16))
		b.P = initial[i].P.
			Add(k1[i].p.Mul(f16)).Add(k2[i].p.Mul(f13)).Add(k3[i].p.Mul(f13)).Add(k4[i].p.Mul(f16))
		b.L = initial[i].L.
			Add(k1[i].l.Mul(f16)).Add(k2[i].l.Mul(f13)).Add(k3[i].l.Mul(f13)).Add(k4[i].l.Mul(f16))

		a := linalg.AddMat3(initial[i].A, linalg.ScaleMat3(k1[i].a, f16))
		a = linalg.AddMat3(a, linalg.ScaleMat3(k2[i].a, f13))
		a = linalg.AddMat3(a, linalg.ScaleMat3(k3[i].a, f13))
		a = linalg.AddMat3(a, linalg.ScaleMat3(k4[i].a, f16))
		b.A = linalg.Orthonormalize(a)

		b.Refresh()
	}
}

// Star is re-exported for callers that need the skew-symmetric operator RK4
// uses internally without importing the linalg package directly for it.
func Star(v linalg.Vec3) linalg.Mat3 {
	return linalg.Star(v)
}
