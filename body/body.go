// Package body defines the rigid body state vector and the system that owns
// a collection of bodies. Bodies are held by value, not by pointer: the step
// controller snapshots and restores whole BodySystem values while bisecting
// for a time of impact, and value semantics make that a plain copy.
package body

import (
	"github.com/google/uuid"
	"github.com/hedron-sim/hedron/linalg"
	"github.com/hedron-sim/hedron/shape"
)

// ID stably identifies one body across its lifetime, for collaborators
// (the renderer, diagnostics) that need a handle surviving a slice index
// shifting underneath them.
type ID string

// RigidBody is one simulated convex polyhedron. X, P, A and L are the state
// variables the integrator advances; V, IInv and Omega are auxiliary
// quantities that must always be kept consistent with them (see Refresh);
// Force and Torque accumulate external loads for the current step; they
// are cleared by System.ApplyForces before the next step's generators run.
type RigidBody struct {
	ID    ID
	Shape *shape.WithMass

	// State.
	X linalg.Vec3 // position of the center of mass
	P linalg.Vec3 // linear momentum
	A linalg.Mat3 // orientation, as a rotation matrix
	L linalg.Vec3 // angular momentum

	// Auxiliary, always derived from the state above.
	V     linalg.Vec3 // linear velocity
	IInv  linalg.Mat3 // inverse inertia tensor, world space
	Omega linalg.Vec3 // angular velocity

	// Accumulated for the current step.
	Force  linalg.Vec3
	Torque linalg.Vec3
}

// New builds a body at rest at position x with identity orientation.
func New(x linalg.Vec3, s *shape.WithMass) *RigidBody {
	return NewWithState(x, linalg.Ident3(), linalg.Vec3{}, linalg.Vec3{}, s)
}

// NewRotated builds a body at rest at position x with orientation a.
func NewRotated(x linalg.Vec3, a linalg.Mat3, s *shape.WithMass) *RigidBody {
	return NewWithState(x, a, linalg.Vec3{}, linalg.Vec3{}, s)
}

// NewWithState builds a body with an arbitrary initial state, refreshing
// the auxiliary quantities to match.
func NewWithState(x linalg.Vec3, a linalg.Mat3, p, l linalg.Vec3, s *shape.WithMass) *RigidBody {
	b := &RigidBody{ID: ID(uuid.NewString()), Shape: s, X: x, A: a, P: p, L: l}
	b.Refresh()
	return b
}

// Refresh recomputes V, IInv and Omega from the current X, A, P, L. It must
// be called after any direct mutation of the state variables, and is called
// by the integrator after every Runge-Kutta substage.
func (b *RigidBody) Refresh() {
	b.V = b.P.Mul(b.Shape.InvMass)
	b.IInv = linalg.WorldInertia(b.A, b.Shape.InvBodyInertia)
	b.Omega = linalg.MulVec3(b.IInv, b.L)
}

// Static reports whether the body has infinite mass and so never moves.
func (b *RigidBody) Static() bool {
	return b.Shape.InvMass == 0
}

// NonUnitNormal returns the world-space (non-unit-length) outward normal of
// face i.
func (b *RigidBody) NonUnitNormal(face int) linalg.Vec3 {
	return linalg.MulVec3(b.A, b.Shape.Template.NonUnitNormal(face))
}

// ToWorld converts a point in scaled body space to world space.
func (b *RigidBody) ToWorld(point linalg.Vec3) linalg.Vec3 {
	return linalg.MulVec3(b.A, point).Add(b.X)
}

// Vertex returns world-space vertex i.
func (b *RigidBody) Vertex(i int) linalg.Vec3 {
	return b.ToWorld(b.Shape.Vertex(i))
}

// VertexOffset returns world-space vertex i, displaced offset units along
// dir (normalized internally). Used to build the inflated/deflated
// polyhedra the intersector tests.
func (b *RigidBody) VertexOffset(i int, offset float64, dir linalg.Vec3) linalg.Vec3 {
	point := b.Shape.Vertex(i)
	return linalg.MulVec3(b.A, point).Add(b.X).Add(safeDirection(dir).Mul(offset))
}

func safeDirection(v linalg.Vec3) linalg.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return v
	}
	return v.Mul(1 / l)
}

// ClearLoads zeroes the force and torque accumulators, ready for the next
// step's force generators.
func (b *RigidBody) ClearLoads() {
	b.Force = linalg.Vec3{}
	b.Torque = linalg.Vec3{}
}

// PointVelocity returns the velocity of the material point currently at
// the given world-space position.
func (b *RigidBody) PointVelocity(point linalg.Vec3) linalg.Vec3 {
	return b.V.Add(b.Omega.Cross(point.Sub(b.X)))
}

// PointAcceleration returns the acceleration of the material point
// currently at the given world-space position, using the body's current
// force and torque accumulators.
func (b *RigidBody) PointAcceleration(point linalg.Vec3) linalg.Vec3 {
	r := point.Sub(b.X)
	omegaDot := linalg.MulVec3(b.IInv, b.L.Cross(b.Omega).Add(b.Torque))
	vDot := b.Force.Mul(b.Shape.InvMass)
	return omegaDot.Cross(r).Add(b.Omega.Cross(b.Omega.Cross(r))).Add(vDot)
}
