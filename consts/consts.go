// Package consts collects the tuning constants shared across the collision,
// contact-derivation, solver and step-controller packages, so they cannot
// drift out of sync with each other.
package consts

// DistanceThreshold is the maximum separation, in world units, at which a
// vertex is still considered to lie on a separating plane when the contact
// manifold is derived.
const DistanceThreshold = 0.02

// WarningDistanceThreshold is the penetration depth (a contact Distance of
// -WarningDistanceThreshold or less) at which resolve.CorrectState applies
// a positional correction.
const WarningDistanceThreshold = 0.75 * DistanceThreshold

// CollisionThreshold is the closing-velocity magnitude below which a
// vertex-face or edge-edge contact is treated as resting rather than
// colliding.
const CollisionThreshold = 0.001

// Restitution is the coefficient of restitution applied to colliding
// contacts.
const Restitution = 0.6

// DefaultTimestep is the step controller's default external time step.
const DefaultTimestep = 1.0 / 60.0

// LCPSlackTolerance is the most negative value a component of A*f + b may
// take before the LCP pivoting solver treats it as infeasible, absorbing
// floating point noise around zero.
const LCPSlackTolerance = -1e-14
