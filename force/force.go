// Package force supplies the body.Generator values that load a body.System
// each step: gravity and linear/angular drag.
package force

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/linalg"
)

// G is the gravitational acceleration applied by Gravity.
var G = linalg.Vec3{0, -9.81, 0}

// LinearDragConstant and AngularDragConstant are the drag coefficients
// applied by Drag, against linear and angular momentum respectively.
const (
	LinearDragConstant  = 0.6
	AngularDragConstant = 0.6
)

// Gravity returns a generator that adds a uniform gravitational force to
// every finite-mass body. Gravity acts at the center of mass, so it never
// contributes torque.
func Gravity() body.Generator {
	return func(s *body.System) {
		for i := range s.Bodies {
			b := &s.Bodies[i]
			if b.Static() {
				continue
			}
			b.Force = b.Force.Add(G.Mul(1 / b.Shape.InvMass))
		}
	}
}

// Drag returns a generator that damps every body's linear and angular
// momentum proportionally, standing in for air resistance.
func Drag() body.Generator {
	return func(s *body.System) {
		for i := range s.Bodies {
			b := &s.Bodies[i]
			b.Force = b.Force.Sub(b.P.Mul(LinearDragConstant))
			b.Torque = b.Torque.Sub(b.L.Mul(AngularDragConstant))
		}
	}
}
