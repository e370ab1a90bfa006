// Package render is the read-only collaborator between the physics core
// and a rendering or visualization front end: it never mutates a
// sim.Engine, only snapshots what is needed to draw it.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/shape"
	"github.com/hedron-sim/hedron/sim"
)

// BodyView is everything a renderer needs to draw one rigid body, without
// any access to its physics state.
type BodyView struct {
	ID      body.ID
	X       mgl64.Vec3
	A       mgl64.Mat3
	Scale   mgl64.Vec3
	Kind    shape.Kind
	InvMass float64
}

// ContactView is one contact from the previous step's manifold, for
// debug visualization.
type ContactView struct {
	P, N mgl64.Vec3
	VF   bool
	EA   mgl64.Vec3
	EB   mgl64.Vec3
}

// Bodies returns a read-only snapshot of every body in e's current
// system, in index order.
func Bodies(e *sim.Engine) []BodyView {
	sys := e.System
	views := make([]BodyView, len(sys.Bodies))
	for i := range sys.Bodies {
		b := &sys.Bodies[i]
		views[i] = BodyView{
			ID:      b.ID,
			X:       b.X,
			A:       b.A,
			Scale:   b.Shape.Scale,
			Kind:    b.Shape.Kind,
			InvMass: b.Shape.InvMass,
		}
	}
	return views
}

// Contacts returns a read-only snapshot of the contact manifold derived
// during e's most recently completed step.
func Contacts(e *sim.Engine) []ContactView {
	views := make([]ContactView, len(e.PrevContacts))
	for i, c := range e.PrevContacts {
		views[i] = ContactView{P: c.P, N: c.N, VF: c.VF, EA: c.EA, EB: c.EB}
	}
	return views
}
