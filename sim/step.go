package sim

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/consts"
	"github.com/hedron-sim/hedron/contact"
	"github.com/hedron-sim/hedron/integrate"
	"github.com/hedron-sim/hedron/resolve"
	"github.com/hedron-sim/hedron/util/logger"
)

// stepOnce advances s by at most target, stopping early at the bisected
// time of impact if the tentative integration overshoots into
// interpenetration. It returns the contact manifold that was in effect at
// the start of the step and the amount of time actually advanced.
func stepOnce(s *body.System, target float64) ([]*contact.Contact, float64) {
	contacts := FindAllContacts(s)

	for resolve.FindCollision(contacts) {
	}

	s.ApplyForces()
	resolve.ComputeContactForces(contacts)

	snapshot := make([]body.RigidBody, len(s.Bodies))
	copy(snapshot, s.Bodies)

	integrate.Step(s, target)
	if !Intersects(s, -consts.DistanceThreshold) {
		return contacts, target
	}

	t := target * 0.5
	stepSize := target * 0.5
	for {
		copy(s.Bodies, snapshot)
		integrate.Step(s, t)

		switch FindCollisionState(s) {
		case Penetrating:
			stepSize *= 0.5
			t -= stepSize
		case RestingOrColliding:
			return contacts, t
		case Separating, NotPenetrating:
			stepSize *= 0.5
			t += stepSize
		}

		if stepSize == 0 {
			logger.Default.Warn("cannot find time of collision")
			return contacts, t
		}
	}
}

// Step advances s by the fixed external timestep dt, repeating stepOnce
// (which may itself only cover a fraction of dt, when a time-of-impact
// bisection was needed) until the full timestep has been accounted for.
// It returns the contact manifold derived at the start of the last
// stepOnce pass, for collaborators that want to inspect what was touching
// what.
func Step(s *body.System, dt float64) []*contact.Contact {
	var last []*contact.Contact
	tCurrent := 0.0
	for tCurrent < dt {
		contacts, advanced := stepOnce(s, dt-tCurrent)
		last = contacts
		tCurrent += advanced
		if advanced <= 0 {
			// Guard against a step that makes no progress at all,
			// which would otherwise spin forever.
			break
		}
	}
	return last
}
