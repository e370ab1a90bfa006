package sim

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/consts"
	"github.com/hedron-sim/hedron/contact"
)

// SceneFunc builds a fresh body.System from nothing: the function
// equivalent of the source engine's Scene hierarchy, which existed only to
// provide a virtual initialize() method.
type SceneFunc func() *body.System

// Engine owns the current body.System and the run/pause state a driving
// loop (a render loop, a test, a headless batch runner) steps through. It
// is not safe for concurrent use.
type Engine struct {
	// Dt is the fixed external time step Update advances by.
	Dt float64

	// Run, when true, makes every Update call advance the simulation.
	Run bool

	// stepOnce, set by AskToStepOnce, advances exactly one Update call
	// even while Run is false.
	stepOnce bool

	sceneFunc SceneFunc
	System    *body.System

	// PrevContacts holds the contact manifold derived by the most recent
	// completed step, for a caller that wants to draw or inspect it.
	PrevContacts []*contact.Contact
}

// NewEngine builds an Engine that builds its body.System from sceneFunc,
// with the default external time step, and initializes it immediately.
func NewEngine(sceneFunc SceneFunc) *Engine {
	e := &Engine{Dt: consts.DefaultTimestep, sceneFunc: sceneFunc}
	e.Init()
	return e
}

// Init (re)builds the body.System from the current scene.
func (e *Engine) Init() {
	e.System = e.sceneFunc()
	e.PrevContacts = nil
}

// Update advances the simulation by Dt if Run is set, or if a single step
// was requested via AskToStepOnce; otherwise it is a no-op.
func (e *Engine) Update() {
	if !e.Run && !e.stepOnce {
		return
	}
	e.PrevContacts = Step(e.System, e.Dt)
	e.stepOnce = false
}

// ToggleRun flips Run.
func (e *Engine) ToggleRun() {
	e.Run = !e.Run
}

// ChangeScene switches to a new scene and resets the simulation to it.
func (e *Engine) ChangeScene(sceneFunc SceneFunc) {
	e.sceneFunc = sceneFunc
	e.Reset()
}

// Reset rebuilds the body.System from the current scene, discarding all
// progress.
func (e *Engine) Reset() {
	e.Init()
}

// AskToStepOnce arranges for the next Update call to advance the
// simulation by one step, even if Run is false. It does nothing to an
// Update call already in progress.
func (e *Engine) AskToStepOnce() {
	e.stepOnce = true
}
