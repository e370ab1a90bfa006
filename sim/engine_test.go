package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/force"
	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

func oneFallingCube() *body.System {
	s := body.NewSystem(force.Gravity())
	sh := shape.NewBox(mgl64.Vec3{1, 1, 1}, 1)
	s.Add(body.New(mgl64.Vec3{0, 5, 0}, sh))
	return s
}

func TestNewEngineBuildsSystemFromScene(t *testing.T) {
	e := NewEngine(oneFallingCube)
	assert.Len(t, e.System.Bodies, 1)
	assert.Nil(t, e.PrevContacts)
}

func TestUpdateNoopWhenNotRunning(t *testing.T) {
	e := NewEngine(oneFallingCube)
	x0 := e.System.Bodies[0].X
	e.Update()
	assert.Equal(t, x0, e.System.Bodies[0].X)
}

func TestUpdateAdvancesWhenRunning(t *testing.T) {
	e := NewEngine(oneFallingCube)
	e.Run = true
	x0 := e.System.Bodies[0].X
	e.Update()
	assert.NotEqual(t, x0, e.System.Bodies[0].X)
}

func TestAskToStepOnceAdvancesExactlyOneUpdate(t *testing.T) {
	e := NewEngine(oneFallingCube)
	e.AskToStepOnce()

	x0 := e.System.Bodies[0].X
	e.Update()
	assert.NotEqual(t, x0, e.System.Bodies[0].X)

	x1 := e.System.Bodies[0].X
	e.Update()
	assert.Equal(t, x1, e.System.Bodies[0].X)
}

func TestToggleRunFlipsState(t *testing.T) {
	e := NewEngine(oneFallingCube)
	assert.False(t, e.Run)
	e.ToggleRun()
	assert.True(t, e.Run)
	e.ToggleRun()
	assert.False(t, e.Run)
}

func TestResetRebuildsSystem(t *testing.T) {
	e := NewEngine(oneFallingCube)
	e.Run = true
	e.Update()
	e.Update()

	e.Reset()
	assert.Equal(t, mgl64.Vec3{0, 5, 0}, e.System.Bodies[0].X)
	assert.Nil(t, e.PrevContacts)
}

func TestChangeSceneSwapsAndResets(t *testing.T) {
	e := NewEngine(oneFallingCube)
	other := func() *body.System {
		s := body.NewSystem()
		s.Add(body.New(mgl64.Vec3{9, 9, 9}, shape.NewBox(mgl64.Vec3{1, 1, 1}, 0)))
		return s
	}

	e.ChangeScene(other)
	assert.Equal(t, mgl64.Vec3{9, 9, 9}, e.System.Bodies[0].X)
}
