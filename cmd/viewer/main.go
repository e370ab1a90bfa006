// Command viewer opens a window and drives the simulation engine at a
// fixed external time step, logging each body's state as it settles. It is
// a minimal driver, not a renderer: drawing the body.System is left to the
// render package's read-only snapshot, which a real front end would feed
// to a graphics API of its choosing.
package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hedron-sim/hedron/render"
	"github.com/hedron-sim/hedron/scene"
	"github.com/hedron-sim/hedron/sim"
	"github.com/hedron-sim/hedron/util"
	"github.com/hedron-sim/hedron/util/logger"
)

func init() {
	// GLFW must run on the main OS thread.
	runtime.LockOSThread()
}

var sceneName = flag.String("scene", "default", "scene preset: debug, default, throwing, sideways, parallel, angled, stable, stacking, contact")

func sceneFunc(name string) sim.SceneFunc {
	switch name {
	case "debug":
		return scene.Debug
	case "throwing":
		return scene.Throwing
	case "sideways":
		return scene.SideWaysCollision
	case "parallel":
		return scene.ParallelCollision
	case "angled":
		return scene.AngledParallelCollision
	case "stable":
		return scene.Stable
	case "stacking":
		return scene.Stacking
	case "contact":
		return scene.Contact
	default:
		return scene.Default
	}
}

func main() {
	flag.Parse()

	if err := glfw.Init(); err != nil {
		logger.Default.Fatal("viewer: glfw init failed: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(800, 600, "hedron viewer", nil, nil)
	if err != nil {
		logger.Default.Fatal("viewer: create window failed: %v", err)
	}
	window.MakeContextCurrent()

	engine := sim.NewEngine(sceneFunc(*sceneName))
	engine.Run = true

	rater := util.NewFrameRater(60)
	for !window.ShouldClose() {
		rater.Start()

		engine.Update()

		views := render.Bodies(engine)
		for i, v := range views {
			logger.Default.Debug("body %d: x=%v", i, v.X)
		}

		glfw.PollEvents()
		window.SwapBuffers()

		rater.Wait()
	}
}
