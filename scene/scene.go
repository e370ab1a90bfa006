// Package scene builds the body.System presets used to exercise and demo
// the simulation pipeline: mostly one or more movable shapes above a
// static floor or static body, wired up with the gravity force generator
// (Debug has neither a floor nor gravity).
package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/force"
	"github.com/hedron-sim/hedron/shape"
)

const floorHeight = 0.4

// floor adds the standard immovable ground plane (width x floorHeight x
// depth, top surface at y=0) to s and returns it for chaining.
func floor(s *body.System, width, depth float64) *body.System {
	surface := shape.NewBox(mgl64.Vec3{width, floorHeight, depth}, 0)
	s.Add(body.New(mgl64.Vec3{0, -floorHeight / 2, 0}, surface))
	return s
}

// rotation returns the rotation matrix for a right-handed rotation of
// angle radians about axis.
func rotation(angle float64, axis mgl64.Vec3) mgl64.Mat3 {
	return mgl64.QuatRotate(angle, axis.Normalize()).Mat4().Mat3()
}

// Debug places a static cube and a static icosahedron side by side, with
// no gravity: a minimal scene for eyeballing shape rendering.
func Debug() *body.System {
	const size = 1.0

	out := body.NewSystem()
	cube := shape.NewBox(mgl64.Vec3{size, size, size}, 0)
	out.Add(body.New(mgl64.Vec3{2, 1, 0}, cube))

	ico := shape.NewIcosahedron(mgl64.Vec3{size, size, size}, 0)
	out.Add(body.New(mgl64.Vec3{0, 1, 0}, ico))

	return out
}

// Default drops a single icosahedron onto a floor under gravity: the
// baseline smoke-test scene.
func Default() *body.System {
	out := body.NewSystem()
	floor(out, 16, 10)

	const mass, size = 3.0, 1.0
	cube := shape.NewIcosahedron(mgl64.Vec3{size, size, size}, mass)
	out.Add(body.New(mgl64.Vec3{0, 1 + size/2, 0}, cube))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// Throwing launches a cube across the floor with initial linear and
// angular momentum, to exercise a bounce-then-rest trajectory.
func Throwing() *body.System {
	out := body.NewSystem()
	floor(out, 16, 10)

	const mass, size = 3.0, 1.0
	cube := shape.NewBox(mgl64.Vec3{size, size, size}, mass)
	a := rotation(math.Pi/4, mgl64.Vec3{1, 0, 1})
	out.Add(body.NewWithState(
		mgl64.Vec3{-10, 6, 0}, a,
		mgl64.Vec3{6, 6, 0}, mgl64.Vec3{1, 1, 0},
		cube,
	))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// Random drops three cubes from increasing heights, each given a random
// initial rotation about a different axis. r supplies the randomness, so
// callers that need a reproducible trajectory can pass a seeded source.
func Random(r *rand.Rand) *body.System {
	out := body.NewSystem()
	floor(out, 20, 35)

	const mass, size = 3.0, 1.0
	cube := shape.NewBox(mgl64.Vec3{size, size, size}, mass)

	angle := func() float64 { return r.Float64() * math.Pi / 2 * 2 }

	out.Add(body.NewRotated(mgl64.Vec3{0, 1, 0}, rotation(angle(), mgl64.Vec3{0, 0, 1}), cube))
	out.Add(body.NewRotated(mgl64.Vec3{0, 6, 0}, rotation(angle(), mgl64.Vec3{0, 1, 0}), cube))
	out.Add(body.NewRotated(mgl64.Vec3{0, 12, 0}, rotation(angle(), mgl64.Vec3{1, 0, 0}), cube))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// SideWaysCollision drops a cube rotated about x onto a static cube
// rotated about z, so their edges meet at right angles in the x,z-plane:
// an edge-edge contact scenario.
func SideWaysCollision() *body.System {
	out := body.NewSystem()

	const mass, size = 3.0, 1.0
	static := shape.NewBox(mgl64.Vec3{size, size, size}, 0)
	out.Add(body.NewRotated(
		mgl64.Vec3{0, size / 2, 0},
		rotation(math.Pi/4, mgl64.Vec3{0, 0, 1}),
		static,
	))

	falling := shape.NewBox(mgl64.Vec3{size, size, size}, mass)
	out.Add(body.NewRotated(
		mgl64.Vec3{0, size/2 + 2, 0},
		rotation(math.Pi/4, mgl64.Vec3{1, 0, 0}),
		falling,
	))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// ParallelCollision drops a cube directly onto a static cube of the same
// footprint, face to face.
func ParallelCollision() *body.System {
	out := body.NewSystem()

	const mass, size = 3.0, 1.0
	static := shape.NewBox(mgl64.Vec3{size, size, size}, 0)
	out.Add(body.New(mgl64.Vec3{0, size / 2, 0}, static))

	falling := shape.NewBox(mgl64.Vec3{size, size, size}, mass)
	out.Add(body.New(mgl64.Vec3{0, size/2 + 5, 0}, falling))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// AngledParallelCollision drops a cube rotated 45 degrees about y onto a
// static, axis-aligned cube, testing a face landing rotated in-plane.
func AngledParallelCollision() *body.System {
	out := body.NewSystem()

	const mass, size = 3.0, 1.0
	falling := shape.NewBox(mgl64.Vec3{size, size, size}, mass)
	out.Add(body.NewRotated(
		mgl64.Vec3{0, size/2 + 6, 0},
		rotation(math.Pi/4, mgl64.Vec3{0, 1, 0}),
		falling,
	))

	static := shape.NewBox(mgl64.Vec3{size, size, size}, 0)
	out.Add(body.New(mgl64.Vec3{0, size/2 + 1, 0}, static))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// Stable rests nine low-mass cubes on a floor in a 3x3 grid footprint:
// a multi-body resting-contact stress test.
func Stable() *body.System {
	out := body.NewSystem()
	floor(out, 20, 35)

	const mass, size = 0.1, 1.0
	cube := shape.NewBox(mgl64.Vec3{size, size, size}, mass)

	offsets := [][2]float64{
		{0, 0}, {2, 0}, {0, 2}, {2, 2}, {-2, 0},
		{0, -2}, {-2, 2}, {-2, -2}, {2, -2},
	}
	for _, o := range offsets {
		out.Add(body.New(mgl64.Vec3{size * o[0], size / 2, size * o[1]}, cube))
	}

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// Stacking rests two low-mass cubes directly on top of each other on a
// floor: the minimal multi-layer stack.
func Stacking() *body.System {
	out := body.NewSystem()
	floor(out, 20, 35)

	const mass, size = 0.1, 1.0
	cube := shape.NewBox(mgl64.Vec3{size, size, size}, mass)
	out.Add(body.New(mgl64.Vec3{0, 0.5 * size, 0}, cube))
	out.Add(body.New(mgl64.Vec3{0, 1.5 * size, 0}, cube))

	out.Generators = append(out.Generators, force.Gravity())
	return out
}

// Contact lays out a dozen pairs of touching cubes, each a movable cube
// against a static one, covering parallel, yaw-rotated, mismatched-size
// and laterally-offset contact configurations: a fixture for exercising
// contact derivation. The scene has no floor and carries the gravity
// generator; in the third row the movable cube sits below the static one.
func Contact() *body.System {
	out := body.NewSystem()

	const mass, size = 0.1, 1.0
	static := shape.NewBox(mgl64.Vec3{size, size, size}, 0)
	falling := shape.NewBox(mgl64.Vec3{size, size, size}, mass)
	fallingSmall := shape.NewBox(mgl64.Vec3{0.5 * size, 0.5 * size, 0.5 * size}, mass)
	staticSmall := shape.NewBox(mgl64.Vec3{0.5 * size, 0.5 * size, 0.5 * size}, 0)

	yaw45 := rotation(math.Pi/4, mgl64.Vec3{0, 1, 0})

	// first row
	out.Add(body.New(mgl64.Vec3{0, 1.5 * size, 0}, falling))
	out.Add(body.New(mgl64.Vec3{0, 0.5 * size, 0}, static))

	out.Add(body.NewRotated(mgl64.Vec3{3, 1.5 * size, 0}, yaw45, falling))
	out.Add(body.New(mgl64.Vec3{3, 0.5 * size, 0}, static))

	out.Add(body.NewRotated(mgl64.Vec3{6, 1.25 * size, 0}, yaw45, fallingSmall))
	out.Add(body.New(mgl64.Vec3{6, 0.5 * size, 0}, static))

	out.Add(body.NewRotated(mgl64.Vec3{9, 1 * size, 0}, yaw45, falling))
	out.Add(body.New(mgl64.Vec3{9, 0.25 * size, 0}, staticSmall))

	// second row: small lateral shifts in each horizontal direction
	shifts := [][2]float64{{-0.3, -0.3}, {-0.3, 0.3}, {0.3, -0.3}, {0.3, 0.3}}
	for i, sh := range shifts {
		x := float64(i) * 3
		out.Add(body.NewRotated(mgl64.Vec3{x + sh[0], 1.5 * size, 3 + sh[1]}, yaw45, falling))
		out.Add(body.New(mgl64.Vec3{x, 0.5 * size, 3}, static))
	}

	// third row: the static cube carries the shift and rotation instead
	for i, sh := range shifts {
		x := float64(i) * 3
		out.Add(body.New(mgl64.Vec3{x, 0.5 * size, 6}, falling))
		out.Add(body.NewRotated(mgl64.Vec3{x + sh[0], 1.5 * size, 6 + sh[1]}, yaw45, static))
	}

	out.Generators = append(out.Generators, force.Gravity())
	return out
}
