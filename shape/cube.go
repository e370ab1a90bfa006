package shape

import "github.com/go-gl/mathgl/mgl64"

// cube is a unit cube centered at the origin, eight vertices and six
// counter-clockwise (viewed from outside) faces.
//
//	       3-------5
//	      /|  top  /|
//	     2-------6 |
//	     | 0-----|-4
//	     |/ bot  |/
//	     1-------7
var cube = Shape{
	Vertices: []mgl64.Vec3{
		{-.5, -.5, -.5}, // 0
		{-.5, -.5, +.5}, // 1
		{-.5, +.5, +.5}, // 2
		{-.5, +.5, -.5}, // 3
		{+.5, -.5, -.5}, // 4
		{+.5, +.5, -.5}, // 5
		{+.5, +.5, +.5}, // 6
		{+.5, -.5, +.5}, // 7
	},
	Edges: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 7}, {2, 6}, {3, 5},
	},
	Faces: []Face{
		{{0, uv(.4, .75)}, {3, uv(.4, 1)}, {5, uv(.2, 1)}, {4, uv(.2, .75)}},   // -z
		{{4, uv(.8, .75)}, {5, uv(.8, 1)}, {6, uv(.6, 1)}, {7, uv(.6, .75)}},   // +x
		{{7, uv(1, .75)}, {6, uv(1, 1)}, {2, uv(.8, 1)}, {1, uv(.8, .75)}},     // +z
		{{1, uv(.6, .75)}, {2, uv(.6, 1)}, {3, uv(.4, 1)}, {0, uv(.4, .75)}},   // -x
		{{3, uv(.2, .75)}, {2, uv(.2, 1)}, {6, uv(0, 1)}, {5, uv(0, .75)}},     // +y
		{{1, uv(.2, .5)}, {0, uv(.2, .75)}, {4, uv(0, .75)}, {7, uv(0, .5)}},   // -y
	},
}

func uv(u, v float64) mgl64.Vec2 { return mgl64.Vec2{u, v} }
