package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Golden-ratio constants used to place the icosahedron's twelve vertices
// and to lay out its UV coordinates.
var (
	phi = (1 + math.Sqrt(5)) / 2
	icoA = (1 / phi) / 2
	icoB = 0.5
	icoD = (1 - math.Sqrt(3)/2) / 4
)

// icosahedron is a regular icosahedron centered at the origin, scaled to
// fit the unit cube: twelve vertices arranged as three mutually
// orthogonal golden rectangles, thirty edges, twenty triangular faces.
var icosahedron = Shape{
	Vertices: []mgl64.Vec3{
		{0, icoA, icoB},   // 0
		{0, icoA, -icoB},  // 1
		{0, -icoA, icoB},  // 2
		{0, -icoA, -icoB}, // 3
		{icoB, 0, icoA},   // 4
		{-icoB, 0, icoA},  // 5
		{icoB, 0, -icoA},  // 6
		{-icoB, 0, -icoA}, // 7
		{icoA, icoB, 0},   // 8
		{-icoA, icoB, 0},  // 9
		{icoA, -icoB, 0},  // 10
		{-icoA, -icoB, 0}, // 11
	},
	Edges: []Edge{
		{0, 2}, {0, 4}, {0, 5}, {0, 8}, {0, 9},
		{1, 3}, {1, 6}, {1, 7}, {1, 8}, {1, 9},
		{2, 4}, {2, 5}, {2, 10}, {2, 11},
		{3, 6}, {3, 7}, {3, 10}, {3, 11},
		{4, 6}, {4, 8}, {4, 10},
		{5, 7}, {5, 9}, {5, 11},
		{6, 8}, {6, 10},
		{7, 9}, {7, 11},
		{8, 9},
		{10, 11},
	},
	Faces: []Face{
		{{0, uv(icoD, .5+icoD)}, {2, uv(icoD, .5-icoD)}, {4, uv(.5, .5)}},
		{{0, uv(0, 0)}, {4, uv(.5, 0)}, {8, uv(.25, .25)}},
		{{0, uv(0, 1)}, {9, uv(.25, .75)}, {5, uv(.5, 1)}},
		{{0, uv(.5, .5)}, {5, uv(.5, 1)}, {2, uv(icoD, .5-icoD)}},
		{{0, uv(.25, .25)}, {8, uv(.25, .25)}, {9, uv(.25, .75)}},
		{{1, uv(1, .5)}, {6, uv(.75, .5-icoD)}, {3, uv(.75, .5+icoD)}},
		{{1, uv(1, 0)}, {8, uv(.75, .25)}, {6, uv(.5, 0)}},
		{{1, uv(1, 1)}, {7, uv(.5, 1)}, {9, uv(.75, .75)}},
		{{1, uv(.75, .5-icoD)}, {3, uv(.75, .5+icoD)}, {7, uv(.5, 1)}},
		{{1, uv(.75, .75)}, {9, uv(.75, .75)}, {8, uv(.75, .25)}},
		{{2, uv(.5, .5)}, {10, uv(.5, 0)}, {4, uv(.25, .25)}},
		{{2, uv(.5, 1)}, {11, uv(.25, .75)}, {10, uv(.5, 0)}},
		{{2, uv(icoD, .5-icoD)}, {5, uv(.5, 1)}, {11, uv(.25, .75)}},
		{{3, uv(.75, .5+icoD)}, {6, uv(.75, .5-icoD)}, {10, uv(.5, 0)}},
		{{3, uv(.5, 1)}, {10, uv(.5, 0)}, {11, uv(.25, .75)}},
		{{10, uv(.5, 0)}, {6, uv(.75, .5-icoD)}, {4, uv(.5, 0)}},
		{{4, uv(.25, .25)}, {8, uv(.25, .25)}, {0, uv(0, 0)}},
		{{5, uv(.5, 1)}, {9, uv(.25, .75)}, {7, uv(.5, 1)}},
		{{7, uv(.5, 1)}, {11, uv(.25, .75)}, {5, uv(1, 1)}},
		{{6, uv(.5, 0)}, {8, uv(.75, .25)}, {4, uv(.25, .25)}},
	},
}
