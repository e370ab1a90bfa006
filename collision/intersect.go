// Package collision implements the separating-axis test used to decide
// whether two convex polyhedra intersect, and to locate the separating
// plane (or the witness edge pair) when they don't.
package collision

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/linalg"
)

// IntersectResult describes the outcome of Intersect for one ordered pair
// of bodies. Exactly one instance should exist per unordered pair, to avoid
// generating duplicate contact points downstream.
//
// When Intersecting is false, P and N describe a plane that separates A
// and B: N is unit length and points outward from B. If EdgeEdge is true
// the plane was found as the cross product of an edge on A and an edge on
// B; otherwise it was found as a face of B.
type IntersectResult struct {
	Intersecting bool

	P linalg.Vec3
	N linalg.Vec3

	EdgeEdge bool

	A, B *body.RigidBody

	// Valid when EdgeEdge: the world-space directions of the witness
	// edges on A and B, and their indices into each body's edge list.
	EA, EB       linalg.Vec3
	EAIdx, EBIdx int

	// Valid when !EdgeEdge: the index of the face on B that forms the
	// separating plane.
	FaceB int
}

// Dist returns the signed distance from the separating plane to v.
func (r *IntersectResult) Dist(v linalg.Vec3) float64 {
	return r.N.Dot(v.Sub(r.P))
}

// whichSideOfBody tests which side of the plane (p, n) every (unoffset)
// vertex of e lies on. Returns +1, -1, or 0 if e straddles the plane.
func whichSideOfBody(e *body.RigidBody, p, n linalg.Vec3) int {
	var positive, negative int
	for i := range e.Shape.Template.Vertices {
		v := e.Vertex(i)
		t := n.Dot(v.Sub(p))
		switch {
		case t > 0:
			positive++
		case t < 0:
			negative++
		}
		if positive != 0 && negative != 0 {
			return 0
		}
	}
	if positive != 0 {
		return 1
	}
	return -1
}

// whichSideOffset tests which side of the plane (p, n) every vertex of c
// lies on, after inflating c by offset along the direction from c to d.
func whichSideOffset(c, d *body.RigidBody, p, n linalg.Vec3, offset float64) int {
	var positive, negative int
	dir := d.X.Sub(c.X)
	for i := range c.Shape.Template.Vertices {
		v := c.VertexOffset(i, offset, dir)
		t := n.Dot(v.Sub(p))
		switch {
		case t > 0:
			positive++
		case t < 0:
			negative++
		}
		if positive != 0 && negative != 0 {
			return 0
		}
	}
	if positive != 0 {
		return 1
	}
	return -1
}

// Intersect tests whether x and y intersect, after inflating/deflating one
// of the pair by offset (positive offset shrinks the gap the algorithm
// will tolerate; see the step controller's use of both signs). Returns an
// IntersectResult with Intersecting set to true if no separating plane was
// found, or the separating plane/edge pair otherwise.
func Intersect(x, y *body.RigidBody, offset float64) IntersectResult {
	// Take x as b: test planes formed by faces of x against the
	// (offset) vertices of y. Every vertex of x lies on the negative
	// side of each of its own faces' planes by construction.
	for i, f := range x.Shape.Template.Faces {
		p := x.Vertex(f[0].Vertex)
		n := x.NonUnitNormal(i).Normalize()
		if whichSideOffset(y, x, p, n, offset) > 0 {
			return IntersectResult{P: p, N: n, A: y, B: x, FaceB: i}
		}
	}

	// Symmetric pass with y as b.
	for i, f := range y.Shape.Template.Faces {
		p := y.Vertex(f[0].Vertex)
		n := y.NonUnitNormal(i).Normalize()
		if whichSideOffset(x, y, p, n, offset) > 0 {
			return IntersectResult{P: p, N: n, A: x, B: y, FaceB: i}
		}
	}

	for i, ei := range x.Shape.Template.Edges {
		ex0 := x.Vertex(ei.A)
		ex1 := x.Vertex(ei.B)
		ex := ex0.Sub(ex1).Normalize()

		for j, ej := range y.Shape.Template.Edges {
			ey0 := y.Vertex(ej.A)
			ey1 := y.Vertex(ej.B)
			ey := ey0.Sub(ey1).Normalize()

			n := ex.Cross(ey).Normalize()

			// Take x as b.
			sideY := whichSideOffset(y, x, ex0, n, offset)
			sideX := 0
			if sideY != 0 {
				sideX = whichSideOfBody(x, ex0, n)
			}
			if sideY != 0 && sideX != 0 && sideX*sideY < 0 {
				if sideX == 1 {
					ex = ex.Mul(-1)
					n = ex.Cross(ey).Normalize()
				}
				return IntersectResult{
					P: ex0, N: n, A: y, B: x, EdgeEdge: true,
					EA: ey, EB: ex, EAIdx: j, EBIdx: i,
				}
			}

			// Take y as b.
			sideX = whichSideOffset(x, y, ey0, n, offset)
			if sideX == 0 {
				continue
			}
			sideY = whichSideOfBody(y, ey0, n)
			if sideY == 0 {
				continue
			}
			if sideX*sideY < 0 {
				if sideY == 1 {
					ex = ex.Mul(-1)
					n = ex.Cross(ey).Normalize()
				}
				return IntersectResult{
					P: ey0, N: n, A: x, B: y, EdgeEdge: true,
					EA: ex, EB: ey, EAIdx: i, EBIdx: j,
				}
			}
		}
	}

	return IntersectResult{Intersecting: true}
}
