package contact

import (
	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/collision"
	"github.com/hedron-sim/hedron/consts"
	"github.com/hedron-sim/hedron/linalg"
)

// topology identifies which kind of feature of result.A lies against the
// separating plane.
type topology int

const (
	face topology = iota
	specialFace
	edge
	vertex
)

// findTopologicalElement classifies the topological feature of result.A
// that lies against the separating plane, and returns its index within the
// corresponding list (faces, edges, or vertices) on A.
func findTopologicalElement(result *collision.IntersectResult) (int, topology) {
	a := result.A

	faceIdx := -1
	for i, f := range a.Shape.Template.Faces {
		contained := true
		for _, fv := range f {
			v := a.Vertex(fv.Vertex)
			if abs(result.Dist(v)) > consts.DistanceThreshold {
				contained = false
				break
			}
		}
		if contained {
			faceIdx = i
		}
	}
	if faceIdx != -1 {
		return faceIdx, face
	}

	specialIdx := -1
	for i, f := range a.Shape.Template.Faces {
		edgesContained := 0
		e1 := a.Vertex(f[len(f)-1].Vertex)
		for _, fv := range f {
			e2 := a.Vertex(fv.Vertex)
			if abs(result.Dist(e1)) <= consts.DistanceThreshold && abs(result.Dist(e2)) <= consts.DistanceThreshold {
				edgesContained++
			}
			e1 = e2
		}
		if edgesContained > 1 {
			specialIdx = i
		}
	}
	if specialIdx != -1 {
		return specialIdx, specialFace
	}

	edgeIdx := -1
	for i, e := range a.Shape.Template.Edges {
		e1 := a.Vertex(e.A)
		e2 := a.Vertex(e.B)
		if abs(result.Dist(e1)) <= consts.DistanceThreshold && abs(result.Dist(e2)) <= consts.DistanceThreshold {
			edgeIdx = i
		}
	}
	if edgeIdx != -1 {
		return edgeIdx, edge
	}

	vertexIdx := -1
	for i := range a.Shape.Template.Vertices {
		v := a.Vertex(i)
		if abs(result.Dist(v)) <= consts.DistanceThreshold {
			vertexIdx = i
		}
	}
	if vertexIdx != -1 {
		return vertexIdx, vertex
	}

	panic("contact: no topological element found against the separating plane")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// test finds the intersection of the line segment e1-e2 with the edge
// f1-f2 of a face with normal fn, assuming every point lies in the plane
// of that face. Returns the intersection point and whether it lies
// between both segments' endpoints.
func test(f1, f2, fn, e1, e2 linalg.Vec3) (linalg.Vec3, bool) {
	fm := f2.Sub(f1).Cross(fn).Normalize()
	distE1 := fm.Dot(e1.Sub(f1))
	distE2 := fm.Dot(e2.Sub(f1))

	em := e2.Sub(e1).Cross(fn).Normalize()
	distF1 := em.Dot(f1.Sub(e1))
	distF2 := em.Dot(f2.Sub(e1))

	if distE1*distE2 <= 0 && distF1*distF2 <= 0 {
		x := e2.Sub(e1).Normalize()
		p := e2.Sub(x.Mul(distE2 / x.Dot(fm)))
		ok := e2.Sub(e1).Dot(p.Sub(e1)) >= 0 && e1.Sub(e2).Dot(p.Sub(e2)) >= 0
		return p, ok
	}
	return linalg.Vec3{}, false
}

// insideFace reports whether vertexY of y lies within the infinite column
// standing on faceX of x, extruded along faceX's normal. Assumes vertexY
// lies (approximately) in the plane of faceX.
func insideFace(x, y *body.RigidBody, faceX, vertexY int) bool {
	vy := y.Vertex(vertexY)
	f := x.Shape.Template.Faces[faceX]
	n := x.NonUnitNormal(faceX)

	ex1 := x.Vertex(f[len(f)-1].Vertex)
	for _, fv := range f {
		ex2 := x.Vertex(fv.Vertex)
		m := ex2.Sub(ex1).Cross(n).Normalize()
		if m.Dot(vy.Sub(ex1)) > 0 {
			return false
		}
		ex1 = ex2
	}
	return true
}

// insideFaceNear is insideFace, but restricted to the portion of faceX
// within consts.DistanceThreshold of the plane through vertexY with normal
// normalY -- used for "special face" contacts where not every vertex of
// faceX actually lies on the separating plane.
func insideFaceNear(x, y *body.RigidBody, faceX, vertexY int, normalY linalg.Vec3) bool {
	vy := y.Vertex(vertexY)
	f := x.Shape.Template.Faces[faceX]
	n := x.NonUnitNormal(faceX)

	var ex1 linalg.Vec3
	for i := len(f) - 1; i >= 0; i-- {
		vx := x.Vertex(f[i].Vertex)
		if abs(normalY.Dot(vx.Sub(vy))) <= consts.DistanceThreshold {
			ex1 = vx
			break
		}
	}
	for _, fv := range f {
		ex2 := x.Vertex(fv.Vertex)
		if abs(normalY.Dot(ex2.Sub(vy))) > consts.DistanceThreshold {
			continue
		}
		m := ex2.Sub(ex1).Cross(n).Normalize()
		if m.Dot(vy.Sub(ex1)) > 0 {
			return false
		}
		ex1 = ex2
	}
	return true
}

// GetContacts derives the contact manifold from a non-intersecting
// separating-plane result. It panics if result describes an intersecting
// pair, since there is then no separating plane to derive a manifold from.
func GetContacts(result *collision.IntersectResult) []*Contact {
	if result.Intersecting {
		panic("contact: GetContacts requires a separating-plane result")
	}

	index, t := findTopologicalElement(result)
	switch t {
	case face:
		return getContactsFace(result, index, false)
	case specialFace:
		return getContactsFace(result, index, true)
	case edge:
		return getContactsEdge(result, index)
	case vertex:
		return getContactsVertex(result, index)
	default:
		panic("contact: unreachable topology")
	}
}

func getContactsVertex(result *collision.IntersectResult, index int) []*Contact {
	var contacts []*Contact
	if result.EdgeEdge {
		panic("contact: vertex topology cannot coincide with an edge-edge separating plane")
	}
	if insideFace(result.B, result.A, result.FaceB, index) {
		pb := result.B.Vertex(result.B.Shape.Template.Faces[result.FaceB][0].Vertex)
		p := result.A.Vertex(index)
		contacts = append(contacts, NewFace(p, result.N, result.A, result.B, pb))
	}
	return contacts
}

func getContactsEdge(result *collision.IntersectResult, index int) []*Contact {
	var contacts []*Contact
	a, b := result.A, result.B

	if result.EdgeEdge {
		ea1 := a.Vertex(a.Shape.Template.Edges[index].A)
		ea2 := a.Vertex(a.Shape.Template.Edges[index].B)

		eb1 := b.Vertex(b.Shape.Template.Edges[result.EBIdx].A)
		eb2 := b.Vertex(b.Shape.Template.Edges[result.EBIdx].B)

		m := result.N.Cross(result.EB).Normalize()
		distEa1 := m.Dot(ea1.Sub(eb1))
		distEa2 := m.Dot(ea2.Sub(eb1))

		k := result.N.Cross(result.EA).Normalize()
		distEb1 := k.Dot(eb1.Sub(ea1))
		distEb2 := k.Dot(eb2.Sub(ea1))

		if distEa1*distEa2 <= 0 && distEb1*distEb2 <= 0 {
			x := ea2.Sub(ea1).Normalize()
			v := ea2.Sub(x.Mul(distEa2 / x.Dot(m)))
			pb := b.Vertex(b.Shape.Template.Edges[result.EBIdx].A)
			contacts = append(contacts, NewEdge(v, result.N, a, b, pb, result.EA, result.EB))
		}
		return contacts
	}

	ea1 := a.Vertex(a.Shape.Template.Edges[index].A)
	ea2 := a.Vertex(a.Shape.Template.Edges[index].B)
	ea := ea1.Sub(ea2).Normalize()

	edgeA := a.Shape.Template.Edges[index]
	ea1Inside := insideFace(b, a, result.FaceB, edgeA.A)
	ea2Inside := insideFace(b, a, result.FaceB, edgeA.B)

	var p1, p2, ebOne, ebTwo linalg.Vec3
	var p1Found, p2Found bool

	fb := b.Shape.Template.Faces[result.FaceB]
	eb1 := b.Vertex(fb[len(fb)-1].Vertex)
	for _, fv := range fb {
		eb2 := b.Vertex(fv.Vertex)
		if p, ok := test(eb1, eb2, result.N, ea1, ea2); ok {
			if !p1Found {
				p1, p1Found = p, true
				ebOne = eb2.Sub(eb1).Normalize()
			} else {
				p2, p2Found = p, true
				ebTwo = eb2.Sub(eb1).Normalize()
			}
		}
		eb1 = eb2
	}

	switch {
	case ea1Inside && ea2Inside:
		contacts = append(contacts, NewFace(ea1, result.N, a, b, eb1))
		contacts = append(contacts, NewFace(ea2, result.N, a, b, eb1))
	case ea1Inside != ea2Inside:
		n1 := ea.Cross(ebOne).Normalize()
		if n1.Dot(p1.Sub(b.X)) < 0 {
			ebOne = ebOne.Mul(-1)
			n1 = ea.Cross(ebOne).Normalize()
		}
		if ea1Inside {
			contacts = append(contacts, NewFace(ea1, result.N, a, b, eb1))
		} else {
			contacts = append(contacts, NewFace(ea2, result.N, a, b, eb1))
		}
		contacts = append(contacts, NewEdge(p1, n1, a, b, eb1, ea, ebOne))
	case !ea1Inside && !ea2Inside && p1Found && p2Found:
		n1 := ea.Cross(ebOne).Normalize()
		if n1.Dot(p1.Sub(b.X)) < 0 {
			ebOne = ebOne.Mul(-1)
			n1 = ea.Cross(ebTwo).Normalize()
		}
		n2 := ea.Cross(ebOne).Normalize()
		if n2.Dot(p2.Sub(b.X)) < 0 {
			ebTwo = ebTwo.Mul(-1)
			n2 = ea.Cross(ebTwo).Normalize()
		}
		contacts = append(contacts, NewEdge(p1, n1, a, b, eb1, ea, ebOne))
		contacts = append(contacts, NewEdge(p2, n2, a, b, eb1, ea, ebTwo))
	case !ea1Inside && !ea2Inside && !p1Found && !p2Found:
		// no contact points: the edge misses the face entirely
	default:
		panic("contact: unreachable edge/face intersection case")
	}

	return contacts
}

// getContactsFace handles both the FACE and SPECIAL_FACE cases; checkDistance
// restricts the face-border walk to the vertices within consts.DistanceThreshold
// of the separating plane, which is needed when not every vertex of the face
// actually lies on it.
func getContactsFace(result *collision.IntersectResult, fai int, checkDistance bool) []*Contact {
	a, b := result.A, result.B

	if result.EdgeEdge {
		return getContactsFaceEdge(result, fai, checkDistance)
	}
	return getContactsFaceFace(result, fai, checkDistance, a, b)
}

func getContactsFaceEdge(result *collision.IntersectResult, fai int, checkDistance bool) []*Contact {
	var contacts []*Contact
	a, b := result.A, result.B

	edgeB := b.Shape.Template.Edges[result.EBIdx]
	eb1 := b.Vertex(edgeB.A)
	eb2 := b.Vertex(edgeB.B)
	eb := eb1.Sub(eb2).Normalize()

	eb1Inside := insideFace(a, b, fai, edgeB.A)
	eb2Inside := insideFace(a, b, fai, edgeB.B)

	var p1, p2, eaOne, eaTwo linalg.Vec3
	var p1Found, p2Found bool

	fa := a.Shape.Template.Faces[fai]
	var ea1 linalg.Vec3
	if checkDistance {
		n := len(fa)
		for i := 0; i < n; i++ {
			v := a.Vertex(fa[n-1-i].Vertex)
			if abs(result.Dist(v)) <= consts.DistanceThreshold {
				ea1 = v
				break
			}
		}
	} else {
		ea1 = a.Vertex(fa[len(fa)-1].Vertex)
	}
	for _, fv := range fa {
		ea2 := a.Vertex(fv.Vertex)
		if checkDistance && abs(result.Dist(ea2)) > consts.DistanceThreshold {
			continue
		}
		if p, ok := test(ea1, ea2, a.NonUnitNormal(fai), eb1, eb2); ok {
			if !p1Found {
				p1, p1Found = p, true
				eaOne = ea2.Sub(ea1).Normalize()
			} else {
				p2, p2Found = p, true
				eaTwo = ea2.Sub(ea1).Normalize()
			}
		}
		ea1 = ea2
	}

	switch {
	case eb1Inside && eb2Inside:
		contacts = append(contacts, NewFace(eb1, result.N.Mul(-1), b, a, ea1))
		contacts = append(contacts, NewFace(eb2, result.N.Mul(-1), b, a, ea1))
	case eb1Inside != eb2Inside:
		n1 := eaOne.Cross(eb).Normalize()
		if n1.Dot(p1.Sub(b.X)) < 0 {
			eaOne = eaOne.Mul(-1)
			n1 = eaOne.Cross(eb).Normalize()
		}
		if eb1Inside {
			contacts = append(contacts, NewFace(eb1, result.N.Mul(-1), b, a, ea1))
		} else {
			contacts = append(contacts, NewFace(eb2, result.N.Mul(-1), b, a, ea1))
		}
		contacts = append(contacts, NewEdge(p1, n1, a, b, ea1, eaOne, eb))
	case !eb1Inside && !eb2Inside && p1Found && p2Found:
		n1 := eaOne.Cross(eb).Normalize()
		if n1.Dot(p1.Sub(b.X)) < 0 {
			eaOne = eaOne.Mul(-1)
			n1 = eaOne.Cross(eb).Normalize()
		}
		n2 := eaTwo.Cross(eb).Normalize()
		if n2.Dot(p2.Sub(b.X)) < 0 {
			eaTwo = eaTwo.Mul(-1)
			n2 = eaTwo.Cross(eb).Normalize()
		}
		contacts = append(contacts, NewEdge(p1, n1, a, b, ea1, eaOne, eb))
		contacts = append(contacts, NewEdge(p2, n2, a, b, ea1, eaTwo, eb))
	case !eb1Inside && !eb2Inside && !p1Found && !p2Found:
		// no contact points
	default:
		panic("contact: unreachable face/edge intersection case")
	}

	return contacts
}

func getContactsFaceFace(result *collision.IntersectResult, fai int, checkDistance bool, a, b *body.RigidBody) []*Contact {
	var contacts []*Contact

	faceA := a.Shape.Template.Faces[fai]
	var prevVA int
	if checkDistance {
		n := len(faceA)
		for i := 0; i < n; i++ {
			idx := faceA[n-1-i].Vertex
			v := a.Vertex(idx)
			if abs(result.Dist(v)) <= consts.DistanceThreshold {
				prevVA = idx
				break
			}
		}
	} else {
		prevVA = faceA[len(faceA)-1].Vertex
	}
	prevVAInside := insideFace(b, a, result.FaceB, prevVA)

	var lastEb1 linalg.Vec3
	for _, fv := range faceA {
		thisVA := fv.Vertex
		thisVAInside := insideFace(b, a, result.FaceB, thisVA)

		ea1 := a.Vertex(prevVA)
		ea2 := a.Vertex(thisVA)

		if checkDistance && abs(result.Dist(ea2)) > consts.DistanceThreshold {
			prevVA = thisVA
			prevVAInside = thisVAInside
			continue
		}

		var p1, p2, eaOne, ebOne, nOne, eaTwo, ebTwo, nTwo linalg.Vec3
		intersections := 0

		faceB := b.Shape.Template.Faces[result.FaceB]
		eb1 := b.Vertex(faceB[len(faceB)-1].Vertex)
		for _, bfv := range faceB {
			eb2 := b.Vertex(bfv.Vertex)
			if p, ok := test(eb1, eb2, b.NonUnitNormal(result.FaceB), ea1, ea2); ok {
				if intersections == 0 {
					p1 = p
					eaOne = ea1.Sub(ea2).Normalize()
					ebOne = eb1.Sub(eb2).Normalize()
					nOne = eaOne.Cross(ebOne).Normalize()
					if nOne.Dot(p1.Sub(b.X)) < 0 {
						eaOne = eaOne.Mul(-1)
						nOne = eaOne.Cross(ebOne).Normalize()
					}
				} else {
					p2 = p
					eaTwo = ea1.Sub(ea2).Normalize()
					ebTwo = eb1.Sub(eb2).Normalize()
					nTwo = eaTwo.Cross(ebTwo).Normalize()
					if nTwo.Dot(p2.Sub(b.X)) < 0 {
						eaTwo = eaTwo.Mul(-1)
						nTwo = eaTwo.Cross(ebTwo).Normalize()
					}
				}
				intersections++
			}
			eb1 = eb2
		}
		lastEb1 = eb1

		switch {
		case !prevVAInside && !thisVAInside:
			if intersections == 2 {
				contacts = append(contacts, NewEdge(p1, nOne, a, b, eb1, eaOne, ebOne))
				contacts = append(contacts, NewEdge(p2, nTwo, a, b, eb1, eaTwo, ebTwo))
			}
		case !prevVAInside && thisVAInside:
			contacts = append(contacts, NewEdge(p1, nOne, a, b, eb1, eaOne, ebOne))
			contacts = append(contacts, NewFace(a.Vertex(thisVA), result.N, a, b, eb1))
		case prevVAInside && !thisVAInside:
			contacts = append(contacts, NewEdge(p1, nOne, a, b, eb1, eaOne, ebOne))
		default: // prevVAInside && thisVAInside
			contacts = append(contacts, NewFace(a.Vertex(thisVA), result.N, a, b, eb1))
		}

		prevVA = thisVA
		prevVAInside = thisVAInside
	}

	// Second pass from B's point of view: only endpoints of B contained
	// in A's face are added, to avoid duplicating the edge/edge
	// intersections already found above.
	fbn := b.NonUnitNormal(result.FaceB).Normalize()
	faceB := b.Shape.Template.Faces[result.FaceB]
	prevVB := faceB[len(faceB)-1].Vertex
	var prevVBInside bool
	if checkDistance {
		prevVBInside = insideFaceNear(a, b, fai, prevVB, fbn)
	} else {
		prevVBInside = insideFace(a, b, fai, prevVB)
	}
	for _, bfv := range faceB {
		thisVB := bfv.Vertex
		var thisVBInside bool
		if checkDistance {
			thisVBInside = insideFaceNear(a, b, fai, thisVB, fbn)
		} else {
			thisVBInside = insideFace(a, b, fai, thisVB)
		}

		if !prevVBInside && thisVBInside || prevVBInside && thisVBInside {
			contacts = append(contacts, NewFace(
				b.Vertex(thisVB),
				a.NonUnitNormal(fai).Normalize(),
				b, a,
				a.Vertex(faceA[0].Vertex),
			))
		}

		prevVB = thisVB
		prevVBInside = thisVBInside
	}
	_ = lastEb1

	return contacts
}
