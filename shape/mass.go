package shape

import "github.com/go-gl/mathgl/mgl64"

// WithMass pairs a catalog Shape with the per-instance mass properties a
// rigid body needs: inverse mass, inverse body-frame inertia tensor, and
// the per-axis scale that was applied to the template's unit dimensions.
type WithMass struct {
	Template *Shape
	// Kind identifies which catalog template Template is, so a rendering
	// collaborator can pick a mesh without comparing pointers itself.
	Kind     Kind
	InvMass  float64
	// InvBodyInertia is diagonal in the shape's own frame, since both
	// catalog templates are built symmetric about their centroid.
	InvBodyInertia mgl64.Mat3
	Scale          mgl64.Vec3
}

// Vertex returns model-space vertex i scaled by Scale.
func (w *WithMass) Vertex(i int) mgl64.Vec3 {
	v := w.Template.Vertices[i]
	return mgl64.Vec3{v[0] * w.Scale[0], v[1] * w.Scale[1], v[2] * w.Scale[2]}
}

// NewBox builds the mass properties of a solid box of the given side
// lengths and mass, using the catalog cube as its topology template. A
// zero mass means infinite: InvMass and InvBodyInertia are both zero,
// matching how the rest of the pipeline tests for immovable bodies.
func NewBox(size mgl64.Vec3, mass float64) *WithMass {
	w := &WithMass{Template: Catalog(Cube), Kind: Cube, Scale: size}
	if mass == 0 {
		return w
	}
	w.InvMass = 1 / mass
	sx, sy, sz := size[0]*size[0], size[1]*size[1], size[2]*size[2]
	w.InvBodyInertia = mgl64.Mat3{
		12 * w.InvMass / (sy + sz), 0, 0,
		0, 12 * w.InvMass / (sx + sz), 0,
		0, 0, 12 * w.InvMass / (sx + sy),
	}
	return w
}

// NewIcosahedron builds the mass properties of a solid icosahedron of
// the given (uniform) size and mass, using the catalog icosahedron as
// its topology template.
func NewIcosahedron(size mgl64.Vec3, mass float64) *WithMass {
	w := &WithMass{Template: Catalog(Icosahedron), Kind: Icosahedron, Scale: size}
	if mass == 0 {
		return w
	}
	w.InvMass = 1 / mass
	w.InvBodyInertia = mgl64.Mat3{
		10 * w.InvMass / (size[0] * size[0] * phi), 0, 0,
		0, 10 * w.InvMass / (size[1] * size[1] * phi), 0,
		0, 0, 10 * w.InvMass / (size[2] * size[2] * phi),
	}
	return w
}
