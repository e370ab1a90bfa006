package scene

// config.go lets a scene be described declaratively in YAML instead of
// Go, for fixtures and tools that want to describe a body layout as data.

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/hedron-sim/hedron/body"
	"github.com/hedron-sim/hedron/force"
	"github.com/hedron-sim/hedron/shape"
)

// shapeKinds maps the YAML shape name to the catalog kind it selects.
var shapeKinds = map[string]shape.Kind{
	"cube":        shape.Cube,
	"icosahedron": shape.Icosahedron,
}

// vec3 is the YAML-friendly [x, y, z] encoding of a vector.
type vec3 [3]float64

func (v vec3) toMgl() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// bodyConfig describes one body's shape, mass and initial state.
type bodyConfig struct {
	Shape    string  `yaml:"shape"`
	Size     vec3    `yaml:"size"`
	Mass     float64 `yaml:"mass"`
	Position vec3    `yaml:"position"`
	// Rotation is an axis-angle pair: angle in radians about axis.
	RotationAxis    *vec3   `yaml:"rotation_axis,omitempty"`
	RotationAngle   float64 `yaml:"rotation_angle,omitempty"`
	Momentum        *vec3   `yaml:"momentum,omitempty"`
	AngularMomentum *vec3   `yaml:"angular_momentum,omitempty"`
}

// Config is the top-level YAML schema for a declarative scene: a list of
// bodies plus which force generators act on them.
type Config struct {
	Gravity bool         `yaml:"gravity"`
	Drag    bool         `yaml:"drag"`
	Bodies  []bodyConfig `yaml:"bodies"`
}

func (c bodyConfig) withMass() (*shape.WithMass, error) {
	kind, ok := shapeKinds[c.Shape]
	if !ok {
		return nil, fmt.Errorf("scene: unknown shape kind %q", c.Shape)
	}
	size := c.Size.toMgl()
	switch kind {
	case shape.Cube:
		return shape.NewBox(size, c.Mass), nil
	case shape.Icosahedron:
		return shape.NewIcosahedron(size, c.Mass), nil
	default:
		return nil, fmt.Errorf("scene: unhandled shape kind %q", c.Shape)
	}
}

// Build turns a parsed Config into a fresh body.System.
func (c *Config) Build() (*body.System, error) {
	out := body.NewSystem()

	for i, bc := range c.Bodies {
		wm, err := bc.withMass()
		if err != nil {
			return nil, fmt.Errorf("scene: body %d: %w", i, err)
		}

		x := bc.Position.toMgl()
		a := mgl64.Ident3()
		if bc.RotationAxis != nil {
			a = rotation(bc.RotationAngle, bc.RotationAxis.toMgl())
		}

		var p, l mgl64.Vec3
		if bc.Momentum != nil {
			p = bc.Momentum.toMgl()
		}
		if bc.AngularMomentum != nil {
			l = bc.AngularMomentum.toMgl()
		}

		out.Add(body.NewWithState(x, a, p, l, wm))
	}

	if c.Gravity {
		out.Generators = append(out.Generators, force.Gravity())
	}
	if c.Drag {
		out.Generators = append(out.Generators, force.Drag())
	}

	return out, nil
}

// FromYAML parses a declarative scene description and builds its
// body.System.
func FromYAML(data []byte) (*body.System, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scene: parsing config: %w", err)
	}
	return cfg.Build()
}
