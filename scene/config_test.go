package scene

import (
	"testing"

	"github.com/hedron-sim/hedron/shape"
	"github.com/stretchr/testify/assert"
)

const sampleYAML = `
gravity: true
drag: false
bodies:
  - shape: cube
    size: [16, 1, 16]
    mass: 0
    position: [0, -0.5, 0]
  - shape: icosahedron
    size: [1, 1, 1]
    mass: 2
    position: [0, 3, 0]
    rotation_axis: [0, 1, 0]
    rotation_angle: 0.5
    momentum: [1, 0, 0]
    angular_momentum: [0, 0.2, 0]
`

func TestFromYAMLBuildsExpectedSystem(t *testing.T) {
	sys, err := FromYAML([]byte(sampleYAML))
	assert.NoError(t, err)
	assert.Len(t, sys.Bodies, 2)
	assert.Len(t, sys.Generators, 1)

	assert.True(t, sys.Bodies[0].Static())
	assert.Equal(t, shape.Cube, sys.Bodies[0].Shape.Kind)

	assert.False(t, sys.Bodies[1].Static())
	assert.Equal(t, shape.Icosahedron, sys.Bodies[1].Shape.Kind)
	assert.Equal(t, 1.0, sys.Bodies[1].P[0])
}

func TestFromYAMLRejectsUnknownShape(t *testing.T) {
	const bad = `
bodies:
  - shape: sphere
    size: [1, 1, 1]
    mass: 1
    position: [0, 0, 0]
`
	_, err := FromYAML([]byte(bad))
	assert.Error(t, err)
}

func TestFromYAMLRejectsMalformedDocument(t *testing.T) {
	_, err := FromYAML([]byte("not: [valid"))
	assert.Error(t, err)
}
