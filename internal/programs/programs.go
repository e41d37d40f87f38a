// Package programs holds the shader programs drawn by glbind-demo.
package programs

//go:generate go run github.com/Faultbox/glbind/cmd/glbindgen

import (
	"github.com/Faultbox/glbind/pkg/glprog"
	"github.com/Faultbox/glbind/pkg/math"
)

// Triangle draws per-vertex colors scaled by a tint that pulses over time.
//
//glbind:program path=shaders/triangle
type Triangle struct {
	Data  glprog.ProgramData
	Pos   glprog.Attribute[math.Vec3] `glbind:"name=a_pos"`
	Color glprog.Attribute[[4]uint8]  `glbind:"normalized,name=a_color"`
	Tint  glprog.Uniform[math.Vec4]   `glbind:"name=u_tint"`
	Time  glprog.Uniform[float32]     `glbind:"name=u_time"`
}

// Quad fills a transformed unit square with a flat color.
//
//glbind:program vert=quadVertex frag=quadFragment
type Quad struct {
	Data      glprog.ProgramData
	Corner    glprog.Attribute[math.Vec2] `glbind:"name=a_corner"`
	Transform glprog.Uniform[math.Mat4]   `glbind:"name=u_transform"`
	Color     glprog.Uniform[math.Vec4]   `glbind:"name=u_color"`
}

// Flat fills triangles with one color, naming its fields after their GL
// variables.
//
//glbind:program path=shaders/flat
type Flat struct {
	data    glprog.ProgramData
	a_pos   glprog.Attribute[[3]float32]
	u_color glprog.Uniform[[4]float32]
}

const quadVertex = `#version 410 core

in vec2 a_corner;

uniform mat4 u_transform;

void main() {
    gl_Position = u_transform * vec4(a_corner, 0.0, 1.0);
}
`

const quadFragment = `#version 410 core

uniform vec4 u_color;

out vec4 frag_color;

void main() {
    frag_color = u_color;
}
`

// TriangleVertices returns one triangle spanning most of the viewport with
// red, green and blue corners.
func TriangleVertices() []TriangleAttr {
	return []TriangleAttr{
		{Pos: math.Vec3{-0.6, -0.5, 0}, Color: [4]uint8{255, 0, 0, 255}},
		{Pos: math.Vec3{0.6, -0.5, 0}, Color: [4]uint8{0, 255, 0, 255}},
		{Pos: math.Vec3{0, 0.6, 0}, Color: [4]uint8{0, 0, 255, 255}},
	}
}

// QuadVertices returns the corners of the unit square, drawn with
// QuadIndices as two triangles.
func QuadVertices() []QuadAttr {
	return []QuadAttr{
		{Corner: math.Vec2{0, 0}},
		{Corner: math.Vec2{1, 0}},
		{Corner: math.Vec2{1, 1}},
		{Corner: math.Vec2{0, 1}},
	}
}

// QuadIndices are the element indices of the two quad triangles.
var QuadIndices = []uint16{0, 1, 2, 2, 3, 0}

// FlatVertices returns attribute records for the given positions.
func FlatVertices(pos ...[3]float32) []FlatAttr {
	attrs := make([]FlatAttr, len(pos))
	for i, p := range pos {
		attrs[i].a_pos = p
	}
	return attrs
}
