package math

import "math"

// Mat4 is a 4x4 matrix stored column by column, so it uploads to a GLSL
// mat4 uniform without transposition. Element (row r, column c) is
// m[c*4+r]; the translation of an affine transform sits in m[12:15].
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Scale(1, 1, 1)
}

// Ortho maps the box [left, right] x [bottom, top] x [-near, -far] onto
// clip space.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	w, h, d := right-left, top-bottom, far-near
	return Mat4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, -2 / d, 0,
		-(right + left) / w, -(top + bottom) / h, -(far + near) / d, 1,
	}
}

// Translate returns a matrix moving points by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a matrix scaling each axis independently.
func Scale(x, y, z float32) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = x, y, z, 1
	return m
}

// RotateZ returns a counterclockwise rotation by angle radians about Z.
func RotateZ(angle float32) Mat4 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mul returns m * n, the transform applying n first and m second.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := range 4 {
		for r := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}
