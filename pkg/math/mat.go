package math

import "math"

// Mat2 is a 2x2 column-major matrix.
//
// Mat2 and Vec4 share an underlying type; uniform upload tells them apart
// by their declared type.
type Mat2 [4]float32

// Mat3 is a 3x3 column-major matrix.
type Mat3 [9]float32

// Identity2 returns a 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Rotate2 returns a 2D rotation matrix. angle is in radians.
func Rotate2(angle float32) Mat2 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat2{c, s, -s, c}
}

// MulVec2 multiplies the matrix by a column vector.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{m[0]*v[0] + m[2]*v[1], m[1]*v[0] + m[3]*v[1]}
}

// Identity3 returns a 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulVec3 multiplies the matrix by a column vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}
