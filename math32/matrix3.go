// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float32

// Matrix3FromMatrix4 returns the upper 3x3 of the given [Matrix4].
func Matrix3FromMatrix4(m *Matrix4) *Matrix3 {
	return &Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted, the zero matrix is returned.
func (m *Matrix3) Inverse() *Matrix3 {
	det := m.Determinant()
	if det == 0 {
		return &Matrix3{}
	}
	id := 1 / det
	return &Matrix3{
		(m[4]*m[8] - m[7]*m[5]) * id,
		(m[7]*m[2] - m[1]*m[8]) * id,
		(m[1]*m[5] - m[4]*m[2]) * id,
		(m[6]*m[5] - m[3]*m[8]) * id,
		(m[0]*m[8] - m[6]*m[2]) * id,
		(m[3]*m[2] - m[0]*m[5]) * id,
		(m[3]*m[7] - m[6]*m[4]) * id,
		(m[6]*m[1] - m[0]*m[7]) * id,
		(m[0]*m[4] - m[3]*m[1]) * id,
	}
}

// Transpose returns the transpose of this matrix.
func (m *Matrix3) Transpose() *Matrix3 {
	return &Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// MulVector3 returns the given vector multiplied by this matrix.
func (m *Matrix3) MulVector3(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[3]*v.Y+m[6]*v.Z,
		m[1]*v.X+m[4]*v.Y+m[7]*v.Z,
		m[2]*v.X+m[5]*v.Y+m[8]*v.Z,
	)
}
