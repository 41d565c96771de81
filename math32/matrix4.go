// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Translation4 returns a new translation [Matrix4] for the given offset.
func Translation4(v Vector3) *Matrix4 {
	m := &Matrix4{}
	m.SetTranslation(v.X, v.Y, v.Z)
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetRotationX sets this matrix to a rotation matrix of angle by X axis.
// Angle is in radians.
func (m *Matrix4) SetRotationX(theta float32) {
	c := Cos(theta)
	s := Sin(theta)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ sets this matrix to a rotation matrix of angle by Z axis.
// Angle is in radians.
func (m *Matrix4) SetRotationZ(theta float32) {
	c := Cos(theta)
	s := Sin(theta)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transformation matrix
// using the specified x, y and z values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetLookAt sets this matrix to a rotation whose local +Y axis faces
// the given forward direction and whose local +Z axis is as close as
// possible to the given up vector. If forward is parallel to up, the
// world +Y axis is used as the up vector instead.
func (m *Matrix4) SetLookAt(forward, up Vector3) {
	fwd := forward.Normal()
	if fwd.LengthSquared() == 0 {
		m.SetIdentity()
		return
	}
	right := fwd.Cross(up)
	if right.LengthSquared() == 0 {
		right = fwd.Cross(Vec3(0, 1, 0))
	}
	right = right.Normal()
	nup := right.Cross(fwd)
	m.Set(
		right.X, fwd.X, nup.X, 0,
		right.Y, fwd.Y, nup.Y, 0,
		right.Z, fwd.Z, nup.Z, 0,
		0, 0, 0, 1,
	)
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	*m = r
}

// MulVector3AsPoint returns the given point transformed by this matrix,
// treating it as a point with w = 1 (translation applies).
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12],
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13],
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14],
	)
}

// MulVector3AsVector returns the given direction transformed by this matrix,
// treating it as a vector with w = 0 (translation does not apply).
func (m *Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z,
	)
}

// Pos returns the translation component of this matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of this
// matrix, which transforms surface normals consistently with points.
func (m *Matrix4) NormalMatrix() *Matrix3 {
	nm := Matrix3FromMatrix4(m).Inverse()
	return nm.Transpose()
}
