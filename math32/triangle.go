// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// NormalMagnitude returns the face normal of the counter-clockwise
// wound triangle a, b, c without normalizing it. Its length is twice
// the area of the triangle.
func NormalMagnitude(a, b, c Vector3) Vector3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Normal returns the unit face normal of the counter-clockwise
// wound triangle a, b, c, or the zero vector for a degenerate triangle.
func Normal(a, b, c Vector3) Vector3 {
	nv := NormalMagnitude(a, b, c)
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// TriangleArea returns the area of the triangle a, b, c.
func TriangleArea(a, b, c Vector3) float32 {
	return NormalMagnitude(a, b, c).Length() * 0.5
}
