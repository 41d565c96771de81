// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw provides a small orientation rig for placing points
// by heading, pitch and distance, so that procedural generators never
// hand-roll spherical to Cartesian conversions.
//
// The rig uses a Z-up, Y-forward frame: positive heading turns
// counter-clockwise about +Z (seen from above), and positive pitch
// raises the forward axis towards +Z. Heading is applied first and
// pitch in the rotated frame, so a point is placed at
//
//	origin + L * Rz(heading) * Rx(pitch) * (0, radius, 0)
//
// where L is the orientation established by [Rig.Setup].
package draw

import "cogentcore.org/procgen/math32"

// Rig places points relative to an origin and a primary axis.
// The zero value is a rig at the world origin facing +Y.
type Rig struct {
	origin math32.Vector3

	// look is the orientation of the origin.
	look math32.Matrix4

	// orient is the heading / pitch orientation relative to look,
	// translated by offset.
	orient math32.Matrix4
	offset math32.Vector3

	radius float32
	ready  bool
}

// NewRig returns a new [Rig] set up at the world origin facing +Y.
func NewRig() *Rig {
	rg := &Rig{}
	rg.Setup(math32.Vector3{}, math32.Vec3(0, 1, 0))
	return rg
}

func (rg *Rig) init() {
	if rg.ready {
		return
	}
	rg.look.SetIdentity()
	rg.orient.SetIdentity()
	rg.ready = true
}

// Setup resets the orientation, then orients the rig so that its
// forward axis faces the given direction (with +Z up) and moves its
// origin to the given point.
func (rg *Rig) Setup(origin, direction math32.Vector3) {
	rg.orient.SetIdentity()
	rg.offset = math32.Vector3{}
	rg.radius = 0
	rg.look.SetLookAt(direction, math32.Vec3(0, 0, 1))
	rg.origin = origin
	rg.ready = true
}

// SetHeadingPitchRadius rotates the rig to the given heading and pitch,
// in degrees relative to the axis established by [Rig.Setup], and sets
// the drawing distance along the rotated forward axis to radius.
func (rg *Rig) SetHeadingPitchRadius(heading, pitch, radius float32) {
	rg.init()
	var rz, rx math32.Matrix4
	rz.SetRotationZ(math32.DegToRad(heading))
	rx.SetRotationX(math32.DegToRad(pitch))
	rg.orient.MulMatrices(&rz, &rx)
	rg.radius = radius
}

// SetPosHeadingPitchRadius is like [Rig.SetHeadingPitchRadius], and also
// offsets the rotation center by pos in the rig's oriented frame.
func (rg *Rig) SetPosHeadingPitchRadius(pos math32.Vector3, heading, pitch, radius float32) {
	rg.SetHeadingPitchRadius(heading, pitch, radius)
	rg.offset = pos
}

// OriginPos returns the drawing position in the frame of the rig
// origin, that is, before the orientation set up by [Rig.Setup].
func (rg *Rig) OriginPos() math32.Vector3 {
	rg.init()
	return rg.orient.MulVector3AsVector(math32.Vec3(0, rg.radius, 0)).Add(rg.offset)
}

// WorldPos returns the drawing position in the coordinate space the
// rig was set up in.
func (rg *Rig) WorldPos() math32.Vector3 {
	return rg.origin.Add(rg.look.MulVector3AsVector(rg.OriginPos()))
}

// Transform returns the full orientation transform of the rig,
// mapping the rotated local frame (before the drawing distance
// is applied) into world coordinates.
func (rg *Rig) Transform() *math32.Matrix4 {
	rg.init()
	or := rg.orient
	or[12], or[13], or[14] = rg.offset.X, rg.offset.Y, rg.offset.Z
	return math32.Translation4(rg.origin).Mul(rg.look.Mul(&or))
}
