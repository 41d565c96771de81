// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package noise samples seeded 3D noise fields over the cylindrical
// lattice used to perturb procedural asteroid meshes.
//
// A single call to [Sampler.Sample] produces four decorrelated tables
// (heading, pitch, radius and color offsets), each indexed by
// [ring][angular step]. The same seed always produces the same tables.
package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Channels are the noise tables produced by a [Sampler], in output order.
type Channels int32

const (
	// Heading holds the heading (longitude) offsets.
	Heading Channels = iota

	// Pitch holds the pitch (latitude) offsets.
	Pitch

	// Radius holds the radial offsets.
	Radius

	// Color holds the color blend factors.
	Color

	// ChannelsN is the number of channels.
	ChannelsN
)

func (c Channels) String() string {
	switch c {
	case Heading:
		return "Heading"
	case Pitch:
		return "Pitch"
	case Radius:
		return "Radius"
	case Color:
		return "Color"
	}
	return "Channels(invalid)"
}

// Field is a 3D scalar noise field.
type Field interface {
	// Eval3 returns the field value at the given point,
	// nominally in [-1, 1].
	Eval3(x, y, z float32) float32
}

// FieldFunc returns the [Field] for the given seed.
type FieldFunc func(seed int64) Field

// OpenSimplex is the default [FieldFunc], returning
// 3D OpenSimplex noise for the given seed.
func OpenSimplex(seed int64) Field {
	return opensimplex.New32(seed)
}

// Table is one noise channel, indexed by [ring][angular step].
type Table [][]float32

// Tables are the four noise channels produced for one lattice.
type Tables struct {

	// Channels are the tables, indexed by [Channels].
	Channels [ChannelsN]Table

	// Seed is the seed that produced the tables. It differs from a
	// requested seed only when that seed failed and a retry succeeded.
	Seed int64

	// AngularSteps is the number of samples per ring.
	AngularSteps int

	// RingCount is the number of rings.
	RingCount int
}

// Channel returns the table for the given channel.
func (t *Tables) Channel(c Channels) Table {
	return t.Channels[c]
}

// At returns the value of the given channel at the given ring and step.
func (t *Tables) At(c Channels, ring, step int) float32 {
	return t.Channels[c][ring][step]
}
