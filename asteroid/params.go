// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asteroid

import (
	"cogentcore.org/procgen/math32"
	"cogentcore.org/procgen/mesh"
)

// Params are the inputs of one asteroid, in a form that can be
// read from configuration files.
type Params struct {

	// Bounds are the half-extents of the asteroid on each axis.
	Bounds [3]float32 `toml:"bounds" yaml:"bounds"`

	// ColorA is the first RGB surface color.
	ColorA [3]float32 `toml:"color_a" yaml:"color_a"`

	// ColorB is the second RGB surface color.
	ColorB [3]float32 `toml:"color_b" yaml:"color_b"`

	// NoiseRadius is the radius of the noise sampling cylinder.
	NoiseRadius float32 `toml:"noise_radius" yaml:"noise_radius"`

	// Seed is the noise seed; nil picks a random one.
	Seed *int64 `toml:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultParams returns the parameters of a unit, gray-brown asteroid.
func DefaultParams() Params {
	return Params{
		Bounds:      [3]float32{1, 1, 1},
		ColorA:      [3]float32{0.45, 0.4, 0.35},
		ColorB:      [3]float32{0.25, 0.22, 0.2},
		NoiseRadius: DefaultNoiseRadius,
	}
}

func vec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}

// BoundsVector returns the bounds as a vector.
func (p *Params) BoundsVector() math32.Vector3 {
	return vec3(p.Bounds)
}

// Validate returns an [*InvalidBoundsError] if the bounds are invalid.
func (p *Params) Validate() error {
	return checkBounds(p.BoundsVector())
}

// Generate generates the asteroid described by p with the given generator.
func (p *Params) Generate(g *Generator) (*mesh.Buffer, error) {
	var seed []int64
	if p.Seed != nil {
		seed = append(seed, *p.Seed)
	}
	return g.Generate(p.BoundsVector(), vec3(p.ColorA), vec3(p.ColorB), p.NoiseRadius, seed...)
}
