// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"fmt"
	"log/slog"

	"cogentcore.org/procgen/base/randx"
	"cogentcore.org/procgen/math32"
)

// DefaultMaxAttempts is the default number of seeds a [Sampler] tries.
const DefaultMaxAttempts = 8

// Sampler samples noise [Tables]. A Sampler holds no per-call state,
// so it can be shared by concurrent callers as long as its Rand is
// safe for concurrent use (the global source is).
type Sampler struct {

	// Field returns the noise field for a seed; nil uses [OpenSimplex].
	Field FieldFunc

	// Rand is the source of replacement seeds; nil uses the global source.
	Rand randx.Rand

	// MaxAttempts is the maximum number of seeds to try before failing;
	// values <= 0 use [DefaultMaxAttempts].
	MaxAttempts int
}

// NewSampler returns a new [Sampler] using OpenSimplex noise and the
// global random source.
func NewSampler() *Sampler {
	return &Sampler{Field: OpenSimplex, MaxAttempts: DefaultMaxAttempts}
}

// Sample samples the four noise channels with [NewSampler].
// See [Sampler.Sample].
func Sample(angularSteps, ringCount int, radius float32, seed ...int64) (*Tables, error) {
	return NewSampler().Sample(angularSteps, ringCount, radius, seed...)
}

// Sample returns four [Tables] channels of ringCount rows by
// angularSteps samples, taken on a cylinder of the given radius
// (radius <= 0 selects a radius proportional to angularSteps).
// Raw field values are clamped to [-1, 1] before damping.
// The optional seed makes the result reproducible; without one a
// random seed is drawn. If the field fails for a seed, a new random
// seed is tried, up to MaxAttempts, after which a [*GenerationError]
// is returned.
func (s *Sampler) Sample(angularSteps, ringCount int, radius float32, seed ...int64) (*Tables, error) {
	if angularSteps < 2 || ringCount < 3 {
		return nil, fmt.Errorf("%w: need at least 2 angular steps and 3 rings, got %d and %d", ErrInvalidLattice, angularSteps, ringCount)
	}
	lat := newLattice(angularSteps, ringCount, radius)

	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	var sd int64
	if len(seed) > 0 {
		sd = seed[0]
	} else {
		sd = s.newSeed()
	}
	ff := s.Field
	if ff == nil {
		ff = OpenSimplex
	}

	tried := make([]int64, 0, attempts)
	var err error
	for a := 0; a < attempts; a++ {
		if a > 0 {
			sd = s.newSeed()
		}
		tried = append(tried, sd)
		var tb *Tables
		tb, err = lat.sample(ff(sd), sd)
		if err == nil {
			slog.Debug("noise: sampled tables", "seed", sd, "attempt", a+1, "angularSteps", angularSteps, "rings", ringCount)
			return tb, nil
		}
		slog.Debug("noise: retrying with a new seed", "seed", sd, "err", err)
	}
	return nil, &GenerationError{Seeds: tried, Err: err}
}

func (s *Sampler) newSeed() int64 {
	if s.Rand == nil {
		return randx.NewSeed()
	}
	return randx.NewSeed(s.Rand)
}

// lattice holds the sample coordinates shared by all channels.
type lattice struct {
	xs, ys, zs []float32
	damping    []float32
	radius     float32
}

func newLattice(angularSteps, ringCount int, radius float32) *lattice {
	if radius <= 0 {
		half := float32(angularSteps) / 2
		radius = math32.Sqrt(half * half * 2)
	}
	lat := &lattice{
		xs:      make([]float32, angularSteps),
		ys:      make([]float32, angularSteps),
		zs:      make([]float32, ringCount),
		damping: make([]float32, ringCount),
		radius:  radius,
	}
	step := 2 * math32.Pi * radius / float32(angularSteps)
	for i := range angularSteps {
		ang := -math32.Pi + 2*math32.Pi*float32(i)/float32(angularSteps)
		lat.xs[i] = math32.Cos(ang) * radius
		lat.ys[i] = math32.Sin(ang) * radius
	}
	zmax := float32(ringCount) * step
	mid := (ringCount - 1) / 2
	for r := range ringCount {
		lat.zs[r] = zmax * float32(r) / float32(ringCount-1)
		// strongest at the middle ring, tapering towards the poles
		d := 1 - math32.Abs(float32(r-mid))/float32(mid)
		lat.damping[r] = d*0.5 + 0.5
	}
	return lat
}

// sample evaluates all channels of the lattice in the given field.
func (lat *lattice) sample(f Field, seed int64) (*Tables, error) {
	tb := &Tables{Seed: seed, AngularSteps: len(lat.xs), RingCount: len(lat.zs)}
	for c := range ChannelsN {
		off := float32(c) * lat.radius * 3
		tab := make(Table, len(lat.zs))
		for r, z := range lat.zs {
			row := make([]float32, len(lat.xs))
			for i := range lat.xs {
				v, err := eval(f, seed, math32.Vec3(lat.xs[i]+off, lat.ys[i]+off, z))
				if err != nil {
					return nil, err
				}
				row[i] = math32.Clamp(v, -1, 1) * lat.damping[r]
			}
			tab[r] = row
		}
		tb.Channels[c] = tab
	}
	return tb, nil
}

// eval evaluates the field at the given point, converting
// invalid inputs, invalid results and panics into a [*DomainError].
func eval(f Field, seed int64, p math32.Vector3) (v float32, err error) {
	if !p.IsFinite() {
		return 0, &DomainError{Seed: seed, Coord: p}
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, &DomainError{Seed: seed, Coord: p, Panic: r}
		}
	}()
	v = f.Eval3(p.X, p.Y, p.Z)
	if !math32.IsFinite(v) {
		return 0, &DomainError{Seed: seed, Coord: p, Value: v}
	}
	return v, nil
}
