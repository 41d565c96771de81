// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asteroid generates closed, smooth-shaded, vertex-colored
// asteroid meshes: ellipsoids of latitude rings perturbed by seeded noise
// and closed by a single vertex at each pole.
package asteroid

import (
	"log/slog"

	"cogentcore.org/procgen/draw"
	"cogentcore.org/procgen/math32"
	"cogentcore.org/procgen/mesh"
	"cogentcore.org/procgen/noise"
)

// DefaultNoiseRadius is the default radius of the noise sampling cylinder.
const DefaultNoiseRadius = 2

// Noise scale factors applied to the sampled tables.
const (
	// AngleNoiseScale scales the heading and pitch offsets.
	AngleNoiseScale = 0.75

	// RadiusNoiseScale scales the radius offsets, bounding every vertex
	// within 1 + RadiusNoiseScale times the largest bound.
	RadiusNoiseScale = 0.5

	// StepFraction is the fraction of a lattice cell that a scaled
	// angle offset of 1 moves a vertex.
	StepFraction = 0.9
)

// Generator generates asteroid meshes. It is safe for concurrent use
// as long as its Sampler is; the [Connector] cache is shared by all
// meshes generated with it.
type Generator struct {

	// Connector connects consecutive rings; nil uses a new one per call.
	Connector *mesh.Connector

	// Sampler samples the noise tables; nil uses [noise.NewSampler].
	Sampler *noise.Sampler
}

// NewGenerator returns a new [Generator] with its own connector cache.
func NewGenerator() *Generator {
	return &Generator{Connector: mesh.NewConnector(), Sampler: noise.NewSampler()}
}

// Generate generates an asteroid with a new [Generator].
// See [Generator.Generate].
func Generate(bounds, colorA, colorB math32.Vector3, noiseRadius float32, seed ...int64) (*mesh.Buffer, error) {
	return NewGenerator().Generate(bounds, colorA, colorB, noiseRadius, seed...)
}

// Layout returns the per-axis segment counts, the number of vertices
// per ring and the number of rings, including the two poles, of an
// asteroid with the given bounds.
func Layout(bounds math32.Vector3) (segments math32.Vector3i, angularSteps, ringCount int) {
	segLen := bounds.MinComponent() / 4
	segments = math32.Vector3iFromVector3(bounds.DivScalar(segLen)).AddScalar(1)
	angularSteps = int(segments.X+segments.Y-2) * 3
	ringCount = angularSteps/2 + 1
	return
}

// Generate returns the exported mesh of an asteroid fitting the
// ellipsoid with the given half-extents. Each surface color is a blend
// of colorA and colorB with alpha 1. noiseRadius is the radius of the
// noise sampling cylinder (<= 0 selects a radius proportional to the
// resolution); a larger radius gives a rougher surface. The optional
// seed makes the result bit-identical across calls.
//
// Bounds that are not positive and finite return an
// [*InvalidBoundsError] before any noise is sampled, and noise
// failures return a [*noise.GenerationError].
func (g *Generator) Generate(bounds, colorA, colorB math32.Vector3, noiseRadius float32, seed ...int64) (*mesh.Buffer, error) {
	ms, err := g.GenerateMesh(bounds, colorA, colorB, noiseRadius, seed...)
	if err != nil {
		return nil, err
	}
	return ms.Export(), nil
}

// GenerateMesh is like [Generator.Generate], returning the mesh before export.
func (g *Generator) GenerateMesh(bounds, colorA, colorB math32.Vector3, noiseRadius float32, seed ...int64) (*mesh.Mesh, error) {
	if err := checkBounds(bounds); err != nil {
		return nil, err
	}
	segments, hn, pn := Layout(bounds)
	smp := g.Sampler
	if smp == nil {
		smp = noise.NewSampler()
	}
	tb, err := smp.Sample(hn, pn, noiseRadius, seed...)
	if err != nil {
		return nil, err
	}
	slog.Debug("asteroid: generating", "bounds", bounds, "segments", segments, "angularSteps", hn, "rings", pn, "seed", tb.Seed)

	cn := g.Connector
	if cn == nil {
		cn = mesh.NewConnector()
	}
	ms := mesh.New("asteroid")
	sf := newSurface(tb, bounds, colorA, colorB)
	rings := sf.build(ms)
	if err := mesh.ConnectRings(ms, cn, rings, true, true, true); err != nil {
		return nil, err
	}
	return ms, nil
}

// surface holds the scaled noise and sampling steps of one asteroid.
type surface struct {
	tb             *noise.Tables
	bounds         math32.Vector3
	colorA, colorB math32.Vector3

	// colors are the color factors, normalized to [0, 1] per ring.
	colors [][]float32

	headings []float32
	pitches  []float32
	hStep    float32
	pStep    float32
}

func newSurface(tb *noise.Tables, bounds, colorA, colorB math32.Vector3) *surface {
	hn, pn := tb.AngularSteps, tb.RingCount
	sf := &surface{tb: tb, bounds: bounds, colorA: colorA, colorB: colorB}
	sf.headings = make([]float32, hn)
	for i := range hn {
		sf.headings[i] = 360 * float32(i) / float32(hn)
	}
	sf.pitches = make([]float32, pn)
	for r := range pn {
		sf.pitches[r] = -90 + 180*float32(r)/float32(pn-1)
	}
	sf.hStep = (360 / float32(hn)) * StepFraction
	sf.pStep = (sf.pitches[1] - sf.pitches[0]) * StepFraction

	sf.colors = make([][]float32, pn)
	for r, row := range tb.Channel(noise.Color) {
		sf.colors[r] = normalize(row)
	}
	return sf
}

// normalize returns row rescaled to fill [0, 1], or all 0.5 if
// the row is constant.
func normalize(row []float32) []float32 {
	mn, mx := row[0], row[0]
	for _, v := range row {
		mn = math32.Min(mn, v)
		mx = math32.Max(mx, v)
	}
	out := make([]float32, len(row))
	for i, v := range row {
		if mx == mn {
			out[i] = 0.5
			continue
		}
		out[i] = (v - mn) / (mx - mn)
	}
	return out
}

func average(row []float32) float32 {
	var sum float32
	for _, v := range row {
		sum += v
	}
	return sum / float32(len(row))
}

// blend returns the color f of the way from colorB to colorA.
func (sf *surface) blend(f float32) math32.Vector4 {
	return math32.Vector4FromVector3(sf.colorA.MulScalar(f).Add(sf.colorB.MulScalar(1-f)), 1)
}

// build adds the vertices of all rings to ms, from the bottom pole
// to the top pole, and returns their ids per ring.
func (sf *surface) build(ms *mesh.Mesh) [][]int {
	pn := len(sf.pitches)
	rg := draw.NewRig()
	rings := make([][]int, pn)
	for r, p := range sf.pitches {
		if r == 0 || r == pn-1 {
			rings[r] = sf.pole(ms, rg, r, p)
			continue
		}
		rings[r] = sf.ring(ms, rg, r, p)
	}
	return rings
}

// pole adds the single vertex of a pole ring and returns it
// repeated once per angular step.
func (sf *surface) pole(ms *mesh.Mesh, rg *draw.Rig, r int, p float32) []int {
	rad := sf.tb.Channel(noise.Radius)[r]
	radius := sf.bounds.Z + average(rad)*RadiusNoiseScale*sf.bounds.Z
	rg.SetHeadingPitchRadius(0, p, radius)
	vid := ms.AddVertex(rg.WorldPos(), sf.blend(average(sf.colors[r])))
	ids := make([]int, len(sf.headings))
	for i := range ids {
		ids[i] = vid
	}
	return ids
}

// ring adds the perturbed vertices of an interior ring.
func (sf *surface) ring(ms *mesh.Mesh, rg *draw.Rig, r int, p float32) []int {
	pr := math32.DegToRad(p)
	cosP := math32.Abs(math32.Cos(pr))
	radZ := math32.Abs(math32.Sin(pr)) * sf.bounds.Z
	ids := make([]int, len(sf.headings))
	for i, h := range sf.headings {
		hr := math32.DegToRad(h)
		// heading 0 faces +Y
		radX := math32.Abs(math32.Sin(hr)) * sf.bounds.X
		radY := math32.Abs(math32.Cos(hr)) * sf.bounds.Y
		radH := math32.Sqrt(radX*radX+radY*radY) * cosP
		radius := math32.Sqrt(radH*radH + radZ*radZ)

		ho := sf.tb.At(noise.Heading, r, i) * AngleNoiseScale
		po := sf.tb.At(noise.Pitch, r, i) * AngleNoiseScale
		ro := sf.tb.At(noise.Radius, r, i) * RadiusNoiseScale
		rg.SetHeadingPitchRadius(h+ho*sf.hStep, p+po*sf.pStep, radius*(1+ro))
		ids[i] = ms.AddVertex(rg.WorldPos(), sf.blend(sf.colors[r][i]))
	}
	return ids
}
