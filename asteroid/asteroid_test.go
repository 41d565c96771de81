// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asteroid

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"cogentcore.org/procgen/math32"
	"cogentcore.org/procgen/mesh"
	"cogentcore.org/procgen/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = math32.Vec3(1, 0, 0)
	blue = math32.Vec3(0, 0, 1)
)

// countField is a noise field that counts its evaluations.
type countField struct {
	n     *atomic.Int64
	value float32
}

func (f countField) Eval3(x, y, z float32) float32 {
	f.n.Add(1)
	return f.value
}

func constSampler(n *atomic.Int64, value float32) *noise.Sampler {
	return &noise.Sampler{Field: func(seed int64) noise.Field {
		return countField{n: n, value: value}
	}}
}

func edgeCounts(b *mesh.Buffer) map[[2]uint32]int {
	edges := map[[2]uint32]int{}
	for i := range b.NumTriangle() {
		tri := b.TriangleAt(i)
		for j := range 3 {
			a, c := tri[j], tri[(j+1)%3]
			edges[[2]uint32{min(a, c), max(a, c)}]++
		}
	}
	return edges
}

func centroid(b *mesh.Buffer) math32.Vector3 {
	var c math32.Vector3
	for i := range b.NumVertex() {
		c.SetAdd(b.Position(i))
	}
	return c.DivScalar(float32(b.NumVertex()))
}

func TestLayout(t *testing.T) {
	tests := []struct {
		bounds   math32.Vector3
		segments math32.Vector3i
		steps    int
		rings    int
	}{
		{math32.Vec3(1, 1, 1), math32.Vec3i(5, 5, 5), 24, 13},
		{math32.Vec3(2, 1, 1), math32.Vec3i(9, 5, 5), 36, 19},
		{math32.Vec3(3, 2, 1), math32.Vec3i(13, 9, 5), 60, 31},
		{math32.Vec3(4, 4, 8), math32.Vec3i(5, 5, 9), 24, 13},
	}
	for _, test := range tests {
		segs, steps, rings := Layout(test.bounds)
		assert.Equal(t, test.segments, segs, test.bounds)
		assert.Equal(t, test.steps, steps, test.bounds)
		assert.Equal(t, test.rings, rings, test.bounds)
	}
}

func TestGenerateUnitSphere(t *testing.T) {
	g := NewGenerator()
	ms, err := g.GenerateMesh(math32.Vec3(1, 1, 1), red, blue, 2, 42)
	require.NoError(t, err)

	// 11 interior rings of 24 plus 2 poles
	assert.Equal(t, 2+11*24, ms.NumVertex())
	assert.Equal(t, 24*2+10*48, ms.NumTriangle())
	assert.Equal(t, 24, ms.Vertex(0).NumTriangle())
	assert.Equal(t, 24, ms.Vertex(ms.NumVertex()-1).NumTriangle())
	for id := 1; id < ms.NumVertex()-1; id++ {
		assert.Less(t, ms.Vertex(id).NumTriangle(), 24)
	}

	b := ms.Export()
	assert.Equal(t, ms.NumVertex(), b.NumVertex())
	assert.Equal(t, ms.NumTriangle(), b.NumTriangle())
}

func TestGenerateDeterministic(t *testing.T) {
	bounds := math32.Vec3(2, 1.5, 1)
	b1, err := Generate(bounds, red, blue, 2, 7)
	require.NoError(t, err)
	b2, err := Generate(bounds, red, blue, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	b3, err := Generate(bounds, red, blue, 2, 8)
	require.NoError(t, err)
	assert.NotEqual(t, b1.Vertex, b3.Vertex)
}

func TestGenerateClosed(t *testing.T) {
	for _, bounds := range []math32.Vector3{
		math32.Vec3(1, 1, 1),
		math32.Vec3(3, 2, 1),
		math32.Vec3(1, 2, 3),
	} {
		for seed := int64(1); seed <= 3; seed++ {
			b, err := Generate(bounds, red, blue, 2, seed)
			require.NoError(t, err)
			require.Greater(t, b.NumTriangle(), 0)
			for e, n := range edgeCounts(b) {
				if !assert.Equal(t, 2, n, "bounds %v seed %d edge %v", bounds, seed, e) {
					break
				}
			}
		}
	}
}

func TestGenerateBounded(t *testing.T) {
	for _, bounds := range []math32.Vector3{
		math32.Vec3(1, 1, 1),
		math32.Vec3(5, 1, 1),
		math32.Vec3(0.5, 2, 1.5),
	} {
		limit := bounds.MaxComponent()*(1+RadiusNoiseScale) + 1e-4
		for seed := int64(10); seed < 14; seed++ {
			b, err := Generate(bounds, red, blue, 4, seed)
			require.NoError(t, err)
			for i := range b.NumVertex() {
				assert.LessOrEqual(t, b.Position(i).Length(), limit)
			}
		}
	}
}

func TestGenerateOutwardNormals(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		b, err := Generate(math32.Vec3(2, 1.5, 1), red, blue, 2, seed)
		require.NoError(t, err)
		c := centroid(b)
		out := 0
		for i := range b.NumVertex() {
			if b.NormalAt(i).Dot(b.Position(i).Sub(c)) > 0 {
				out++
			}
		}
		assert.GreaterOrEqual(t, float32(out), 0.95*float32(b.NumVertex()), "seed %d", seed)
	}
}

func TestGenerateColors(t *testing.T) {
	b, err := Generate(math32.Vec3(1, 1, 1), red, blue, 2, 3)
	require.NoError(t, err)
	for i := range b.NumVertex() {
		c := b.ColorAt(i)
		assert.Equal(t, float32(1), c.W)
		assert.Equal(t, float32(0), c.Y)
		assert.InDelta(t, 1, c.X+c.Z, 1e-5)
	}
}

func TestGenerateEllipsoid(t *testing.T) {
	var n atomic.Int64
	g := &Generator{Sampler: constSampler(&n, 0)}
	b, err := g.Generate(math32.Vec3(2, 1, 1), red, blue, 2, 1)
	require.NoError(t, err)
	assert.Greater(t, n.Load(), int64(0))

	size := b.BBox.Size()
	assert.InDelta(t, 4, size.X, 1e-4)
	assert.GreaterOrEqual(t, size.Y, float32(2-1e-4))
	assert.GreaterOrEqual(t, size.Z, float32(2-1e-4))
	assert.LessOrEqual(t, size.Y, float32(4))
	assert.LessOrEqual(t, size.Z, float32(4))
	for e, cnt := range edgeCounts(b) {
		require.Equal(t, 2, cnt, e)
	}
	// constant color noise blends half way
	assert.Equal(t, math32.Vec4(0.5, 0, 0.5, 1), b.ColorAt(0))
}

func TestGenerateSphere(t *testing.T) {
	var n atomic.Int64
	g := &Generator{Sampler: constSampler(&n, 0)}
	b, err := g.Generate(math32.Vec3(1, 1, 1), red, blue, 2, 1)
	require.NoError(t, err)
	for i := range b.NumVertex() {
		pos := b.Position(i)
		assert.InDelta(t, 1, pos.Length(), 1e-5)
		assert.Greater(t, b.NormalAt(i).Dot(pos), float32(0.9))
	}
}

func TestGenerateInvalidBounds(t *testing.T) {
	var n atomic.Int64
	g := &Generator{Connector: mesh.NewConnector(), Sampler: constSampler(&n, 0)}
	for _, bounds := range []math32.Vector3{
		math32.Vec3(0, 1, 1),
		math32.Vec3(1, -1, 1),
		math32.Vec3(1, 1, float32(math.NaN())),
		math32.Vec3(math32.Infinity, 1, 1),
	} {
		b, err := g.Generate(bounds, red, blue, 2, 1)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrInvalidBounds)
		var be *InvalidBoundsError
		assert.ErrorAs(t, err, &be)
	}
	assert.Equal(t, int64(0), n.Load())
	assert.Equal(t, 0, g.Connector.Len())
}

type panicField struct{}

func (panicField) Eval3(x, y, z float32) float32 {
	panic("bad field")
}

func TestGenerateNoiseFailure(t *testing.T) {
	g := &Generator{Sampler: &noise.Sampler{
		Field:       func(seed int64) noise.Field { return panicField{} },
		MaxAttempts: 3,
	}}
	b, err := g.Generate(math32.Vec3(1, 1, 1), red, blue, 2, 1)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, noise.ErrGeneration)
	var ge *noise.GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Len(t, ge.Seeds, 3)
	assert.Equal(t, int64(1), ge.Seeds[0])
}

func TestGenerateCache(t *testing.T) {
	g := NewGenerator()
	_, err := g.Generate(math32.Vec3(1, 1, 1), red, blue, 2, 5)
	require.NoError(t, err)
	// all 12 bands connect 24 to 24
	hits, misses := g.Connector.Stats()
	assert.Equal(t, 1, misses)
	assert.Equal(t, 11, hits)

	_, err = g.Generate(math32.Vec3(1, 1, 1), red, blue, 2, 6)
	require.NoError(t, err)
	hits, misses = g.Connector.Stats()
	assert.Equal(t, 1, misses)
	assert.Equal(t, 23, hits)
	assert.Equal(t, 1, g.Connector.Len())
}

func TestGenerateConcurrent(t *testing.T) {
	bounds := []math32.Vector3{
		math32.Vec3(1, 1, 1),
		math32.Vec3(2, 1, 1),
		math32.Vec3(3, 2, 1),
		math32.Vec3(1, 1, 2),
	}
	want := make([]*mesh.Buffer, len(bounds))
	for i, bd := range bounds {
		b, err := Generate(bd, red, blue, 2, int64(i))
		require.NoError(t, err)
		want[i] = b
	}

	g := NewGenerator()
	got := make([]*mesh.Buffer, len(bounds)*4)
	errs := make([]error, len(got))
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j := i % len(bounds)
			got[i], errs[i] = g.Generate(bounds[j], red, blue, 2, int64(j))
		}()
	}
	wg.Wait()
	for i := range got {
		require.NoError(t, errs[i])
		assert.Equal(t, want[i%len(bounds)], got[i])
	}
}

func TestParams(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	seed := int64(42)
	p.Seed = &seed

	b, err := p.Generate(NewGenerator())
	require.NoError(t, err)
	want, err := Generate(p.BoundsVector(), vec3(p.ColorA), vec3(p.ColorB), p.NoiseRadius, 42)
	require.NoError(t, err)
	assert.Equal(t, want, b)

	p.Bounds[2] = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidBounds)
}
