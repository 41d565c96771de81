// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"errors"
	"testing"

	"cogentcore.org/procgen/base/randx"
	"cogentcore.org/procgen/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constField returns the same value everywhere.
type constField float32

func (c constField) Eval3(x, y, z float32) float32 { return float32(c) }

// recordField returns 0 and records every point it is evaluated at.
type recordField struct {
	points []math32.Vector3
}

func (r *recordField) Eval3(x, y, z float32) float32 {
	r.points = append(r.points, math32.Vec3(x, y, z))
	return 0
}

type nanField struct{}

func (nanField) Eval3(x, y, z float32) float32 { return float32(math32.Infinity) * 0 }

type panicField struct{}

func (panicField) Eval3(x, y, z float32) float32 { panic("overflow") }

func TestSampleShape(t *testing.T) {
	tb, err := Sample(24, 13, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), tb.Seed)
	assert.Equal(t, 24, tb.AngularSteps)
	assert.Equal(t, 13, tb.RingCount)
	for c := range ChannelsN {
		tab := tb.Channel(c)
		require.Len(t, tab, 13, c.String())
		for _, row := range tab {
			require.Len(t, row, 24)
			for _, v := range row {
				assert.True(t, math32.IsFinite(v))
				assert.LessOrEqual(t, math32.Abs(v), float32(1.0001))
			}
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a, err := Sample(30, 16, 2, 7)
	require.NoError(t, err)
	b, err := Sample(30, 16, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Sample(30, 16, 2, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a.Channels, c.Channels)
}

func TestChannelsDecorrelated(t *testing.T) {
	tb, err := Sample(24, 13, 2, 1)
	require.NoError(t, err)
	assert.NotEqual(t, tb.Channel(Heading), tb.Channel(Pitch))
	assert.NotEqual(t, tb.Channel(Radius), tb.Channel(Color))
}

func TestDamping(t *testing.T) {
	s := &Sampler{Field: func(seed int64) Field { return constField(1) }}
	tb, err := s.Sample(8, 13, 2, 1)
	require.NoError(t, err)
	rad := tb.Channel(Radius)
	assert.Equal(t, float32(0.5), rad[0][0])
	assert.Equal(t, float32(0.5), rad[12][3])
	assert.Equal(t, float32(1), rad[6][5])
	for r := 1; r <= 6; r++ {
		assert.Greater(t, rad[r][0], rad[r-1][0])
		assert.Equal(t, rad[r][0], rad[12-r][0])
	}
}

func TestLatticeCoordinates(t *testing.T) {
	rec := &recordField{}
	s := &Sampler{Field: func(seed int64) Field { return rec }}
	_, err := s.Sample(4, 3, 2, 1)
	require.NoError(t, err)
	require.Len(t, rec.points, 4*3*4)

	// first sample of the first ring is at angle -pi, z = 0
	assert.InDelta(t, -2, rec.points[0].X, 1e-5)
	assert.InDelta(t, 0, rec.points[0].Y, 1e-5)
	assert.Equal(t, float32(0), rec.points[0].Z)

	// last ring is at ringCount * step
	step := 2 * math32.Pi * 2 / float32(4)
	assert.InDelta(t, 3*step, rec.points[2*4].Z, 1e-5)

	// channel 1 is offset by radius * 3 on x and y
	p := rec.points[3*4]
	assert.InDelta(t, -2+6, p.X, 1e-5)
	assert.InDelta(t, 6, p.Y, 1e-5)
}

func TestDefaultRadius(t *testing.T) {
	rec := &recordField{}
	s := &Sampler{Field: func(seed int64) Field { return rec }}
	_, err := s.Sample(4, 3, 0, 1)
	require.NoError(t, err)
	// sqrt((4/2)^2 * 2)
	assert.InDelta(t, -math32.Sqrt(8), rec.points[0].X, 1e-5)
}

func TestRetryNewSeed(t *testing.T) {
	var seeds []int64
	s := &Sampler{
		Rand: randx.NewSysRand(3),
		Field: func(seed int64) Field {
			seeds = append(seeds, seed)
			if len(seeds) < 3 {
				return nanField{}
			}
			return constField(0.25)
		},
	}
	tb, err := s.Sample(8, 5, 2, 99)
	require.NoError(t, err)
	require.Len(t, seeds, 3)
	assert.Equal(t, int64(99), seeds[0])
	assert.Equal(t, seeds[2], tb.Seed)
	assert.NotEqual(t, int64(99), tb.Seed)
}

func TestRetryAfterPanic(t *testing.T) {
	calls := 0
	s := &Sampler{
		Rand: randx.NewSysRand(3),
		Field: func(seed int64) Field {
			calls++
			if calls == 1 {
				return panicField{}
			}
			return constField(0)
		},
	}
	_, err := s.Sample(8, 5, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGenerationError(t *testing.T) {
	s := &Sampler{
		Rand:  randx.NewSysRand(3),
		Field: func(seed int64) Field { return nanField{} },
	}
	_, err := s.Sample(8, 5, 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))

	var ge *GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Len(t, ge.Seeds, DefaultMaxAttempts)
	assert.Equal(t, int64(1), ge.Seeds[0])

	var de *DomainError
	assert.True(t, errors.As(err, &de))

	s.MaxAttempts = 2
	_, err = s.Sample(8, 5, 2, 1)
	require.True(t, errors.As(err, &ge))
	assert.Len(t, ge.Seeds, 2)
}

func TestOverflowingRadius(t *testing.T) {
	s := NewSampler()
	s.Rand = randx.NewSysRand(1)
	_, err := s.Sample(24, 13, math32.MaxFloat32, 5)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestInvalidLattice(t *testing.T) {
	_, err := Sample(1, 13, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidLattice)
	_, err = Sample(24, 2, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidLattice)
}
