// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Float32(), b.Float32())
	assert.Equal(t, a.Intn(100), b.Intn(100))
}

func TestGlobalRandSeed(t *testing.T) {
	g := NewGlobalRand()
	assert.Nil(t, g.Rand)
	g.Seed(3)
	assert.NotNil(t, g.Rand)
	assert.Equal(t, NewSysRand(3).Int63(), g.Int63())
}

func TestNewSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := NewSeed()
		assert.GreaterOrEqual(t, s, int64(0))
		assert.Less(t, s, int64(MaxSeed))
	}
	assert.Equal(t, NewSeed(NewSysRand(1)), NewSeed(NewSysRand(1)))
}

func TestSeeds(t *testing.T) {
	var rs Seeds
	rs.Init(3, 10)
	assert.Equal(t, Seeds{10, 11, 12}, rs)

	rs.NewSeeds(NewSysRand(5))
	var other Seeds
	other.Init(3, 0)
	other.NewSeeds(NewSysRand(5))
	assert.Equal(t, other, rs)
}
