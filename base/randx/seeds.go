// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// MaxSeed is the exclusive upper bound of seeds drawn by [NewSeed].
const MaxSeed = 1 << 31

// NewSeed draws a new seed in [0, MaxSeed) from either the single Rand
// interface passed, or the system global Rand source.
func NewSeed(randOpt ...Rand) int64 {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	return rnd.Int63n(MaxSeed)
}

// Seeds is a set of random seeds, typically used one per generated item
type Seeds []int64

// Init allocates given number of seeds and initializes them to
// sequential numbers start..start+n-1
func (rs *Seeds) Init(n int, start int64) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = start + int64(i)
	}
}

// NewSeeds sets each seed to a new random seed drawn with [NewSeed]
// from the optional Rand source.
func (rs *Seeds) NewSeeds(randOpt ...Rand) {
	for i := range *rs {
		(*rs)[i] = NewSeed(randOpt...)
	}
}
