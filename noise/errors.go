// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"errors"
	"fmt"

	"cogentcore.org/procgen/math32"
)

var (
	// ErrGeneration is matched by every [GenerationError].
	ErrGeneration = errors.New("noise: generation failed")

	// ErrInvalidLattice is returned for a lattice too small to sample.
	ErrInvalidLattice = errors.New("noise: invalid lattice")
)

// DomainError reports a noise evaluation that the field could not
// produce a valid value for: a non-finite coordinate, a non-finite
// result, or a panic inside the field.
type DomainError struct {
	Seed  int64
	Coord math32.Vector3

	// Value is the offending result, if the field returned one.
	Value float32

	// Panic is the recovered value, if the field panicked.
	Panic any
}

func (e *DomainError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("noise: field panicked at %v (seed %d): %v", e.Coord, e.Seed, e.Panic)
	}
	return fmt.Sprintf("noise: invalid value %v at %v (seed %d)", e.Value, e.Coord, e.Seed)
}

// GenerationError is returned when every seed attempt failed.
type GenerationError struct {

	// Seeds are the seeds tried, in order.
	Seeds []int64

	// Err is the failure of the last attempt.
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("noise: generation failed after %d attempts: %v", len(e.Seeds), e.Err)
}

// Unwrap returns both [ErrGeneration] and the last attempt's failure.
func (e *GenerationError) Unwrap() []error {
	return []error{ErrGeneration, e.Err}
}
