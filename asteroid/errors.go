// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asteroid

import (
	"errors"
	"fmt"

	"cogentcore.org/procgen/math32"
)

// ErrInvalidBounds is the error wrapped by [InvalidBoundsError].
var ErrInvalidBounds = errors.New("asteroid: invalid bounds")

// InvalidBoundsError is returned when a bounding half-extent is not
// a positive finite number.
type InvalidBoundsError struct {
	Bounds math32.Vector3
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("asteroid: bounds must be positive and finite on all axes, got %v", e.Bounds)
}

func (e *InvalidBoundsError) Unwrap() error {
	return ErrInvalidBounds
}

// checkBounds returns an [*InvalidBoundsError] unless all
// components of bounds are positive and finite.
func checkBounds(bounds math32.Vector3) error {
	for d := math32.X; d <= math32.Z; d++ {
		v := bounds.Dim(d)
		if !(v > 0) || !math32.IsFinite(v) {
			return &InvalidBoundsError{Bounds: bounds}
		}
	}
	return nil
}
