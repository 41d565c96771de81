// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"fmt"
)

// ErrConsistency is matched by every [ConsistencyError].
var ErrConsistency = errors.New("mesh: inconsistent mesh")

// ConsistencyError reports a triangle that references a vertex id not
// present in the mesh. It is a programming error in the caller.
type ConsistencyError struct {
	Vertex    int
	NumVertex int
	Triangle  [3]int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("mesh: triangle %v references vertex %d, but the mesh has %d vertices", e.Triangle, e.Vertex, e.NumVertex)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrConsistency
}
