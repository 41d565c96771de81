// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "sync"

// Face describes one triangle between two rings of vertices, as local
// indexes into the upper and lower ring. One of Upper and Lower has
// one index and the other has two; the triangle is Upper followed by
// Lower.
type Face struct {
	Upper []int
	Lower []int
}

// ConnectKey is the memoization key of [Connector.Connect].
type ConnectKey struct {
	Upper, Lower int
	Wrap, CCW    bool
}

// Connector connects two rings of vertices with possibly different
// vertex counts into a gap-free band of triangles. Results are
// memoized per [ConnectKey], since the same ring count pairs recur
// across many meshes. A Connector is safe for concurrent use; the
// zero value is ready to use.
type Connector struct {
	mu     sync.Mutex
	cache  map[ConnectKey][]Face
	hits   int
	misses int
}

// NewConnector returns a new empty [Connector].
func NewConnector() *Connector {
	return &Connector{cache: map[ConnectKey][]Face{}}
}

// Connect returns the faces connecting an upper ring of upper vertices
// to a lower ring of lower vertices. With wrap, the band is closed
// across the seam between the last and first vertex. With ccw, the
// faces are counter-clockwise when the rings run in increasing
// heading about the up axis and the upper ring lies above the lower
// one, so that they face outward on a closed surface; without ccw the
// same triangles are emitted with reversed winding.
//
// The returned faces are shared with the cache and must not be modified.
func (cn *Connector) Connect(upper, lower int, wrap, ccw bool) []Face {
	key := ConnectKey{Upper: upper, Lower: lower, Wrap: wrap, CCW: ccw}
	cn.mu.Lock()
	if fs, ok := cn.cache[key]; ok {
		cn.hits++
		cn.mu.Unlock()
		return fs
	}
	cn.mu.Unlock()

	fs := connect(upper, lower, wrap, ccw)

	cn.mu.Lock()
	defer cn.mu.Unlock()
	if cn.cache == nil {
		cn.cache = map[ConnectKey][]Face{}
	}
	if have, ok := cn.cache[key]; ok {
		// computed concurrently by another caller
		cn.hits++
		return have
	}
	cn.misses++
	cn.cache[key] = fs
	return fs
}

// Stats returns the number of cache hits and misses so far.
func (cn *Connector) Stats() (hits, misses int) {
	cn.mu.Lock()
	defer cn.mu.Unlock()
	return cn.hits, cn.misses
}

// Len returns the number of cached ring count combinations.
func (cn *Connector) Len() int {
	cn.mu.Lock()
	defer cn.mu.Unlock()
	return len(cn.cache)
}

// connect computes the faces for [Connector.Connect].
// Both rings are spread evenly over max(upper, lower) steps; at each
// step where a ring advances, one triangle is emitted that uses the
// advancing edge, so a ring that advances more slowly repeats its index.
func connect(upper, lower int, wrap, ccw bool) []Face {
	if upper < 1 || lower < 1 {
		return nil
	}
	steps := max(upper, lower)
	umap := spread(upper, steps)
	lmap := spread(lower, steps)

	n := steps
	if !wrap {
		n = steps - 1
	}
	var fs []Face
	for i := range n {
		a := i
		b := (i + 1) % steps
		uEdge := umap[a] != umap[b]
		lEdge := lmap[a] != lmap[b]
		if uEdge {
			fs = append(fs, Face{Upper: []int{umap[a], umap[b]}, Lower: []int{lmap[a]}})
			if lEdge {
				fs = append(fs, Face{Upper: []int{umap[b]}, Lower: []int{lmap[b], lmap[a]}})
			}
			continue
		}
		if lEdge {
			fs = append(fs, Face{Upper: []int{umap[a]}, Lower: []int{lmap[b], lmap[a]}})
		}
	}
	if !ccw {
		for _, f := range fs {
			if len(f.Upper) == 2 {
				f.Upper[0], f.Upper[1] = f.Upper[1], f.Upper[0]
			} else {
				f.Lower[0], f.Lower[1] = f.Lower[1], f.Lower[0]
			}
		}
	}
	return fs
}

// spread distributes the indexes 0..count-1 evenly over the given
// number of steps, in descending order.
func spread(count, steps int) []int {
	m := make([]int, steps)
	for i := range steps {
		m[steps-1-i] = i * count / steps
	}
	return m
}
