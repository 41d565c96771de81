// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// ConnectRings adds the triangles connecting each pair of consecutive
// rings, where each ring is a list of vertex ids of ms and rings[i+1]
// lies above rings[i]. Faces come from the given [Connector]; see
// [Connector.Connect] for wrap and ccw. With checkIllegal, triangles
// that do not have three distinct positions are skipped, which is
// needed where a ring collapses to a single point, such as at a pole.
func ConnectRings(ms *Mesh, cn *Connector, rings [][]int, wrap, ccw, checkIllegal bool) error {
	for i := 0; i < len(rings)-1; i++ {
		lower := rings[i]
		upper := rings[i+1]
		for _, f := range cn.Connect(len(upper), len(lower), wrap, ccw) {
			var tri [3]int
			n := 0
			for _, u := range f.Upper {
				tri[n] = upper[u]
				n++
			}
			for _, l := range f.Lower {
				tri[n] = lower[l]
				n++
			}
			if checkIllegal && !ms.distinctPositions(tri) {
				continue
			}
			if err := ms.AddTriangle(tri[0], tri[1], tri[2]); err != nil {
				return err
			}
		}
	}
	return nil
}

// distinctPositions returns whether the three vertices are at three
// different positions. Unknown vertex ids are reported as distinct,
// leaving their rejection to [Mesh.AddTriangle].
func (ms *Mesh) distinctPositions(tri [3]int) bool {
	var vs [3]*Vertex
	for i, id := range tri {
		vs[i] = ms.Vertex(id)
		if vs[i] == nil {
			return true
		}
	}
	return vs[0].Pos != vs[1].Pos && vs[1].Pos != vs[2].Pos && vs[0].Pos != vs[2].Pos
}
