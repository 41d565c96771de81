// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh builds indexed triangle meshes with per-vertex colors
// and smooth normals, and exports them to flat renderer-ready buffers.
//
// Vertices are deduplicated by exact position and color: a [Point] is
// a unique position that holds one [Vertex] per distinct color. Two
// positions that differ in the last bit are different points, so
// callers that need coincident vertices must reuse the same vertex
// id (or compute bit-identical positions).
package mesh

import (
	"cogentcore.org/procgen/base/ordmap"
	"cogentcore.org/procgen/math32"
)

// Mesh is a triangle mesh under construction.
// A Mesh is not safe for concurrent use.
type Mesh struct {

	// Name is the name of the mesh.
	Name string

	points *ordmap.Map[math32.Vector3, *Point]
	verts  []*Vertex
	tris   []*Triangle
}

// Point is a unique position in a [Mesh], holding one vertex per color.
type Point struct {
	Pos math32.Vector3

	// colors maps each color to its vertex id, vids in insertion order.
	colors map[math32.Vector4]int
	vids   []int
}

// Vertices returns the ids of the vertices at this point, in insertion order.
func (pt *Point) Vertices() []int {
	return pt.vids
}

// Vertex is a single mesh vertex.
type Vertex struct {

	// ID is the index of the vertex in its [Mesh].
	ID int

	Pos   math32.Vector3
	Color math32.Vector4

	// Triangles are the indexes of the triangles using this vertex.
	Triangles []int
}

// NumTriangle returns the number of triangles using this vertex.
func (vt *Vertex) NumTriangle() int {
	return len(vt.Triangles)
}

// Triangle is a counter-clockwise wound triangle of three vertex ids,
// with its face normal computed when it is added.
type Triangle struct {
	Verts [3]int

	// NormalMag is the unnormalized face normal, whose length is
	// twice the triangle area.
	NormalMag math32.Vector3

	// Normal is the unit face normal.
	Normal math32.Vector3
}

// New returns a new empty [Mesh] with the given name.
func New(name string) *Mesh {
	return &Mesh{Name: name, points: ordmap.New[math32.Vector3, *Point]()}
}

// AddVertex returns the id of the vertex at pos with exactly the
// given color, adding a new one if there is none yet.
func (ms *Mesh) AddVertex(pos math32.Vector3, color math32.Vector4) int {
	if ms.points == nil {
		ms.points = ordmap.New[math32.Vector3, *Point]()
	}
	pt, _ := ms.points.ValueOrAdd(pos, func() *Point {
		return &Point{Pos: pos, colors: map[math32.Vector4]int{}}
	})
	if vid, ok := pt.colors[color]; ok {
		return vid
	}
	vid := ms.InsertVertex(pos, color)
	pt.colors[color] = vid
	pt.vids = append(pt.vids, vid)
	return vid
}

// InsertVertex adds a new vertex even if one with the same position
// and color already exists, and returns its id. The duplicate is not
// registered with the position index, so [Mesh.AddVertex] never returns it.
func (ms *Mesh) InsertVertex(pos math32.Vector3, color math32.Vector4) int {
	vid := len(ms.verts)
	ms.verts = append(ms.verts, &Vertex{ID: vid, Pos: pos, Color: color})
	return vid
}

// AddTriangle adds the counter-clockwise triangle a, b, c and links
// it to its vertices. It returns a [*ConsistencyError] and adds
// nothing if any id is not a vertex of this mesh.
func (ms *Mesh) AddTriangle(a, b, c int) error {
	ids := [3]int{a, b, c}
	for _, id := range ids {
		if id < 0 || id >= len(ms.verts) {
			return &ConsistencyError{Vertex: id, NumVertex: len(ms.verts), Triangle: ids}
		}
	}
	va, vb, vc := ms.verts[a], ms.verts[b], ms.verts[c]
	nm := math32.NormalMagnitude(va.Pos, vb.Pos, vc.Pos)
	ti := len(ms.tris)
	ms.tris = append(ms.tris, &Triangle{Verts: ids, NormalMag: nm, Normal: nm.Normal()})
	va.Triangles = append(va.Triangles, ti)
	vb.Triangles = append(vb.Triangles, ti)
	vc.Triangles = append(vc.Triangles, ti)
	return nil
}

// Vertex returns the vertex with the given id, or nil if there is none.
func (ms *Mesh) Vertex(id int) *Vertex {
	if id < 0 || id >= len(ms.verts) {
		return nil
	}
	return ms.verts[id]
}

// Triangle returns the triangle with the given index.
func (ms *Mesh) Triangle(idx int) *Triangle {
	return ms.tris[idx]
}

// Point returns the point at the given position, if any.
func (ms *Mesh) Point(pos math32.Vector3) (*Point, bool) {
	if ms.points == nil {
		return nil, false
	}
	return ms.points.ValueByKeyTry(pos)
}

// NumVertex returns the number of vertices, including unused ones.
func (ms *Mesh) NumVertex() int {
	return len(ms.verts)
}

// NumTriangle returns the number of triangles.
func (ms *Mesh) NumTriangle() int {
	return len(ms.tris)
}

// NumPoint returns the number of unique positions.
func (ms *Mesh) NumPoint() int {
	return ms.points.Len()
}

// VertexNormal returns the smooth normal of the given vertex: the
// normalized sum of the magnitude-weighted face normals of all its
// triangles, so that larger triangles contribute more.
func (ms *Mesh) VertexNormal(id int) math32.Vector3 {
	var nrm math32.Vector3
	for _, ti := range ms.verts[id].Triangles {
		nrm.SetAdd(ms.tris[ti].NormalMag)
	}
	return nrm.Normal()
}
