// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/procgen/math32"

// Buffer is an exported, renderer-ready indexed triangle mesh.
// Rows are stored as flat arrays: 3 floats per vertex position and
// normal, 4 floats per RGBA color, and 3 indexes per triangle.
type Buffer struct {

	// Name is the name of the mesh the buffer was exported from.
	Name string

	Vertex math32.ArrayF32
	Normal math32.ArrayF32
	Color  math32.ArrayF32
	Index  math32.ArrayU32

	// BBox is the bounding box of the vertex positions.
	BBox math32.Box3
}

// NumVertex returns the number of vertex rows.
func (b *Buffer) NumVertex() int {
	return len(b.Vertex) / 3
}

// NumTriangle returns the number of triangles.
func (b *Buffer) NumTriangle() int {
	return len(b.Index) / 3
}

// Position returns the position of the given row.
func (b *Buffer) Position(i int) math32.Vector3 {
	var v math32.Vector3
	v.FromSlice(b.Vertex, i*3)
	return v
}

// NormalAt returns the normal of the given row.
func (b *Buffer) NormalAt(i int) math32.Vector3 {
	var v math32.Vector3
	v.FromSlice(b.Normal, i*3)
	return v
}

// ColorAt returns the color of the given row.
func (b *Buffer) ColorAt(i int) math32.Vector4 {
	var v math32.Vector4
	v.FromSlice(b.Color, i*4)
	return v
}

// TriangleAt returns the row indexes of the given triangle.
func (b *Buffer) TriangleAt(i int) [3]uint32 {
	return [3]uint32{b.Index[i*3], b.Index[i*3+1], b.Index[i*3+2]}
}

// addRow appends a vertex row and returns its index.
func (b *Buffer) addRow(pos, normal math32.Vector3, color math32.Vector4) uint32 {
	row := uint32(b.NumVertex())
	b.Vertex.AppendVector3(pos)
	b.Normal.AppendVector3(normal)
	b.Color.AppendVector4(color)
	b.BBox.ExpandByPoint(pos)
	return row
}

// Transform applies the given transform to all positions, and its
// normal matrix to all normals, which are renormalized.
func (b *Buffer) Transform(xf *math32.Matrix4) {
	nm := xf.NormalMatrix()
	b.BBox.SetEmpty()
	for i := range b.NumVertex() {
		pos := b.Position(i).MulMatrix4AsPoint(xf)
		b.Vertex.SetVector3(i*3, pos)
		b.Normal.SetVector3(i*3, b.NormalAt(i).MulMatrix3(nm).Normal())
		b.BBox.ExpandByPoint(pos)
	}
}

// Export computes the smooth vertex normals and returns the mesh as
// a new [Buffer]. Vertices without any triangle are dropped and the
// remaining rows keep vertex id order. Export does not change the
// mesh, so repeated exports produce identical buffers.
func (ms *Mesh) Export() *Buffer {
	b := &Buffer{Name: ms.Name, BBox: math32.B3Empty()}
	rows := make([]uint32, len(ms.verts))
	for _, vt := range ms.verts {
		if len(vt.Triangles) == 0 {
			continue
		}
		rows[vt.ID] = b.addRow(vt.Pos, ms.VertexNormal(vt.ID), vt.Color)
	}
	b.Index = math32.NewArrayU32(0, len(ms.tris)*3)
	for _, tri := range ms.tris {
		b.Index.Append(rows[tri.Verts[0]], rows[tri.Verts[1]], rows[tri.Verts[2]])
	}
	return b
}

// ExportTransform is like [Mesh.Export], then applies the given
// transform to the exported buffer.
func (ms *Mesh) ExportTransform(xf *math32.Matrix4) *Buffer {
	b := ms.Export()
	b.Transform(xf)
	return b
}
