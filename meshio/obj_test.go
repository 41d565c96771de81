// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/procgen/asteroid"
	"cogentcore.org/procgen/math32"
	"cogentcore.org/procgen/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *mesh.Buffer {
	ms := mesh.New("square")
	white := math32.Vec4(1, 1, 1, 1)
	a := ms.AddVertex(math32.Vec3(0, 0, 0), white)
	b := ms.AddVertex(math32.Vec3(1, 0, 0), math32.Vec4(1, 0, 0, 1))
	c := ms.AddVertex(math32.Vec3(1, 1, 0), white)
	d := ms.AddVertex(math32.Vec3(0, 1, 0), white)
	ms.AddTriangle(a, b, c)
	ms.AddTriangle(a, c, d)
	return ms.Export()
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, "square", square()))
	want := `o square
v 0 0 0 1 1 1
v 1 0 0 1 0 0
v 1 1 0 1 1 1
v 0 1 0 1 1 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
s 1
f 1//1 2//2 3//3
f 1//1 3//3 4//4
`
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip(t *testing.T) {
	b, err := asteroid.Generate(math32.Vec3(2, 1, 1), math32.Vec3(1, 0.5, 0), math32.Vec3(0.2, 0.2, 0.3), 2, 9)
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "asteroid.obj")
	require.NoError(t, SaveOBJ(fn, b.Name, b))
	rb, err := OpenOBJ(fn)
	require.NoError(t, err)
	assert.Equal(t, b, rb)
}

func TestReadOBJ(t *testing.T) {
	src := `# a quad, relative indexes
mtllib none.mtl
g quad
v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
vn 0 0 1
f -4//1 -3//1 -2//1 -1//1
`
	dec := &Decoder{}
	require.NoError(t, dec.Decode(strings.NewReader(src)))
	assert.Equal(t, "quad", dec.Name)
	assert.Equal(t, []string{"obj(2): field not supported: mtllib"}, dec.Warnings)

	b, err := dec.Buffer()
	require.NoError(t, err)
	assert.Equal(t, 4, b.NumVertex())
	assert.Equal(t, 2, b.NumTriangle())
	assert.Equal(t, [3]uint32{0, 1, 2}, b.TriangleAt(0))
	assert.Equal(t, [3]uint32{0, 2, 3}, b.TriangleAt(1))
	assert.Equal(t, math32.Vec3(0, 0, 1), b.NormalAt(3))
	assert.Equal(t, math32.Vec4(1, 1, 1, 1), b.ColorAt(0))
	assert.Equal(t, math32.Vec3(2, 2, 0), b.BBox.Size())
}

func TestReadOBJErrors(t *testing.T) {
	tests := []string{
		"v 0 0\n",
		"v 0 0 x\n",
		"v 0 0 0\nv 1 0 0\nf 1 2\n",
		"v 0 0 0\nf 1 0 1\n",
		"v 0 0 0\nv 1 0 0 1 1 1\n",
		"vn 0 0\n",
		"v 0 0 0\nf 1 a 1\n",
	}
	for _, src := range tests {
		_, err := ReadOBJ(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrFormat, src)
	}

	_, err := ReadOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.ErrorContains(t, err, "out of range")
	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n"))
	assert.ErrorContains(t, err, "normal index")
}
