// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads and writes exported mesh buffers in the
// Wavefront OBJ format (*.obj), with the common vertex color extension
// (v x y z r g b). Only the subset needed for colored, smooth-shaded
// triangle meshes is supported: positions, vertex colors, normals and
// faces. Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/procgen/math32"
	"cogentcore.org/procgen/mesh"
)

// WriteOBJ writes the buffer as a single OBJ object with the given name.
// Alpha is not stored.
func WriteOBJ(w io.Writer, name string, b *mesh.Buffer) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for i := range b.NumVertex() {
		p, c := b.Position(i), b.ColorAt(i)
		fmt.Fprintf(bw, "v %s %s %s %s %s %s\n", ff(p.X), ff(p.Y), ff(p.Z), ff(c.X), ff(c.Y), ff(c.Z))
	}
	for i := range b.NumVertex() {
		n := b.NormalAt(i)
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(n.X), ff(n.Y), ff(n.Z))
	}
	bw.WriteString("s 1\n")
	for i := range b.NumTriangle() {
		t := b.TriangleAt(i)
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", t[0]+1, t[0]+1, t[1]+1, t[1]+1, t[2]+1, t[2]+1)
	}
	return bw.Flush()
}

// SaveOBJ writes the buffer to the given OBJ file. See [WriteOBJ].
func SaveOBJ(filename, name string, b *mesh.Buffer) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = WriteOBJ(fp, name, b)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// ff formats a float with the fewest digits that read back exactly.
func ff(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Local constants
const (
	blanks   = "\r\n\t "
	invIndex = -1
)

// Decoder decodes OBJ data into a [mesh.Buffer], one row per vertex
// position. Polygons are split into triangle fans.
type Decoder struct {

	// Name is the name of the last object (o) or group (g).
	Name string

	// Warnings are messages about unsupported lines.
	Warnings []string

	vertices math32.ArrayF32
	colors   math32.ArrayF32
	normals  math32.ArrayF32

	// faces are the triangles, as vertex and normal indexes.
	faces [][3][2]int
	line  int
}

// ReadOBJ decodes OBJ data from the given reader.
func ReadOBJ(r io.Reader) (*mesh.Buffer, error) {
	dec := &Decoder{}
	if err := dec.Decode(r); err != nil {
		return nil, err
	}
	return dec.Buffer()
}

// OpenOBJ decodes the given OBJ file.
func OpenOBJ(filename string) (*mesh.Buffer, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadOBJ(bufio.NewReader(fp))
}

// Decode reads the lines of the given reader.
func (dec *Decoder) Decode(r io.Reader) error {
	bufin := bufio.NewReader(r)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.Trim(line, blanks)
		if perr := dec.parseLine(line); perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

// Buffer returns the decoded buffer. Vertices without a normal in any
// face get a zero normal; vertices without a color are white.
func (dec *Decoder) Buffer() (*mesh.Buffer, error) {
	nv := len(dec.vertices) / 3
	nrm := make([]math32.Vector3, nv)
	b := &mesh.Buffer{Name: dec.Name, BBox: math32.B3Empty()}
	b.Index = math32.NewArrayU32(0, len(dec.faces)*3)
	for _, f := range dec.faces {
		for _, vn := range f {
			v, n := vn[0], vn[1]
			if v < 0 || v >= nv {
				return nil, fmt.Errorf("meshio: face vertex index %d out of range [1, %d]", v+1, nv)
			}
			if n != invIndex {
				if n < 0 || n*3 >= len(dec.normals) {
					return nil, fmt.Errorf("meshio: face normal index %d out of range [1, %d]", n+1, len(dec.normals)/3)
				}
				nrm[v].FromSlice(dec.normals, n*3)
			}
			b.Index.Append(uint32(v))
		}
	}
	for i := range nv {
		var pos math32.Vector3
		pos.FromSlice(dec.vertices, i*3)
		clr := math32.Vec4(1, 1, 1, 1)
		if len(dec.colors) >= (i+1)*3 {
			var c math32.Vector3
			c.FromSlice(dec.colors, i*3)
			clr = math32.Vector4FromVector3(c, 1)
		}
		b.Vertex.AppendVector3(pos)
		b.Normal.AppendVector3(nrm[i])
		b.Color.AppendVector4(clr)
		b.BBox.ExpandByPoint(pos)
	}
	return b, nil
}

// parseLine parses one line, dispatching to specific parsers.
func (dec *Decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch ltype := fields[0]; ltype {
	case "o", "g":
		if len(fields) > 1 {
			dec.Name = strings.Join(fields[1:], " ")
		}
	case "v":
		return dec.parseVertex(fields[1:])
	case "vn":
		return dec.parseNormal(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	case "s":
	default:
		dec.appendWarn("field not supported: " + ltype)
	}
	return nil
}

func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("less than 3 coordinates in 'v' line")
	}
	vals, err := parseFloats(fields[:3])
	if err != nil {
		return dec.formatError(err.Error())
	}
	dec.vertices.AppendVector3(vals)
	if len(fields) >= 6 {
		clr, err := parseFloats(fields[3:6])
		if err != nil {
			return dec.formatError(err.Error())
		}
		if len(dec.colors) != len(dec.vertices)-3 {
			return dec.formatError("vertex colors must be given for all vertices")
		}
		dec.colors.AppendVector3(clr)
	}
	return nil
}

func (dec *Decoder) parseNormal(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("less than 3 coordinates in 'vn' line")
	}
	vals, err := parseFloats(fields[:3])
	if err != nil {
		return dec.formatError(err.Error())
	}
	dec.normals.AppendVector3(vals)
	return nil
}

func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face line with less than 3 fields")
	}
	refs := make([][2]int, len(fields))
	for pos, f := range fields {
		// v, v/vt, v//vn or v/vt/vn
		vfields := strings.Split(f, "/")
		v, err := dec.parseIndex(vfields[0], len(dec.vertices)/3)
		if err != nil {
			return err
		}
		n := invIndex
		if len(vfields) >= 3 && vfields[2] != "" {
			n, err = dec.parseIndex(vfields[2], len(dec.normals)/3)
			if err != nil {
				return err
			}
		}
		refs[pos] = [2]int{v, n}
	}
	for i := 2; i < len(refs); i++ {
		dec.faces = append(dec.faces, [3][2]int{refs[0], refs[i-1], refs[i]})
	}
	return nil
}

// parseIndex parses a 1-based index, where negative values are
// relative to the n elements parsed so far.
func (dec *Decoder) parseIndex(s string, n int) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, dec.formatError(err.Error())
	}
	switch {
	case val > 0:
		return val - 1, nil
	case val < 0:
		return n + val, nil
	}
	return 0, dec.formatError("face index value equal to 0")
}

func parseFloats(fields []string) (math32.Vector3, error) {
	var v [3]float32
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math32.Vector3{}, err
		}
		v[i] = float32(val)
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

// ErrFormat is wrapped by all OBJ format errors.
var ErrFormat = errors.New("meshio: invalid OBJ format")

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrFormat, dec.line, msg)
}

func (dec *Decoder) appendWarn(msg string) {
	dec.Warnings = append(dec.Warnings, fmt.Sprintf("obj(%d): %s", dec.line, msg))
}
