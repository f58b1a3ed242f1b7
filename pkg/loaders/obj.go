// Package loaders parses the mesh and material file formats
// spec.md §6 names (OBJ, STL, MTL) plus the PLY and glTF formats
// SPEC_FULL.md supplements, normalizing every format to a
// shape.IndexedMesh.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

// ParseOBJ reads an ASCII Wavefront OBJ file, recognizing #, g, v, vn,
// vt, f, s, usemtl, mtllib (spec.md §6). Vertex indices are 1-based in
// the file and converted to 0-based on load. Faces with 4+ vertices
// are fan-triangulated; malformed or degenerate faces are skipped
// rather than failing the whole parse.
func ParseOBJ(path string) (*shape.IndexedMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open obj %s: %w", path, err)
	}
	defer f.Close()

	var vertices []core.Vec3
	var normals []core.Vec3
	var uvs []core.Vec2
	var faces []shape.Face

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, ok := parseVec3Fields(fields[1:])
			if ok {
				vertices = append(vertices, v)
			}
		case "vn":
			n, ok := parseVec3Fields(fields[1:])
			if ok {
				normals = append(normals, n)
			}
		case "vt":
			if len(fields) >= 3 {
				u, errU := strconv.ParseFloat(fields[1], 64)
				v, errV := strconv.ParseFloat(fields[2], 64)
				if errU == nil && errV == nil {
					uvs = append(uvs, core.NewVec2(u, v))
				}
			}
		case "f":
			parsed, ok := parseOBJFace(fields[1:], len(vertices), len(normals), len(uvs))
			if !ok {
				continue
			}
			// Fan-triangulate polygons with more than 3 vertices.
			for i := 1; i+1 < len(parsed); i++ {
				faces = append(faces, shape.Face{
					VertexIdx: [3]int{parsed[0].v, parsed[i].v, parsed[i+1].v},
					NormalIdx: [3]int{parsed[0].n, parsed[i].n, parsed[i+1].n},
					TexIdx:    [3]int{parsed[0].t, parsed[i].t, parsed[i+1].t},
				})
			}
		case "g", "s", "usemtl", "mtllib", "o":
			// group/smoothing/material directives carry no geometry of
			// their own in this loader.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read obj %s: %w", path, err)
	}

	return shape.NewIndexedMesh(vertices, normals, uvs, faces)
}

type objFaceVertex struct{ v, n, t int }

// parseOBJFace parses "v/vt/vn" triplets (vt, vn optional), converting
// 1-based OBJ indices to 0-based. A reference past the element count
// parsed so far, or a malformed triplet, fails the whole face.
func parseOBJFace(fields []string, nv, nn, nt int) ([]objFaceVertex, bool) {
	if len(fields) < 3 {
		return nil, false
	}
	out := make([]objFaceVertex, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, "/")
		fv := objFaceVertex{n: -1, t: -1}

		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, false
		}
		fv.v = resolveOBJIndex(vi, nv)
		if fv.v < 0 || fv.v >= nv {
			return nil, false
		}

		if len(parts) >= 2 && parts[1] != "" {
			ti, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, false
			}
			fv.t = resolveOBJIndex(ti, nt)
			if fv.t < 0 || fv.t >= nt {
				return nil, false
			}
		}
		if len(parts) >= 3 && parts[2] != "" {
			ni, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, false
			}
			fv.n = resolveOBJIndex(ni, nn)
			if fv.n < 0 || fv.n >= nn {
				return nil, false
			}
		}
		out = append(out, fv)
	}
	return out, true
}

// resolveOBJIndex converts a possibly-negative OBJ index (negative
// means "relative to the end of the list so far") to an absolute
// 0-based index.
func resolveOBJIndex(i, count int) int {
	if i > 0 {
		return i - 1
	}
	if i < 0 {
		return count + i
	}
	return -1
}

func parseVec3Fields(fields []string) (core.Vec3, bool) {
	if len(fields) < 3 {
		return core.Vec3{}, false
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	z, errZ := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errZ != nil {
		return core.Vec3{}, false
	}
	return core.NewVec3(x, y, z), true
}
