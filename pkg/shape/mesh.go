package shape

import "github.com/kjbrandt/raydiant/pkg/core"

// Face is a triangle's vertex/normal/UV index tuple into an
// IndexedMesh's pools. NormalIdx/TexIdx of -1 mean "absent".
type Face struct {
	VertexIdx [3]int
	NormalIdx [3]int
	TexIdx    [3]int
}

// IndexedMesh is a vertex pool, optional normal/UV pools, and a flat
// list of triangular faces — the common output shape of the OBJ, STL,
// PLY, and glTF loaders (spec.md §4.1, §6).
type IndexedMesh struct {
	Vertices []core.Vec3
	Normals  []core.Vec3 // may be nil
	UVs      []core.Vec2 // may be nil
	Faces    []Face

	bounds    core.Bounds
	triangles []*Triangle
}

// NewIndexedMesh builds an IndexedMesh, materializing one Triangle per
// face up front so Intersect can do a flat linear scan. A degenerate
// face (colinear, or with fewer than 3 distinct vertices) is silently
// dropped here rather than treated as fatal, since mesh loaders
// routinely emit a few degenerate triangles from floating point OBJ
// export.
func NewIndexedMesh(vertices []core.Vec3, normals []core.Vec3, uvs []core.Vec2, faces []Face) (*IndexedMesh, error) {
	if len(vertices) == 0 {
		return nil, core.NewError(core.GeometryError, "indexed mesh has no vertices", nil)
	}

	m := &IndexedMesh{Vertices: vertices, Normals: normals, UVs: uvs, Faces: faces}
	m.bounds = core.NewBoundsFromPoints(vertices...)

	for _, f := range faces {
		v0, v1, v2 := vertices[f.VertexIdx[0]], vertices[f.VertexIdx[1]], vertices[f.VertexIdx[2]]
		tri, err := NewTriangle(v0, v1, v2)
		if err != nil {
			continue // degenerate face: skip rather than fail the whole mesh
		}
		if uvs != nil && f.TexIdx[0] >= 0 {
			tri = tri.WithUVs(uvs[f.TexIdx[0]], uvs[f.TexIdx[1]], uvs[f.TexIdx[2]])
		}
		m.triangles = append(m.triangles, tri)
	}

	return m, nil
}

// Intersect scans all triangles and returns the closest hit, per
// spec.md §4.1.
func (m *IndexedMesh) Intersect(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, bool) {
	var closest core.SurfaceInteraction
	found := false
	closestT := tMax

	for _, tri := range m.triangles {
		if si, ok := tri.Intersect(ray, tMin, closestT); ok {
			found = true
			closestT = si.It.T
			closest = si
		}
	}
	return closest, found
}

// Bounds returns the union of all vertex bounds.
func (m *IndexedMesh) Bounds() core.Bounds { return m.bounds }

// TriangleCount returns the number of materialized triangles (after
// dropping degenerate faces).
func (m *IndexedMesh) TriangleCount() int { return len(m.triangles) }

// Triangles exposes the underlying triangles, e.g. so an accelerator
// can index sub-triangles individually instead of the whole mesh.
func (m *IndexedMesh) Triangles() []*Triangle { return m.triangles }
