package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

// ParseSTL reads an ASCII STL file, recognizing solid/endsolid, facet
// normal, outer loop/endloop, vertex, endfacet (spec.md §6). Each
// facet's three vertices become one triangle; STL carries no shared
// vertex indexing, so every facet appends its own three vertices and
// shared corners are not deduplicated.
func ParseSTL(path string) (*shape.IndexedMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open stl %s: %w", path, err)
	}
	defer f.Close()

	var vertices []core.Vec3
	var faces []shape.Face

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var facetVerts []core.Vec3
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "vertex":
			v, ok := parseVec3Fields(fields[1:])
			if ok {
				facetVerts = append(facetVerts, v)
			}
		case "endfacet":
			if len(facetVerts) == 3 {
				base := len(vertices)
				vertices = append(vertices, facetVerts...)
				faces = append(faces, shape.Face{
					VertexIdx: [3]int{base, base + 1, base + 2},
					NormalIdx: [3]int{-1, -1, -1},
					TexIdx:    [3]int{-1, -1, -1},
				})
			}
			facetVerts = facetVerts[:0]
		case "solid", "endsolid", "facet", "outer", "endloop":
			// structural keywords, no geometry of their own here
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read stl %s: %w", path, err)
	}

	return shape.NewIndexedMesh(vertices, nil, nil, faces)
}
