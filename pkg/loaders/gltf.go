package loaders

import (
	"fmt"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ParseGLTF reads a glTF/GLB document via qmuntal/gltf, flattening
// every mesh primitive across every node into a single IndexedMesh.
// This is the fourth mesh format SPEC_FULL.md supplements beyond
// spec.md §6's OBJ/STL pair and PLY.
func ParseGLTF(path string) (*shape.IndexedMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open gltf %s: %w", path, err)
	}

	var vertices []core.Vec3
	var normals []core.Vec3
	var uvs []core.Vec2
	var faces []shape.Face

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Indices == nil {
				continue
			}

			posAccessor, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
			if err != nil {
				return nil, fmt.Errorf("loaders: gltf positions: %w", err)
			}

			base := len(vertices)
			for _, p := range positions {
				vertices = append(vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
				normals = append(normals, core.Vec3{})
				uvs = append(uvs, core.Vec2{})
			}

			if normAccessorIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				norms, err := modeler.ReadNormal(doc, doc.Accessors[normAccessorIdx], nil)
				if err == nil {
					for i, n := range norms {
						if base+i < len(normals) {
							normals[base+i] = core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2]))
						}
					}
				}
			}

			if uvAccessorIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				texcoords, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvAccessorIdx], nil)
				if err == nil {
					for i, uv := range texcoords {
						if base+i < len(uvs) {
							uvs[base+i] = core.NewVec2(float64(uv[0]), float64(uv[1]))
						}
					}
				}
			}

			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("loaders: gltf indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				a := base + int(indices[i])
				b := base + int(indices[i+1])
				c := base + int(indices[i+2])
				faces = append(faces, shape.Face{
					VertexIdx: [3]int{a, b, c},
					NormalIdx: [3]int{a, b, c},
					TexIdx:    [3]int{a, b, c},
				})
			}
		}
	}

	return shape.NewIndexedMesh(vertices, normals, uvs, faces)
}
