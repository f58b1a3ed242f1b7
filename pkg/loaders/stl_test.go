package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSTLParsesSingleFacet(t *testing.T) {
	path := writeFixture(t, "tri.stl", `
solid tri
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
endloop
endfacet
endsolid tri
`)
	mesh, err := ParseSTL(path)
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestParseSTLSkipsIncompleteFacet(t *testing.T) {
	path := writeFixture(t, "incomplete.stl", `
solid s
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
endloop
endfacet
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
endloop
endfacet
endsolid s
`)
	mesh, err := ParseSTL(path)
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestParseSTLMultipleFacets(t *testing.T) {
	path := writeFixture(t, "quad.stl", `
solid q
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 1 1 0
endloop
endfacet
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 1 0
vertex 0 1 0
endloop
endfacet
endsolid q
`)
	mesh, err := ParseSTL(path)
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.TriangleCount())
}
