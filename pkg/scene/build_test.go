package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func minimalRawScene() *RawScene {
	return &RawScene{
		Lights: []LightSpec{
			{Kind: "Point", Pos: [3]float64{0, 5, 0}, Intensity: 10, Spectrum: [3]float64{1, 1, 1}},
		},
		Camera: CameraSpec{
			FilmBuilder: FilmBuilderSpec{Size: [2]int{64, 64}},
			ToWorld: TransformSpec{
				Kind:    "LookAt",
				Origin:  [3]float64{0, 0, 5},
				Towards: [3]float64{0, 0, 0},
				Up:      [3]float64{0, 1, 0},
			},
			Variant: ProjectionSpec{Kind: "Perspective", XFov: 60, NearClip: 0.1, FarClip: 100, Aspect: 1},
		},
		Shapes: map[string]ShapeSpec{
			"ball": {Kind: "Sphere", Center: [3]float64{0, 0, 0}, Radius: 1},
		},
		BSDFs: map[string]BSDFSpec{
			"red": {Kind: "Diffuse", Reflectance: [3]float64{0.8, 0, 0}},
		},
		BSDFMapping: map[string]string{"ball": "red"},
	}
}

func TestBuildProducesIntersectableScene(t *testing.T) {
	raw := minimalRawScene()
	s, err := Build(raw, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, s.Lights, 1)
	require.Len(t, s.BSDFs, 1)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	si, b, hit := s.IntersectRay(ray, 0, 1000)
	require.True(t, hit)
	assert.NotNil(t, b)
	assert.InDelta(t, 4.0, si.It.T, 1e-9)
}

func TestBuildMissingBSDFMappingErrors(t *testing.T) {
	raw := minimalRawScene()
	delete(raw.BSDFMapping, "ball")
	_, err := Build(raw, BuildOptions{})
	assert.Error(t, err)
}

func TestBuildUnknownShapeKindErrors(t *testing.T) {
	raw := minimalRawScene()
	raw.Shapes["ball"] = ShapeSpec{Kind: "Cone"}
	_, err := Build(raw, BuildOptions{})
	assert.Error(t, err)
}

func TestBuildUnknownBSDFKindErrors(t *testing.T) {
	raw := minimalRawScene()
	raw.BSDFs["red"] = BSDFSpec{Kind: "Glossy"}
	_, err := Build(raw, BuildOptions{})
	assert.Error(t, err)
}

func TestBuildOctreeAcceleratorMatchesNaiveHit(t *testing.T) {
	raw := minimalRawScene()
	s, err := Build(raw, BuildOptions{Accelerator: AcceleratorOctree})
	require.NoError(t, err)
	naive, err := Build(raw, BuildOptions{Accelerator: AcceleratorNaive})
	require.NoError(t, err)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	si, _, hit := s.IntersectRay(ray, 0, 1000)
	naiveSi, _, naiveHit := naive.IntersectRay(ray, 0, 1000)
	assert.True(t, hit)
	assert.Equal(t, naiveHit, hit)
	assert.InDelta(t, naiveSi.It.T, si.It.T, 1e-9)
}
