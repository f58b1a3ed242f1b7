package scene

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/kjbrandt/raydiant/pkg/accel"
	"github.com/kjbrandt/raydiant/pkg/bsdf"
	"github.com/kjbrandt/raydiant/pkg/camera"
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/light"
	"github.com/kjbrandt/raydiant/pkg/loaders"
	"github.com/kjbrandt/raydiant/pkg/sampler"
	"github.com/kjbrandt/raydiant/pkg/shape"
	"github.com/kjbrandt/raydiant/pkg/texture"
)

// AcceleratorKind selects which spatial index Build hands shapes to.
type AcceleratorKind int

const (
	AcceleratorNaive AcceleratorKind = iota
	AcceleratorOctree
)

// BuildOptions configures Build beyond what RawScene itself carries.
type BuildOptions struct {
	Accelerator AcceleratorKind
	// BaseDir resolves relative Obj/MTL file paths against the scene
	// file's directory.
	BaseDir string
}

// Build materializes a RawScene into a renderable Scene, per spec.md
// §6's build rules: BSDFs are materialized first into a stable
// container, then each shape-builder is paired with the BSDF named by
// bsdf_mapping[shape_id]. A missing mapping is a build-time error.
func Build(raw *RawScene, opts BuildOptions) (*Scene, error) {
	s := &Scene{}

	bsdfIndex, bsdfArena, err := buildBSDFs(raw, opts)
	if err != nil {
		return nil, err
	}
	s.BSDFs = bsdfArena

	bindings, err := buildBindings(raw, bsdfIndex, opts)
	if err != nil {
		return nil, err
	}
	s.bindings = bindings

	switch opts.Accelerator {
	case AcceleratorOctree:
		s.Accelerator = accel.NewOctree(bindings)
	default:
		s.Accelerator = accel.NewNaive(bindings)
	}

	for _, ls := range raw.Lights {
		l, err := buildLight(ls)
		if err != nil {
			return nil, err
		}
		s.Lights = append(s.Lights, l)
	}

	cam, samp, err := buildCamera(raw.Camera)
	if err != nil {
		return nil, err
	}
	s.Camera = cam
	s.Sampler = samp

	return s, nil
}

func buildBSDFs(raw *RawScene, opts BuildOptions) (map[string]int, []bsdf.BSDF, error) {
	index := make(map[string]int, len(raw.BSDFs))
	arena := make([]bsdf.BSDF, 0, len(raw.BSDFs))

	for id, spec := range raw.BSDFs {
		b, err := buildBSDF(spec, opts)
		if err != nil {
			return nil, nil, core.NewError(core.ConfigError, fmt.Sprintf("bsdf %q", id), err)
		}
		index[id] = len(arena)
		arena = append(arena, b)
	}
	return index, arena, nil
}

func buildBSDF(spec BSDFSpec, opts BuildOptions) (bsdf.BSDF, error) {
	switch spec.Kind {
	case "Diffuse":
		return bsdf.NewDiffuse(vecToSpectrum(spec.Reflectance)), nil
	case "Debug":
		return bsdf.NewDebug(), nil
	case "MTL":
		path := spec.Path
		if !filepath.IsAbs(path) && opts.BaseDir != "" {
			path = filepath.Join(opts.BaseDir, path)
		}
		mats, err := loaders.ParseMTL(path)
		if err != nil {
			return nil, err
		}
		if len(mats) == 0 {
			return nil, core.NewError(core.ParseError, "mtl file defines no materials: "+path, nil)
		}
		mat := mats[0]
		if mat.MapKd == "" {
			return bsdf.NewMTL(mat), nil
		}
		texPath := mat.MapKd
		if !filepath.IsAbs(texPath) {
			texPath = filepath.Join(filepath.Dir(path), texPath)
		}
		kdMap, err := texture.Load(texPath)
		if err != nil {
			return nil, err
		}
		return bsdf.NewMTLTextured(mat, kdMap), nil
	default:
		return nil, core.NewError(core.ConfigError, "unknown bsdf kind: "+spec.Kind, nil)
	}
}

func buildBindings(raw *RawScene, bsdfIndex map[string]int, opts BuildOptions) ([]shape.Binding, error) {
	var bindings []shape.Binding

	for id, spec := range raw.Shapes {
		bsdfID, ok := raw.BSDFMapping[id]
		if !ok {
			return nil, core.NewError(core.ConfigError, "missing bsdf_mapping for shape "+id, nil)
		}
		idx, ok := bsdfIndex[bsdfID]
		if !ok {
			return nil, core.NewError(core.ConfigError, fmt.Sprintf("shape %q maps to unknown bsdf %q", id, bsdfID), nil)
		}

		shapes, err := buildShapes(spec, opts)
		if err != nil {
			return nil, core.NewError(core.ConfigError, fmt.Sprintf("shape %q", id), err)
		}

		transform := core.IdentityTransform()
		if spec.Transform != nil {
			transform = buildTransform(*spec.Transform)
		}

		for _, sh := range shapes {
			bindings = append(bindings, shape.NewBinding(sh, transform, idx))
		}
	}
	return bindings, nil
}

// buildShapes returns the shape for one ShapeSpec; an Obj/mesh-file
// spec yields a single IndexedMesh holding all of its triangles.
func buildShapes(spec ShapeSpec, opts BuildOptions) ([]shape.Shape, error) {
	switch spec.Kind {
	case "Sphere":
		sp, err := shape.NewSphere(arrToVec3(spec.Center), spec.Radius)
		if err != nil {
			return nil, err
		}
		return []shape.Shape{sp}, nil
	case "Plane":
		p := shape.NewPlane(arrToVec3(spec.Normal), spec.W, arrToVec3(spec.Up), spec.Width, spec.Height)
		return []shape.Shape{p}, nil
	case "Triangle":
		t, err := shape.NewTriangle(arrToVec3(spec.Vertices[0]), arrToVec3(spec.Vertices[1]), arrToVec3(spec.Vertices[2]))
		if err != nil {
			return nil, err
		}
		return []shape.Shape{t}, nil
	case "Obj":
		path := spec.File
		if !filepath.IsAbs(path) && opts.BaseDir != "" {
			path = filepath.Join(opts.BaseDir, path)
		}
		mesh, err := loadMesh(path)
		if err != nil {
			return nil, err
		}
		return []shape.Shape{mesh}, nil
	default:
		return nil, core.NewError(core.ConfigError, "unknown shape kind: "+spec.Kind, nil)
	}
}

// loadMesh dispatches on file extension, supplementing the OBJ/STL
// pair spec.md §6 names with the PLY and glTF loaders spec.md §7
// adds.
func loadMesh(path string) (*shape.IndexedMesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return loaders.ParseOBJ(path)
	case ".stl":
		return loaders.ParseSTL(path)
	case ".ply":
		return loaders.ParsePLY(path)
	case ".gltf", ".glb":
		return loaders.ParseGLTF(path)
	default:
		return nil, core.NewError(core.ConfigError, "unrecognized mesh file extension: "+path, nil)
	}
}

func buildLight(spec LightSpec) (light.Light, error) {
	switch spec.Kind {
	case "Point":
		return light.NewPoint(arrToVec3(spec.Pos), spec.Intensity, vecToSpectrum(spec.Spectrum)), nil
	case "Dir":
		return light.NewDirectional(arrToVec3(spec.OffsetDir), spec.Intensity, vecToSpectrum(spec.Spectrum)), nil
	default:
		return nil, core.NewError(core.ConfigError, "unknown light kind: "+spec.Kind, nil)
	}
}

func buildCamera(spec CameraSpec) (*camera.Camera, core.Sampler, error) {
	toWorld := buildTransform(spec.ToWorld)

	aspect := spec.Variant.Aspect
	if aspect == 0 {
		w, h := spec.FilmBuilder.Size[0], spec.FilmBuilder.Size[1]
		if h > 0 {
			aspect = float64(w) / float64(h)
		} else {
			aspect = 1
		}
	}

	var projection camera.Projection
	switch spec.Variant.Kind {
	case "Perspective":
		xFovRadians := spec.Variant.XFov * math.Pi / 180
		projection = camera.NewPerspective(xFovRadians, spec.Variant.NearClip, spec.Variant.FarClip, aspect)
	case "Orthographic":
		projection = camera.NewOrthographic(spec.Variant.NearClip, spec.Variant.FarClip, aspect)
	default:
		return nil, nil, core.NewError(core.ConfigError, "unknown camera variant: "+spec.Variant.Kind, nil)
	}

	cam := camera.NewCamera(toWorld, projection)

	seed := uint64(1)
	if spec.Sampler != nil {
		seed = spec.Sampler.Seed
	}
	return cam, sampler.NewUniform(seed), nil
}

func buildTransform(spec TransformSpec) core.Transform4 {
	switch spec.Kind {
	case "LookAt":
		return core.LookAt(arrToVec3(spec.Origin), arrToVec3(spec.Towards), arrToVec3(spec.Up))
	case "Scale":
		return core.ScaleTransform(arrToVec3(spec.Vec))
	case "Rotate":
		return core.RotateTransform(arrToVec3(spec.Axis), spec.Deg)
	default:
		return core.IdentityTransform()
	}
}

func arrToVec3(a [3]float64) core.Vec3 { return core.NewVec3(a[0], a[1], a[2]) }

func vecToSpectrum(a [3]float64) core.Spectrum { return core.NewSpectrumRGB(a[0], a[1], a[2]) }
