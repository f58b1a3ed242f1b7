// Package scene builds a renderable Scene from a declarative RawScene
// description (spec.md §6), loaded from JSON or YAML.
package scene

import "encoding/json"

// RawScene is the declarative, JSON/YAML-shaped scene description.
type RawScene struct {
	Lights      []LightSpec          `json:"lights" yaml:"lights"`
	Camera      CameraSpec           `json:"camera" yaml:"camera"`
	Shapes      map[string]ShapeSpec `json:"shapes" yaml:"shapes"`
	BSDFs       map[string]BSDFSpec  `json:"bsdfs" yaml:"bsdfs"`
	BSDFMapping map[string]string    `json:"bsdf_mapping" yaml:"bsdf_mapping"`
}

// CameraSpec describes the camera block of a RawScene.
type CameraSpec struct {
	FilmBuilder FilmBuilderSpec `json:"film_builder" yaml:"film_builder"`
	ToWorld     TransformSpec   `json:"to_world" yaml:"to_world"`
	Sampler     *SamplerSpec    `json:"sampler,omitempty" yaml:"sampler,omitempty"`
	Variant     ProjectionSpec  `json:"variant" yaml:"variant"`
}

// FilmBuilderSpec carries the film's pixel dimensions.
type FilmBuilderSpec struct {
	Size [2]int `json:"size" yaml:"size"`
}

// SamplerSpec describes the sampler block.
type SamplerSpec struct {
	Seed    uint64 `json:"seed" yaml:"seed"`
	Variant string `json:"variant" yaml:"variant"`
}

// ProjectionSpec is the tagged union of PerspectiveSpec|OrthographicSpec.
type ProjectionSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	// Perspective fields
	XFov float64 `json:"x_fov,omitempty" yaml:"x_fov,omitempty"`

	// Shared
	NearClip float64 `json:"near_clip" yaml:"near_clip"`
	FarClip  float64 `json:"far_clip" yaml:"far_clip"`
	Aspect   float64 `json:"aspect" yaml:"aspect"`
}

// TransformSpec is the tagged union {Identity, LookAt, Scale, Rotate}.
type TransformSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	Origin  [3]float64 `json:"origin,omitempty" yaml:"origin,omitempty"`
	Towards [3]float64 `json:"towards,omitempty" yaml:"towards,omitempty"`
	Up      [3]float64 `json:"up,omitempty" yaml:"up,omitempty"`

	Vec [3]float64 `json:"vec,omitempty" yaml:"vec,omitempty"` // Scale

	Axis [3]float64 `json:"axis,omitempty" yaml:"axis,omitempty"` // Rotate
	Deg  float64    `json:"deg,omitempty" yaml:"deg,omitempty"`
}

// ShapeSpec is the tagged union {Sphere, Plane, Triangle, Obj}.
type ShapeSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	// Sphere
	Center [3]float64 `json:"center,omitempty" yaml:"center,omitempty"`
	Radius float64    `json:"radius,omitempty" yaml:"radius,omitempty"`

	// Plane: the infinite plane {p : normal·p + w = 0}, bounded to a
	// width x height patch.
	Normal [3]float64 `json:"normal,omitempty" yaml:"normal,omitempty"`
	W      float64    `json:"w,omitempty" yaml:"w,omitempty"`
	Up     [3]float64 `json:"up,omitempty" yaml:"up,omitempty"`
	Width  float64    `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64    `json:"height,omitempty" yaml:"height,omitempty"`

	// Triangle
	Vertices [3][3]float64 `json:"vertices,omitempty" yaml:"vertices,omitempty"`

	// Obj / mesh file (also used for STL/PLY/glTF, dispatched by extension)
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Shape-local transform (applied via shape.Binding)
	Transform *TransformSpec `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// BSDFSpec is the tagged union {Diffuse, Debug, MTL}.
type BSDFSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	Reflectance [3]float64 `json:"reflectance,omitempty" yaml:"reflectance,omitempty"`

	// MTL
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LightSpec is the tagged union {Point, Dir}.
type LightSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	// Point
	Pos [3]float64 `json:"pos,omitempty" yaml:"pos,omitempty"`

	// Dir
	OffsetDir [3]float64 `json:"offset_dir,omitempty" yaml:"offset_dir,omitempty"`

	Intensity float64    `json:"intensity" yaml:"intensity"`
	Spectrum  [3]float64 `json:"spectrum" yaml:"spectrum"`
}

// ParseJSON decodes a RawScene from JSON bytes.
func ParseJSON(data []byte) (*RawScene, error) {
	var raw RawScene
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}
