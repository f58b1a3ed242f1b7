package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/scene"
)

func newExampleCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a template scene description to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExample(output)
		},
	}
	cmd.Flags().StringVar(&output, "output", "scene.json", "path to write the template scene to")
	return cmd
}

func runExample(output string) error {
	raw := exampleScene()

	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(output), ".yaml") || strings.EqualFold(filepath.Ext(output), ".yml") {
		data, err = scene.MarshalYAML(raw)
	} else {
		data, err = json.MarshalIndent(raw, "", "  ")
	}
	if err != nil {
		return core.NewError(core.IOError, "encoding example scene", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return core.NewError(core.IOError, "writing example scene", err)
	}
	return nil
}

// exampleScene builds a minimal, renderable single-sphere scene: a
// diffuse ball lit by one point light, viewed through a perspective
// camera, per spec.md §6's "example" subcommand.
func exampleScene() *scene.RawScene {
	return &scene.RawScene{
		Lights: []scene.LightSpec{
			{
				Kind:      "Point",
				Pos:       [3]float64{2, 4, -2},
				Intensity: 40,
				Spectrum:  [3]float64{1, 1, 1},
			},
		},
		Camera: scene.CameraSpec{
			FilmBuilder: scene.FilmBuilderSpec{Size: [2]int{640, 480}},
			ToWorld: scene.TransformSpec{
				Kind:    "LookAt",
				Origin:  [3]float64{0, 1, 5},
				Towards: [3]float64{0, 0, 0},
				Up:      [3]float64{0, 1, 0},
			},
			Sampler: &scene.SamplerSpec{Seed: 1, Variant: "uniform"},
			Variant: scene.ProjectionSpec{
				Kind:     "Perspective",
				XFov:     60,
				NearClip: 0.01,
				FarClip:  1000,
				Aspect:   640.0 / 480.0,
			},
		},
		Shapes: map[string]scene.ShapeSpec{
			"ball": {
				Kind:   "Sphere",
				Center: [3]float64{0, 0, 0},
				Radius: 1,
			},
			"floor": {
				Kind:   "Plane",
				Normal: [3]float64{0, 1, 0},
				W:      1,
				Up:     [3]float64{0, 0, 1},
				Width:  20,
				Height: 20,
			},
		},
		BSDFs: map[string]scene.BSDFSpec{
			"red":   {Kind: "Diffuse", Reflectance: [3]float64{0.8, 0.1, 0.1}},
			"white": {Kind: "Diffuse", Reflectance: [3]float64{0.8, 0.8, 0.8}},
		},
		BSDFMapping: map[string]string{
			"ball":  "red",
			"floor": "white",
		},
	}
}
