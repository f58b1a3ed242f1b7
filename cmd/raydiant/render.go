package main

import (
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kjbrandt/raydiant/pkg/camera"
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/integrator"
	"github.com/kjbrandt/raydiant/pkg/sampler"
	"github.com/kjbrandt/raydiant/pkg/scene"
)

type renderFlags struct {
	input       string
	output      string
	format      string
	samples     int
	integrator  string
	accelerator string
	maxDepth    int
	depthScale  float64
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.input, "input", "scene.json", "scene description file (JSON or YAML)")
	cmd.Flags().StringVar(&f.output, "output", "out.jpg", "output image path")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: png|jpg|webp|tga (default: inferred from --output)")
	cmd.Flags().IntVar(&f.samples, "samples", 16, "samples per pixel")
	cmd.Flags().StringVar(&f.integrator, "integrator", "path", "integrator: depth|direct|path")
	cmd.Flags().StringVar(&f.accelerator, "accelerator", "octree", "accelerator: naive|octree")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 8, "maximum path-tracer bounce depth")
	cmd.Flags().Float64Var(&f.depthScale, "depth-scale", 10, "Depth integrator's distance scale")
	return cmd
}

func runRender(cmd *cobra.Command, f *renderFlags) error {
	logger := core.NewDefaultLogger()

	data, err := os.ReadFile(f.input)
	if err != nil {
		return core.NewError(core.IOError, "reading scene file", err)
	}

	raw, err := parseRawScene(f.input, data)
	if err != nil {
		return err
	}

	opts := scene.BuildOptions{BaseDir: filepath.Dir(f.input)}
	switch f.accelerator {
	case "naive":
		opts.Accelerator = scene.AcceleratorNaive
	default:
		opts.Accelerator = scene.AcceleratorOctree
	}

	builtScene, err := scene.Build(raw, opts)
	if err != nil {
		return err
	}

	width, height := raw.Camera.FilmBuilder.Size[0], raw.Camera.FilmBuilder.Size[1]
	if width <= 0 || height <= 0 {
		return core.NewError(core.ConfigError, "camera.film_builder.size must be positive", nil)
	}
	film := camera.NewFilm(width, height, core.SpectrumRGB)

	integ, err := buildIntegrator(f)
	if err != nil {
		return err
	}

	logger.Printf("rendering %dx%d, %d spp, %s integrator, %s accelerator", width, height, f.samples, f.integrator, f.accelerator)

	start := time.Now()
	integrator.Render(builtScene, integ, film, f.samples, samplerFor(builtScene))
	logger.Printf("render finished in %v", time.Since(start))

	progressWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || progressWidth <= 0 {
		progressWidth = 40
	}
	logger.Printf("%s", strings.Repeat("=", min(progressWidth, 40)))

	return writeImage(film, f)
}

func samplerFor(s *scene.Scene) core.Sampler {
	if s.Sampler != nil {
		return s.Sampler
	}
	return sampler.NewUniform(1)
}

func buildIntegrator(f *renderFlags) (integrator.Integrator, error) {
	switch f.integrator {
	case "depth":
		return integrator.NewDepth(f.depthScale), nil
	case "direct":
		return integrator.NewDirect(), nil
	case "path":
		return integrator.NewPath(f.maxDepth), nil
	default:
		return nil, core.NewError(core.ConfigError, "unknown integrator: "+f.integrator, nil)
	}
}

func parseRawScene(path string, data []byte) (*scene.RawScene, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err := scene.ParseYAML(data)
		if err != nil {
			return nil, core.NewError(core.ParseError, "parsing yaml scene", err)
		}
		return raw, nil
	default:
		raw, err := scene.ParseJSON(data)
		if err != nil {
			return nil, core.NewError(core.ParseError, "parsing json scene", err)
		}
		return raw, nil
	}
}

func writeImage(film *camera.Film, f *renderFlags) error {
	format := f.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(f.output)), ".")
	}

	out, err := os.Create(f.output)
	if err != nil {
		return core.NewError(core.IOError, "creating output file", err)
	}
	defer out.Close()

	img := film.ToImage()
	switch format {
	case "png":
		return png.Encode(out, img)
	case "jpg", "jpeg":
		return jpeg.Encode(out, img, &jpeg.Options{Quality: 92})
	case "webp":
		return nativewebp.Encode(out, img, nil)
	case "tga":
		return tga.Encode(out, img)
	default:
		return core.NewError(core.ConfigError, "unsupported output format: "+format, nil)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
