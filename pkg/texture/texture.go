// Package texture loads bitmap textures for texture-mapped BSDFs,
// normalizing every supported format to an in-memory image.Image that
// can be sampled by UV coordinate.
package texture

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Map is a sampleable bitmap texture, addressed by UV in [0,1]^2 with
// repeat wrapping and nearest-neighbor lookup.
type Map struct {
	img    image.Image
	bounds image.Rectangle
}

// Load reads a texture file, dispatching on its registered format
// (PNG, JPEG, BMP, TIFF). The map_Kd directive in an MTL file
// (pkg/loaders/mtl.go) names files loaded through this function.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewError(core.IOError, "opening texture file", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, core.NewError(core.ParseError, "decoding texture "+path, err)
	}
	return &Map{img: img, bounds: img.Bounds()}, nil
}

// Resized returns a copy of the texture scaled to width x height,
// useful for matching mipmap-free sampling cost to the render's
// output resolution.
func (m *Map) Resized(width, height int) *Map {
	scaled := imaging.Resize(m.img, width, height, imaging.Lanczos)
	return &Map{img: scaled, bounds: scaled.Bounds()}
}

// Sample looks up the texel nearest to uv, wrapping out-of-range
// coordinates by repetition and flipping v so (0,0) is the bottom-left
// texel, matching the OBJ/MTL UV convention.
func (m *Map) Sample(uv core.Vec2) core.Spectrum {
	w := m.bounds.Dx()
	h := m.bounds.Dy()
	if w == 0 || h == 0 {
		return core.SpectrumZero
	}

	u := wrap01(uv.X)
	v := wrap01(uv.Y)

	x := m.bounds.Min.X + int(u*float64(w))
	y := m.bounds.Min.Y + int((1-v)*float64(h))
	x = clampInt(x, m.bounds.Min.X, m.bounds.Max.X-1)
	y = clampInt(y, m.bounds.Min.Y, m.bounds.Max.Y-1)

	r, g, b, _ := m.img.At(x, y).RGBA()
	const maxChan = 65535.0
	return core.NewSpectrumRGB(float64(r)/maxChan, float64(g)/maxChan, float64(b)/maxChan)
}

func wrap01(v float64) float64 {
	v -= float64(int(v))
	if v < 0 {
		v += 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
