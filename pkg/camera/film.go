package camera

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Film stores one spectrum per pixel under a single read-write lock,
// addressed by 2-D Morton (bit-interleaved) code, per spec.md §4.5.
type Film struct {
	Width, Height int
	Mode          core.SpectrumMode

	mu      sync.RWMutex
	storage []core.Spectrum
}

// NewFilm allocates a film of the given pixel dimensions.
func NewFilm(width, height int, mode core.SpectrumMode) *Film {
	capacity := int(mortonEncode(width-1, height-1)) + 1
	return &Film{
		Width:   width,
		Height:  height,
		Mode:    mode,
		storage: make([]core.Spectrum, capacity),
	}
}

func (f *Film) indexOf(x, y int) uint32 { return mortonEncode(x, y) }

// Write implements spec.md §4.5's write(uv, spectrum): if spectrum is
// zero, the write lock is never acquired.
func (f *Film) Write(uv core.Vec2, spectrum core.Spectrum) {
	if spectrum.IsZero() {
		return
	}
	x := int(math.Floor(uv.X * float64(f.Width)))
	y := int(math.Floor(uv.Y * float64(f.Height)))
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}

	f.mu.Lock()
	f.storage[f.indexOf(x, y)] = spectrum
	f.mu.Unlock()
}

// At returns the spectrum stored at pixel (x,y).
func (f *Film) At(x, y int) core.Spectrum {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return core.SpectrumZero
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.storage[f.indexOf(x, y)]
}

// Line rasterizes a line from (x0,y0) to (x1,y1) using Bresenham's
// algorithm, writing spectrum at each covered pixel. This is a 2-D
// side-output primitive (spec.md §4.5), not used by 3-D rendering.
func (f *Film) Line(spectrum core.Spectrum, x0, y0, x1, y1 int) {
	dx := iabs(x1 - x0)
	dy := -iabs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	f.mu.Lock()
	defer f.mu.Unlock()
	for {
		if x0 >= 0 && x0 < f.Width && y0 >= 0 && y0 < f.Height {
			f.storage[f.indexOf(x0, y0)] = spectrum
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle rasterizes a filled circle of the given radius centered at
// center, via the midpoint circle algorithm. A 2-D side-output
// primitive, per spec.md §4.5.
func (f *Film) Circle(center core.Vec2, radius float64, spectrum core.Spectrum) {
	cx := int(math.Round(center.X))
	cy := int(math.Round(center.Y))
	r := int(math.Round(radius))

	f.mu.Lock()
	defer f.mu.Unlock()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= 0 && x < f.Width && y >= 0 && y < f.Height {
				f.storage[f.indexOf(x, y)] = spectrum
			}
		}
	}
}

// ToImage iterates storage in Morton order, decoding each pixel's
// (x,y), converting its spectrum to RGB with a ×255 scale and gamma
// 2.2 (core.Spectrum.ToRGB8), and writes into an RGBA image buffer.
func (f *Film) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))

	f.mu.RLock()
	defer f.mu.RUnlock()
	for code := 0; code < len(f.storage); code++ {
		x, y := mortonDecode(uint32(code))
		if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
			continue
		}
		r, g, b := f.storage[code].ToRGB8(f.Mode)
		img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return img
}

// MortonOrder returns every in-bounds pixel coordinate of the film,
// ordered by ascending Morton code — the traversal order the shared
// per-pixel sampling driver uses (spec.md §4.7).
func (f *Film) MortonOrder() []image.Point {
	pts := make([]image.Point, 0, f.Width*f.Height)
	for code := 0; code < len(f.storage); code++ {
		x, y := mortonDecode(uint32(code))
		if x >= 0 && x < f.Width && y >= 0 && y < f.Height {
			pts = append(pts, image.Point{X: x, Y: y})
		}
	}
	return pts
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
