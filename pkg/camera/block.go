package camera

import "github.com/kjbrandt/raydiant/pkg/core"

// ImageBlock is a rectangular region of the film with its own local
// spectrum buffer, for future parallel write-back. The current
// integrator writes the shared Film directly (spec.md §4.5), so a
// block's buffer is populated and then merged with Film.Write rather
// than being an alternate write target in active use.
type ImageBlock struct {
	OffsetX, OffsetY int
	Width, Height    int
	buffer           []core.Spectrum
}

// At returns the spectrum at local coordinates (x,y) within the block.
func (b *ImageBlock) At(x, y int) core.Spectrum {
	return b.buffer[y*b.Width+x]
}

// Set stores a spectrum at local coordinates (x,y) within the block.
func (b *ImageBlock) Set(x, y int, s core.Spectrum) {
	b.buffer[y*b.Width+x] = s
}

// MergeInto writes every non-zero sample in the block back to film at
// the block's offset.
func (b *ImageBlock) MergeInto(film *Film) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			s := b.At(x, y)
			if s.IsZero() {
				continue
			}
			uv := core.Vec2{
				X: float64(b.OffsetX+x) / float64(film.Width),
				Y: float64(b.OffsetY+y) / float64(film.Height),
			}
			film.Write(uv, s)
		}
	}
}

// Blocks partitions the film into blockSize x blockSize ImageBlocks
// (the last row/column may be smaller), per spec.md §4.5.
func (f *Film) Blocks(blockSize int) []*ImageBlock {
	var blocks []*ImageBlock
	for y := 0; y < f.Height; y += blockSize {
		for x := 0; x < f.Width; x += blockSize {
			w := blockSize
			if x+w > f.Width {
				w = f.Width - x
			}
			h := blockSize
			if y+h > f.Height {
				h = f.Height - y
			}
			blocks = append(blocks, &ImageBlock{
				OffsetX: x, OffsetY: y, Width: w, Height: h,
				buffer: make([]core.Spectrum, w*h),
			})
		}
	}
	return blocks
}
