package raster

import (
	"image"
	"image/color"
	"math"
)

// Buffer is a square NRGBA render target with a per-pixel depth buffer.
// The camera looks down -z, so larger z is closer.
type Buffer struct {
	Img   *image.NRGBA
	depth []float64
	size  int
}

func NewBuffer(size int) *Buffer {
	b := &Buffer{
		Img:   image.NewNRGBA(image.Rect(0, 0, size, size)),
		depth: make([]float64, size*size),
		size:  size,
	}
	for i := range b.depth {
		b.depth[i] = math.Inf(-1)
	}
	return b
}

// SetDepth writes c at (x, y) if z is nearer than the pixel's current depth.
func (b *Buffer) SetDepth(x, y int, z float64, c color.NRGBA) {
	if x < 0 || y < 0 || x >= b.size || y >= b.size {
		return
	}
	i := y*b.size + x
	if z <= b.depth[i] {
		return
	}
	b.depth[i] = z
	b.Img.SetNRGBA(x, y, c)
}
