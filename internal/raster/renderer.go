package raster

import (
	"image"
	"image/color"

	"github.com/golang/geo/r3"
	"golang.org/x/exp/rand"

	"so3kit/so3"
)

// SpherePoints returns n points distributed uniformly on the unit sphere,
// drawn by normalizing Gaussian triples from src.
func SpherePoints(n int, src rand.Source) []r3.Vector {
	rng := rand.New(src)
	pts := make([]r3.Vector, 0, n)
	for len(pts) < n {
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if v.Norm() < 1e-12 {
			continue
		}
		pts = append(pts, v.Normalize())
	}
	return pts
}

// Render rotates the point cloud by m and draws it with an orthographic
// camera at size·super resolution, one depth-shaded splat per point.
func Render(points []r3.Vector, m so3.Matrix, size, super int) *image.NRGBA {
	if super < 1 {
		super = 1
	}
	res := size * super
	b := NewBuffer(res)
	scale := float64(res) * 0.42 // margin around the unit sphere
	half := float64(res) / 2
	radius := 2 * super

	for _, p := range points {
		q := m.MulVec(p)
		px := half + q.X*scale
		py := half - q.Y*scale
		// Near points brighter, far points dimmer.
		sh := 0.35 + 0.65*(q.Z+1)/2
		c := color.NRGBA{
			R: uint8(200*sh + 0.5),
			G: uint8(220*sh + 0.5),
			B: uint8(255*sh + 0.5),
			A: 255,
		}
		splat(b, px, py, q.Z, radius, c)
	}
	return b.Img
}

// splat fills a filled circle of the given pixel radius around (cx, cy).
func splat(b *Buffer, cx, cy, z float64, r int, c color.NRGBA) {
	x0, y0 := int(cx+0.5), int(cy+0.5)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			b.SetDepth(x0+dx, y0+dy, z, c)
		}
	}
}
