package postprocess

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Downsample reduces a supersampled frame to target×target with CatmullRom
// filtering over premultiplied alpha. Filtering straight NRGBA would blend
// color from fully transparent pixels and leave dark halos at splat edges.
func Downsample(img *image.NRGBA, target int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= target && b.Dy() <= target {
		return img
	}

	// NRGBA→RGBA premultiplies through the color model conversion.
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, xdraw.Src, nil)

	// RGBA→NRGBA unpremultiplies the same way.
	out := image.NewNRGBA(dst.Bounds())
	draw.Draw(out, dst.Bounds(), dst, image.Point{}, draw.Src)
	return out
}
