package inpaint

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Brush outline style.
var cursorColor = color.RGBA{R: 59, G: 130, B: 246, A: 255}

const (
	cursorLineWidth = 2
	cursorDash      = 4
)

// overlayAlpha is the opacity the painted region is shown with.
var overlayAlpha = image.NewUniform(color.Alpha{A: 128})

// Render draws the editing view at display resolution: the source scaled
// into the frame, the painted region at half opacity, and a dashed brush
// outline at the hover position. The outline only exists in the returned
// image; the paint raster is never modified.
func (c *Canvas) Render() (*image.RGBA, error) {
	if c.frame.Empty() {
		return nil, ErrNoFrame
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.frame.Width, c.frame.Height))
	b := dst.Bounds()

	xdraw.Draw(dst, b, image.Black, image.Point{}, xdraw.Src)
	if img := c.source.Image(); img != nil {
		xdraw.ApproxBiLinear.Scale(dst, b, img, img.Bounds(), xdraw.Over, nil)
	}
	if c.hasMask {
		xdraw.DrawMask(dst, b, c.raster, image.Point{}, overlayAlpha, image.Point{}, xdraw.Over)
	}
	if p, ok := c.Hover(); ok {
		ring := Ring{Center: p, Radius: c.brush.Radius(), LineWidth: cursorLineWidth, Dash: cursorDash}
		fillShape(dst.Pix, dst.Stride, b, ring, cursorColor)
	}
	return dst, nil
}
