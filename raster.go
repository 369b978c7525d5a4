package inpaint

import (
	"image"
	"image/color"
	"math"
)

// Raster is the paint buffer strokes are accumulated into. It has the
// display frame's size, stores premultiplied RGBA (4 bytes per pixel) and
// starts fully transparent.
//
// A Raster is never resized: when the frame changes the canvas discards it
// and creates a new one.
type Raster struct {
	width   int
	height  int
	data    []uint8
	painted bool
}

// NewRaster creates a transparent raster with the given dimensions.
// Non-positive dimensions produce an empty raster.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (r *Raster) Data() []uint8 {
	return r.data
}

// Empty reports whether no stroke has left coverage on the raster.
func (r *Raster) Empty() bool {
	return !r.painted
}

// Clear resets every pixel to transparent.
func (r *Raster) Clear() {
	clear(r.data)
	r.painted = false
}

// Fill composites shape in color c over the raster (source-over) and
// reports whether any pixel received coverage.
func (r *Raster) Fill(s Shape, c color.RGBA) bool {
	touched := fillShape(r.data, r.width*4, r.Bounds(), s, c)
	if touched {
		r.painted = true
	}
	return touched
}

// fillShape composites s over a premultiplied RGBA buffer whose origin is
// (0, 0) and reports whether any pixel ended up with non-zero alpha.
func fillShape(pix []uint8, stride int, bounds image.Rectangle, s Shape, c color.RGBA) bool {
	rect := s.Bounds().Intersect(bounds)
	if rect.Empty() {
		return false
	}

	sa := float64(c.A) / 255
	touched := false
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		py := float64(y) + 0.5
		row := y * stride
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cov := s.Coverage(float64(x)+0.5, py)
			if cov <= 0 {
				continue
			}
			i := row + x*4
			inv := 1 - sa*cov
			pix[i+0] = blendChannel(c.R, pix[i+0], cov, inv)
			pix[i+1] = blendChannel(c.G, pix[i+1], cov, inv)
			pix[i+2] = blendChannel(c.B, pix[i+2], cov, inv)
			pix[i+3] = blendChannel(c.A, pix[i+3], cov, inv)
			if pix[i+3] > 0 {
				touched = true
			}
		}
	}
	return touched
}

// blendChannel computes premultiplied source-over for one channel.
func blendChannel(src, dst uint8, cov, inv float64) uint8 {
	v := float64(src)*cov + float64(dst)*inv
	return uint8(math.Min(255, math.Round(v)))
}

// ToImage copies the raster into an image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	copy(img.Pix, r.data)
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return color.RGBA{}
	}
	i := (y*r.width + x) * 4
	return color.RGBA{R: r.data[i], G: r.data[i+1], B: r.data[i+2], A: r.data[i+3]}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}
