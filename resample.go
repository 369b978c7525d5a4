package inpaint

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
)

// Resampler scales an image to exactly width x height.
type Resampler interface {
	Resample(src image.Image, width, height int) image.Image
}

// ResamplerFunc adapts a function to the Resampler interface.
type ResamplerFunc func(src image.Image, width, height int) image.Image

// Resample implements Resampler.
func (f ResamplerFunc) Resample(src image.Image, width, height int) image.Image {
	return f(src, width, height)
}

var (
	// NearestNeighbor copies the closest source pixel. It never introduces
	// intermediate values.
	NearestNeighbor Resampler = ResamplerFunc(nearestNeighbor)

	// Bilinear interpolates between source pixels. Edges come out smooth
	// but gray, so exports re-threshold the result. It is the default.
	Bilinear Resampler = ResamplerFunc(bilinear)
)

func nearestNeighbor(src image.Image, width, height int) image.Image {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func bilinear(src image.Image, width, height int) image.Image {
	return transform.Resize(src, width, height, transform.Linear)
}
