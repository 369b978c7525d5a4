package inpaint

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"slices"

	"github.com/anthonynsimon/bild/segment"

	"github.com/gogpu/inpaint/internal/dataurl"
)

// rethresholdLevel splits resampled gray values back into black and white.
const rethresholdLevel = 128

// ExportMask turns a paint raster into a binary mask at the source's
// native width x height.
//
// Pixels the paint config classifies as foreground become white, all
// others black; the result has no alpha channel. When the native size is
// at least the raster size the binary image is resampled with rs
// (Bilinear when nil) and thresholded again so interpolated edges stay
// strictly black or white. When either axis shrinks, a native pixel is
// white if any foreground pixel of its footprint is, so thin strokes and
// small dots survive the reduction.
//
// ExportMask returns ErrNoRegion when the raster has never been painted
// or when no foreground pixel survives, and ErrInvalidPaint when paint
// does not validate.
func ExportMask(r *Raster, width, height int, paint PaintConfig, rs Resampler) (*image.Gray, error) {
	if r == nil || r.Empty() {
		return nil, ErrNoRegion
	}
	if err := paint.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if rs == nil {
		rs = Bilinear
	}

	bin := binarize(r, paint)
	var mask *image.Gray
	if width < r.Width() || height < r.Height() {
		mask = reduceAny(bin, width, height)
	} else {
		mask = segment.Threshold(rs.Resample(bin, width, height), rethresholdLevel)
	}
	if !slices.Contains(mask.Pix, 0xFF) {
		return nil, fmt.Errorf("%w: no foreground pixel at %dx%d", ErrNoRegion, width, height)
	}

	Logger().Debug("inpaint: mask exported",
		"display", r.Bounds().Size(),
		"native", mask.Bounds().Size())
	return mask, nil
}

// reduceAny maps every white pixel of bin onto the native pixels its
// footprint overlaps.
func reduceAny(bin *image.Gray, width, height int) *image.Gray {
	sw, sh := bin.Bounds().Dx(), bin.Bounds().Dy()
	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < sh; y++ {
		y0, y1 := span(y, sh, height)
		row := bin.Pix[y*bin.Stride : y*bin.Stride+sw]
		for x, v := range row {
			if v == 0 {
				continue
			}
			x0, x1 := span(x, sw, width)
			for ny := y0; ny < y1; ny++ {
				for nx := x0; nx < x1; nx++ {
					out.Pix[ny*out.Stride+nx] = 0xFF
				}
			}
		}
	}
	return out
}

// span returns the half-open range of destination cells that source cell
// i of n overlaps when n cells are stretched over m.
func span(i, n, m int) (lo, hi int) {
	lo = i * m / n
	hi = ((i+1)*m + n - 1) / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, min(hi, m)
}

// binarize classifies every raster pixel into an opaque white or black
// gray pixel.
func binarize(r *Raster, paint PaintConfig) *image.Gray {
	bin := image.NewGray(r.Bounds())
	data := r.Data()
	for i := range bin.Pix {
		if paint.Foreground(data[i*4 : i*4+4]) {
			bin.Pix[i] = 0xFF
		}
	}
	return bin
}

// EncodeMaskPNG encodes a mask losslessly as PNG.
func EncodeMaskPNG(mask *image.Gray) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, mask); err != nil {
		return nil, fmt.Errorf("inpaint: encode mask: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeMaskDataURL encodes a mask as a self-contained
// "data:image/png;base64,..." payload.
func EncodeMaskDataURL(mask *image.Gray) (string, error) {
	b, err := EncodeMaskPNG(mask)
	if err != nil {
		return "", err
	}
	return dataurl.Encode("image/png", b), nil
}
