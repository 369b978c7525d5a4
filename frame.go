package inpaint

import "math"

// Frame is the on-screen size of a source image laid out inside a
// container. The display size never exceeds the container, fills it on at
// least one axis and keeps the source aspect ratio (within rounding).
type Frame struct {
	// Width and Height are the display dimensions in pixels.
	Width, Height int

	// SourceWidth and SourceHeight are the native source dimensions.
	SourceWidth, SourceHeight int
}

// Fit computes the display frame for a source image of srcW x srcH inside
// a container of containerW x containerH.
//
// If the image is relatively wider than the container it is fitted to the
// container width, otherwise to the container height, so nothing is
// cropped and the largest possible area is used.
//
// Fit reports false, and computes nothing, when any dimension is not
// positive. A container that has not been laid out yet reports zero size;
// the caller retries once real bounds are known.
func Fit(srcW, srcH, containerW, containerH int) (Frame, bool) {
	if srcW <= 0 || srcH <= 0 || containerW <= 0 || containerH <= 0 {
		return Frame{}, false
	}

	imgAspect := float64(srcW) / float64(srcH)
	containerAspect := float64(containerW) / float64(containerH)

	f := Frame{SourceWidth: srcW, SourceHeight: srcH}
	if imgAspect > containerAspect {
		f.Width = containerW
		f.Height = clampDim(math.Round(float64(containerW)/imgAspect), containerH)
	} else {
		f.Height = containerH
		f.Width = clampDim(math.Round(float64(containerH)*imgAspect), containerW)
	}
	return f, true
}

// clampDim keeps a derived dimension inside [1, limit].
func clampDim(v float64, limit int) int {
	if v < 1 {
		return 1
	}
	if v > float64(limit) {
		return limit
	}
	return int(v)
}

// Empty reports whether the frame has not been computed.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0
}

// ScaleX returns the display-to-source scale factor along X.
func (f Frame) ScaleX() float64 {
	if f.Width <= 0 {
		return 0
	}
	return float64(f.SourceWidth) / float64(f.Width)
}

// ScaleY returns the display-to-source scale factor along Y.
func (f Frame) ScaleY() float64 {
	if f.Height <= 0 {
		return 0
	}
	return float64(f.SourceHeight) / float64(f.Height)
}

// ToSource maps a display-space point into source space.
func (f Frame) ToSource(p Point) Point {
	return Point{X: p.X * f.ScaleX(), Y: p.Y * f.ScaleY()}
}

// ToDisplay maps a source-space point into display space.
func (f Frame) ToDisplay(p Point) Point {
	sx, sy := f.ScaleX(), f.ScaleY()
	if sx == 0 || sy == 0 {
		return Point{}
	}
	return Point{X: p.X / sx, Y: p.Y / sy}
}
