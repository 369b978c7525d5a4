package inpaint

import (
	"image"
	"math"
)

// Shape is a coverage primitive that can be painted into a Raster.
// Coverage is sampled at pixel centers.
type Shape interface {
	// Bounds returns the pixel rectangle that may receive coverage.
	Bounds() image.Rectangle

	// Coverage returns the covered fraction in [0, 1] at (px, py).
	Coverage(px, py float64) float64
}

// Disc is a filled circle.
type Disc struct {
	Center Point
	Radius float64
}

// Bounds implements Shape.
func (d Disc) Bounds() image.Rectangle {
	return pixelBounds(d.Center.X, d.Center.Y, d.Center.X, d.Center.Y, d.Radius)
}

// Coverage implements Shape.
func (d Disc) Coverage(px, py float64) float64 {
	return SDFFilledCircleCoverage(px, py, d.Center.X, d.Center.Y, d.Radius)
}

// Capsule is a segment stroked with round caps: the shape a canvas
// produces for a line with round caps and joins. Width is the full stroke
// width.
type Capsule struct {
	A, B  Point
	Width float64
}

// Bounds implements Shape.
func (c Capsule) Bounds() image.Rectangle {
	return pixelBounds(c.A.X, c.A.Y, c.B.X, c.B.Y, c.Width/2)
}

// Coverage implements Shape.
func (c Capsule) Coverage(px, py float64) float64 {
	return SDFCapsuleCoverage(px, py, c.A.X, c.A.Y, c.B.X, c.B.Y, c.Width/2)
}

// Ring is a stroked circle outline. Dash, when positive, splits the
// outline into alternating on/off arcs of that length.
type Ring struct {
	Center    Point
	Radius    float64
	LineWidth float64
	Dash      float64
}

// Bounds implements Shape.
func (r Ring) Bounds() image.Rectangle {
	return pixelBounds(r.Center.X, r.Center.Y, r.Center.X, r.Center.Y, r.Radius+r.LineWidth/2)
}

// Coverage implements Shape.
func (r Ring) Coverage(px, py float64) float64 {
	cov := SDFCircleCoverage(px, py, r.Center.X, r.Center.Y, r.Radius, r.LineWidth/2)
	if cov == 0 || r.Dash <= 0 || r.Radius <= 0 {
		return cov
	}
	// Arc length from angle 0, measured along the ring.
	angle := math.Atan2(py-r.Center.Y, px-r.Center.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if int(angle*r.Radius/r.Dash)%2 != 0 {
		return 0
	}
	return cov
}

// pixelBounds returns the pixel rectangle around the segment (x0,y0)-(x1,y1)
// inflated by pad plus the anti-aliasing band.
func pixelBounds(x0, y0, x1, y1, pad float64) image.Rectangle {
	pad += sdfAntialiasWidth + 1
	return image.Rect(
		int(math.Floor(math.Min(x0, x1)-pad)),
		int(math.Floor(math.Min(y0, y1)-pad)),
		int(math.Ceil(math.Max(x0, x1)+pad)),
		int(math.Ceil(math.Max(y0, y1)+pad)),
	)
}
