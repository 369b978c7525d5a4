package inpaint

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// SDFFilledCircleCoverage computes anti-aliased coverage for a filled circle
// using a signed distance field approach.
//
// Parameters:
//   - px, py: pixel center coordinates
//   - cx, cy: circle center
//   - radius: circle radius
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func SDFFilledCircleCoverage(px, py, cx, cy, radius float64) float64 {
	dist := math.Hypot(px-cx, py-cy)
	return smoothstepCoverage(dist - radius)
}

// SDFCircleCoverage computes anti-aliased coverage for a stroked circle.
// radius is measured to the center of the stroke.
func SDFCircleCoverage(px, py, cx, cy, radius, halfStrokeWidth float64) float64 {
	dist := math.Hypot(px-cx, py-cy)
	sdf := math.Abs(dist-radius) - halfStrokeWidth
	return smoothstepCoverage(sdf)
}

// SDFCapsuleCoverage computes anti-aliased coverage for a round-capped
// segment from (ax, ay) to (bx, by) with the given half width.
// A zero-length segment degenerates to a filled circle.
func SDFCapsuleCoverage(px, py, ax, ay, bx, by, halfWidth float64) float64 {
	return smoothstepCoverage(segmentDistance(px, py, ax, ay, bx, by) - halfWidth)
}

// segmentDistance returns the distance from a point to a line segment.
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
