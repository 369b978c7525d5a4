package inpaint

import "math"

// Brush size limits in display pixels.
const (
	MinBrushSize     = 5
	MaxBrushSize     = 100
	DefaultBrushSize = 30

	// WheelStep is the size change applied per wheel notch.
	WheelStep = 5
)

// Brush holds the current brush size. The size is the stroke width in
// display pixels: a tap paints a disc of radius Size()/2 and a drag paints
// a round-capped stroke Size() pixels wide.
//
// The size is always within [MinBrushSize, MaxBrushSize]; both mutation
// paths clamp.
type Brush struct {
	size float64
}

// NewBrush returns a brush with the given size, clamped into range.
func NewBrush(size float64) *Brush {
	b := &Brush{size: DefaultBrushSize}
	b.SetSize(size)
	return b
}

// Size returns the current brush size.
func (b *Brush) Size() float64 {
	return b.size
}

// Radius returns half the brush size.
func (b *Brush) Radius() float64 {
	return b.size / 2
}

// SetSize sets the size from a continuous control and returns the applied
// value. NaN leaves the size unchanged.
func (b *Brush) SetSize(size float64) float64 {
	if math.IsNaN(size) {
		return b.size
	}
	b.size = clampBrush(size)
	return b.size
}

// Step changes the size by WheelStep per notch; positive notches grow the
// brush. Returns the applied value.
func (b *Brush) Step(notches int) float64 {
	b.size = clampBrush(b.size + float64(notches*WheelStep))
	return b.size
}

// Wheel applies a wheel event. Scrolling down (positive deltaY) shrinks
// the brush by one step, scrolling up grows it. A zero delta is ignored,
// which keeps horizontal-only scrolling from resizing the brush.
func (b *Brush) Wheel(deltaY float64) float64 {
	switch {
	case deltaY > 0:
		return b.Step(-1)
	case deltaY < 0:
		return b.Step(1)
	}
	return b.size
}

func clampBrush(v float64) float64 {
	return math.Max(MinBrushSize, math.Min(MaxBrushSize, v))
}
