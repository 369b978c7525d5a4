package inpaint

import (
	"fmt"
	"image"
)

// Canvas is one mask editing session over a source image. It lays the
// image out in a container, turns pointer input into brush strokes on a
// display-resolution Raster and exports the result as a binary mask at the
// source's native size.
//
// Canvas is driven from a single event loop and is not safe for
// concurrent use. It implements Pointer.
type Canvas struct {
	source     *SourceImage
	containerW int
	containerH int
	frame      Frame
	raster     *Raster

	brush     *Brush
	paint     PaintConfig
	resampler Resampler
	listener  func(hasMask bool)
	hasMask   bool

	// Stroke state: drawing is the Idle/Drawing state, last is the end of
	// the previous segment while drawing.
	drawing bool
	last    Point

	// Hover position for the brush outline.
	hover    Point
	hovering bool
}

var _ Pointer = (*Canvas)(nil)

// NewCanvas creates a canvas with no source image and no layout.
func NewCanvas(opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		raster:    NewRaster(0, 0),
		brush:     NewBrush(o.brushSize),
		paint:     o.paint,
		resampler: o.resampler,
		listener:  o.listener,
	}
}

// SetSource replaces the source image. The paint raster is always
// discarded, even when the new image produces the same frame.
func (c *Canvas) SetSource(src *SourceImage) {
	c.source = src
	c.relayout(true)
}

// Source returns the current source image, or nil.
func (c *Canvas) Source() *SourceImage {
	return c.source
}

// Layout records the container's available size and recomputes the
// display frame. It reports whether a frame exists afterwards.
//
// A zero-sized container (not laid out yet) is skipped and Layout can be
// called again once real bounds are known. Calling Layout with unchanged
// bounds keeps the painted raster.
func (c *Canvas) Layout(containerW, containerH int) bool {
	c.containerW, c.containerH = containerW, containerH
	c.relayout(false)
	return !c.frame.Empty()
}

func (c *Canvas) relayout(force bool) {
	var (
		f  Frame
		ok bool
	)
	if c.source != nil {
		f, ok = Fit(c.source.Width(), c.source.Height(), c.containerW, c.containerH)
		if !ok {
			Logger().Warn("inpaint: layout skipped",
				"source", image.Pt(c.source.Width(), c.source.Height()),
				"container", image.Pt(c.containerW, c.containerH))
		}
	}
	if !ok {
		// A new source without usable bounds must not keep the old raster.
		if force {
			c.frame = Frame{}
			c.resetRaster()
		}
		return
	}
	if f == c.frame && !force {
		return
	}
	c.frame = f
	c.resetRaster()
	Logger().Debug("inpaint: frame laid out",
		"display", image.Pt(f.Width, f.Height),
		"source", image.Pt(f.SourceWidth, f.SourceHeight))
}

// resetRaster discards the raster and recreates it at frame size.
func (c *Canvas) resetRaster() {
	c.raster = NewRaster(c.frame.Width, c.frame.Height)
	c.endStroke()
	c.setHasMask(false)
}

// Frame returns the current display frame. It is empty until both a
// source and a non-zero container are known.
func (c *Canvas) Frame() Frame {
	return c.frame
}

// Raster returns the paint raster. Callers must treat it as read-only.
func (c *Canvas) Raster() *Raster {
	return c.raster
}

// Brush returns the brush controller.
func (c *Canvas) Brush() *Brush {
	return c.brush
}

// Paint returns the paint configuration.
func (c *Canvas) Paint() PaintConfig {
	return c.paint
}

// HasMask reports whether the raster holds any painted coverage.
func (c *Canvas) HasMask() bool {
	return c.hasMask
}

// Drawing reports whether a stroke is in progress.
func (c *Canvas) Drawing() bool {
	return c.drawing
}

// Hover returns the last pointer position over the surface, used to draw
// the brush outline. ok is false after the pointer left.
func (c *Canvas) Hover() (p Point, ok bool) {
	return c.hover, c.hovering
}

// Down starts a stroke at p and paints a dot there, so a tap without
// movement leaves a mark.
func (c *Canvas) Down(p Point) {
	if c.frame.Empty() {
		Logger().Debug("inpaint: pointer down ignored, no frame")
		return
	}
	c.drawing = true
	c.last = p
	c.hover, c.hovering = p, true
	c.fill(Disc{Center: p, Radius: c.brush.Radius()})
}

// Move extends the current stroke to p with a round-capped segment from
// the previous point. While idle it only moves the brush outline.
func (c *Canvas) Move(p Point) {
	c.hover, c.hovering = p, true
	if !c.drawing {
		return
	}
	c.fill(Capsule{A: c.last, B: p, Width: c.brush.Size()})
	c.last = p
}

// Up ends the current stroke.
func (c *Canvas) Up() {
	c.endStroke()
}

// Cancel ends the current stroke and hides the brush outline. It is used
// for the pointer leaving the surface and for cancelled touches.
func (c *Canvas) Cancel() {
	c.endStroke()
	c.hovering = false
}

func (c *Canvas) endStroke() {
	c.drawing = false
	c.last = Point{}
}

// Wheel resizes the brush by one step per wheel event and returns the
// new size.
func (c *Canvas) Wheel(deltaY float64) float64 {
	return c.brush.Wheel(deltaY)
}

// Clear empties the raster. The mask listener is always notified with
// false, even if the raster was already empty.
func (c *Canvas) Clear() {
	c.raster.Clear()
	c.endStroke()
	c.hasMask = false
	c.notify()
}

// fill paints s in the paint color and tracks the empty/non-empty
// transition.
func (c *Canvas) fill(s Shape) {
	if c.raster.Fill(s, c.paint.Color) && !c.hasMask {
		c.setHasMask(true)
	}
}

func (c *Canvas) setHasMask(v bool) {
	if c.hasMask == v {
		return
	}
	c.hasMask = v
	c.notify()
}

func (c *Canvas) notify() {
	Logger().Debug("inpaint: mask state changed", "hasMask", c.hasMask)
	if c.listener != nil {
		c.listener(c.hasMask)
	}
}

// ExportMask returns the binary mask at the source's native size. It
// returns ErrNoRegion when nothing has been painted and ErrNoFrame before
// the first layout. The returned image belongs to the caller.
func (c *Canvas) ExportMask() (*image.Gray, error) {
	if c.frame.Empty() {
		return nil, ErrNoFrame
	}
	mask, err := ExportMask(c.raster, c.frame.SourceWidth, c.frame.SourceHeight, c.paint, c.resampler)
	if err != nil {
		Logger().Warn("inpaint: export rejected", "err", err)
		return nil, err
	}
	return mask, nil
}

// ExportMaskPNG returns the exported mask encoded as PNG.
func (c *Canvas) ExportMaskPNG() ([]byte, error) {
	mask, err := c.ExportMask()
	if err != nil {
		return nil, err
	}
	return EncodeMaskPNG(mask)
}

// ExportMaskDataURL returns the exported mask as a
// "data:image/png;base64,..." payload. Exporting twice without drawing in
// between yields identical strings.
func (c *Canvas) ExportMaskDataURL() (string, error) {
	mask, err := c.ExportMask()
	if err != nil {
		return "", err
	}
	s, err := EncodeMaskDataURL(mask)
	if err != nil {
		return "", fmt.Errorf("inpaint: export mask: %w", err)
	}
	return s, nil
}
