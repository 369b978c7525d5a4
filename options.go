package inpaint

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	c := inpaint.NewCanvas(
//	    inpaint.WithBrushSize(40),
//	    inpaint.WithMaskListener(func(has bool) { submit.SetEnabled(has) }),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	paint     PaintConfig
	resampler Resampler
	brushSize float64
	listener  func(hasMask bool)
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		paint:     DefaultPaint(),
		resampler: Bilinear,
		brushSize: DefaultBrushSize,
	}
}

// WithPaint sets the paint color and foreground threshold. An invalid
// configuration is ignored and logged; the default stays in effect.
func WithPaint(p PaintConfig) CanvasOption {
	return func(o *canvasOptions) {
		if err := p.Validate(); err != nil {
			Logger().Warn("inpaint: paint config ignored", "err", err)
			return
		}
		o.paint = p
	}
}

// WithResampler sets how exported masks are scaled to native size.
func WithResampler(rs Resampler) CanvasOption {
	return func(o *canvasOptions) {
		if rs != nil {
			o.resampler = rs
		}
	}
}

// WithBrushSize sets the initial brush size (clamped).
func WithBrushSize(size float64) CanvasOption {
	return func(o *canvasOptions) {
		o.brushSize = size
	}
}

// WithMaskListener registers fn to be called whenever the raster changes
// between empty and non-empty, and on every Clear.
func WithMaskListener(fn func(hasMask bool)) CanvasOption {
	return func(o *canvasOptions) {
		o.listener = fn
	}
}
