// Package inpaint implements brush masking for AI inpainting.
//
// # Overview
//
// A user paints over a previously generated image to mark the region an
// inpainting backend should change. inpaint lays the image out on screen,
// turns pointer input into brush strokes on a display-resolution raster
// and exports the painted region as a binary PNG mask at the image's
// native resolution.
//
// # Quick Start
//
//	src, err := inpaint.LoadSource("portrait.png")
//	if err != nil {
//	    return err
//	}
//
//	c := inpaint.NewCanvas(inpaint.WithMaskListener(func(has bool) {
//	    submit.SetEnabled(has)
//	}))
//	c.SetSource(src)
//	c.Layout(360, 640) // container size; retry later if not laid out yet
//
//	c.Down(inpaint.Pt(120, 200))
//	c.Move(inpaint.Pt(160, 220))
//	c.Up()
//
//	mask, err := c.ExportMaskDataURL() // "data:image/png;base64,..."
//
// # Architecture
//
//   - Fit / Frame: aspect-preserving display size for a source in a container
//   - Brush: brush size, clamped to [MinBrushSize, MaxBrushSize]
//   - Raster, Shape: premultiplied RGBA paint buffer and the disc/capsule
//     coverage primitives painted into it
//   - Canvas: the Idle/Drawing stroke state machine, hasMask notifications
//     and mask export
//   - MouseAdapter, TouchAdapter: translate platform events into Pointer calls
//   - PaintConfig: the paint color and the foreground threshold, one unit
//
// The prompt sub-package handles "@N" image references in the edit
// instructions sent along with the mask.
//
// # Coordinate System
//
// Display space has its origin at the top-left of the drawn image, X to the
// right and Y down, in display pixels. Source space is the native pixel
// grid of the image; Frame converts between the two.
//
// # Concurrency
//
// A Canvas belongs to one event loop. All operations run synchronously in
// the input handler that calls them and nothing is locked.
package inpaint
