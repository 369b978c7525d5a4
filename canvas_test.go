package inpaint

import (
	"errors"
	"image/color"
	"slices"
	"testing"
)

// newTestCanvas returns a canvas over a 1000x500 source laid out in a
// 200x200 container, giving a 200x100 frame at scale 5.
func newTestCanvas(t *testing.T, opts ...CanvasOption) *Canvas {
	t.Helper()
	c := NewCanvas(opts...)
	c.SetSource(NewSourceSize(1000, 500))
	if !c.Layout(200, 200) {
		t.Fatal("Layout() reported no frame")
	}
	return c
}

type maskEvents []bool

func (m *maskEvents) listen(has bool) { *m = append(*m, has) }

func TestCanvasLayout(t *testing.T) {
	c := newTestCanvas(t)
	f := c.Frame()
	if f.Width != 200 || f.Height != 100 {
		t.Fatalf("frame = %dx%d, want 200x100", f.Width, f.Height)
	}
	if c.Raster().Width() != 200 || c.Raster().Height() != 100 {
		t.Errorf("raster = %dx%d, want frame size", c.Raster().Width(), c.Raster().Height())
	}
}

func TestCanvasLayoutDeferred(t *testing.T) {
	c := NewCanvas()
	c.SetSource(NewSourceSize(400, 300))

	if c.Layout(0, 0) {
		t.Fatal("Layout(0,0) should not produce a frame")
	}
	if !c.Frame().Empty() {
		t.Fatalf("frame = %+v, want empty", c.Frame())
	}

	c.Down(Pt(10, 10))
	if c.HasMask() || c.Drawing() {
		t.Error("pointer input before layout must be ignored")
	}
	if _, err := c.ExportMask(); !errors.Is(err, ErrNoFrame) {
		t.Errorf("ExportMask() error = %v, want ErrNoFrame", err)
	}

	if !c.Layout(400, 600) {
		t.Fatal("retrying Layout with real bounds should succeed")
	}
	if f := c.Frame(); f.Width != 400 || f.Height != 300 {
		t.Errorf("frame = %dx%d, want 400x300", f.Width, f.Height)
	}
}

func TestCanvasLayoutBeforeSource(t *testing.T) {
	c := NewCanvas()
	if c.Layout(300, 300) {
		t.Fatal("Layout without a source should not produce a frame")
	}
	c.SetSource(NewSourceSize(600, 300))
	if f := c.Frame(); f.Width != 300 || f.Height != 150 {
		t.Errorf("frame = %dx%d, want 300x150", f.Width, f.Height)
	}
}

func TestCanvasTapPaintsDot(t *testing.T) {
	var events maskEvents
	c := newTestCanvas(t, WithMaskListener(events.listen))

	c.Down(Pt(100, 50))
	c.Up()

	if !c.HasMask() {
		t.Fatal("tap should produce a mask")
	}
	if got := c.Raster().At(100, 50).(color.RGBA); got != DefaultPaint().Color {
		t.Errorf("dot center = %v, want paint color", got)
	}
	if got := c.Raster().At(100, 50+20).(color.RGBA); got.A != 0 {
		t.Errorf("pixel outside dot = %v, want transparent", got)
	}
	if !slices.Equal(events, maskEvents{true}) {
		t.Errorf("mask events = %v, want [true]", events)
	}
}

func TestCanvasStrokeConnectsSamples(t *testing.T) {
	c := newTestCanvas(t, WithBrushSize(10))

	c.Down(Pt(10, 50))
	c.Move(Pt(100, 50))
	c.Move(Pt(190, 50))
	c.Up()

	// Samples are far apart; the segments must still leave no gaps.
	for x := 10; x < 190; x++ {
		if got := c.Raster().At(x, 50).(color.RGBA); got != DefaultPaint().Color {
			t.Fatalf("pixel (%d,50) = %v, want paint color", x, got)
		}
	}
}

func TestCanvasStateMachine(t *testing.T) {
	c := newTestCanvas(t)

	if c.Drawing() {
		t.Fatal("new canvas should be idle")
	}
	c.Move(Pt(50, 50))
	if !c.Raster().Empty() {
		t.Fatal("idle move must not paint")
	}
	if p, ok := c.Hover(); !ok || p != Pt(50, 50) {
		t.Errorf("Hover() = %v, %v, want (50,50), true", p, ok)
	}

	c.Down(Pt(20, 20))
	if !c.Drawing() {
		t.Fatal("Down should start drawing")
	}
	c.Cancel()
	if c.Drawing() {
		t.Fatal("Cancel should stop drawing")
	}
	if _, ok := c.Hover(); ok {
		t.Error("Cancel should hide the brush outline")
	}

	// After leaving, a move must not connect back to the old stroke.
	before := slices.Clone(c.Raster().Data())
	c.Move(Pt(180, 80))
	if !slices.Equal(before, c.Raster().Data()) {
		t.Error("move after cancel painted")
	}

	// A new stroke starts fresh from its own down point.
	c.Down(Pt(180, 80))
	c.Up()
	if got := c.Raster().At(100, 50).(color.RGBA); got.A != 0 {
		t.Errorf("pixel between strokes = %v, want transparent", got)
	}
}

func TestCanvasMaskSignal(t *testing.T) {
	var events maskEvents
	c := newTestCanvas(t, WithMaskListener(events.listen))

	c.Down(Pt(50, 50))
	for x := 51.0; x < 90; x++ {
		c.Move(Pt(x, 50))
	}
	c.Up()
	c.Down(Pt(20, 20))
	c.Up()
	if !slices.Equal(events, maskEvents{true}) {
		t.Fatalf("after strokes events = %v, want [true]", events)
	}

	c.Clear()
	if c.HasMask() || !c.Raster().Empty() {
		t.Error("Clear should empty the raster")
	}
	c.Clear()
	if !slices.Equal(events, maskEvents{true, false, false}) {
		t.Errorf("after clears events = %v, want [true false false]", events)
	}
}

func TestCanvasRelayoutResetsRaster(t *testing.T) {
	var events maskEvents
	c := newTestCanvas(t, WithMaskListener(events.listen))

	c.Down(Pt(50, 50))
	c.Up()
	raster := c.Raster()

	// Same bounds: the frame is unchanged and the painting survives.
	c.Layout(200, 200)
	if c.Raster() != raster || !c.HasMask() {
		t.Fatal("identical layout must keep the raster")
	}

	c.Layout(400, 400)
	if c.Raster() == raster {
		t.Fatal("new frame must recreate the raster")
	}
	if c.Raster().Width() != 400 || c.Raster().Height() != 200 {
		t.Errorf("raster = %dx%d, want 400x200", c.Raster().Width(), c.Raster().Height())
	}
	if c.HasMask() {
		t.Error("recreated raster should be empty")
	}
	if !slices.Equal(events, maskEvents{true, false}) {
		t.Errorf("events = %v, want [true false]", events)
	}
}

func TestCanvasSetSourceResets(t *testing.T) {
	c := newTestCanvas(t)
	c.Down(Pt(50, 50))

	// Same dimensions, different image: the raster is still discarded.
	c.SetSource(NewSourceSize(1000, 500))
	if c.HasMask() || c.Drawing() {
		t.Error("switching source should discard the painting and stroke")
	}
	if _, err := c.ExportMask(); !errors.Is(err, ErrNoRegion) {
		t.Errorf("ExportMask() error = %v, want ErrNoRegion", err)
	}

	c.SetSource(nil)
	if !c.Frame().Empty() {
		t.Errorf("frame after removing source = %+v, want empty", c.Frame())
	}
}

func TestCanvasWheel(t *testing.T) {
	c := newTestCanvas(t)
	if got := c.Wheel(100); got != 25 {
		t.Errorf("Wheel(down) = %v, want 25", got)
	}
	if got := c.Brush().Size(); got != 25 {
		t.Errorf("brush size = %v, want 25", got)
	}
}

func TestCanvasBrushSizeAtCapture(t *testing.T) {
	c := newTestCanvas(t, WithBrushSize(MinBrushSize))
	c.Down(Pt(50, 50))
	c.Up()
	c.Brush().SetSize(MaxBrushSize)

	// The earlier dot keeps its small radius.
	if got := c.Raster().At(50, 50+6).(color.RGBA); got.A != 0 {
		t.Errorf("pixel beyond small dot = %v, want transparent", got)
	}
}

func TestWithPaintIgnoresInvalid(t *testing.T) {
	c := NewCanvas(WithPaint(PaintConfig{Color: color.RGBA{R: 255, A: 255}, Channel: ChannelBlue, Threshold: 100}))
	if c.Paint() != DefaultPaint() {
		t.Errorf("invalid paint should be ignored, got %+v", c.Paint())
	}

	red := PaintConfig{Color: color.RGBA{R: 255, A: 255}, Channel: ChannelRed, Threshold: 100}
	c = NewCanvas(WithPaint(red))
	if c.Paint() != red {
		t.Errorf("Paint() = %+v, want %+v", c.Paint(), red)
	}
}
