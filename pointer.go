package inpaint

// Pointer is the input abstraction strokes are driven through. Platform
// adapters translate native mouse and touch events into these calls so
// both produce identical strokes. Points are in display space.
type Pointer interface {
	// Down starts a stroke.
	Down(p Point)
	// Move reports a new pointer position, drawing or not.
	Move(p Point)
	// Up ends a stroke.
	Up()
	// Cancel ends a stroke because the pointer left the surface or the
	// platform cancelled the gesture.
	Cancel()
}

// Stroker is implemented by pointer targets that can refuse a stroke, for
// example before their first layout. Adapters use it to learn whether Down
// actually started one.
type Stroker interface {
	Drawing() bool
}

// Wheeler is implemented by pointer targets that resize the brush on wheel
// input.
type Wheeler interface {
	Wheel(deltaY float64) float64
}

// MouseEvent is a mouse event in client (window) coordinates.
type MouseEvent struct {
	ClientX, ClientY float64
}

// WheelEvent is a wheel event. Only the vertical delta is used.
type WheelEvent struct {
	DeltaX, DeltaY float64
}

// MouseAdapter feeds mouse events into a Pointer. Origin is the drawing
// surface's top-left corner in client coordinates.
type MouseAdapter struct {
	Target Pointer
	Origin Point
}

func (m MouseAdapter) pos(ev MouseEvent) Point {
	return Pt(ev.ClientX-m.Origin.X, ev.ClientY-m.Origin.Y)
}

// MouseDown handles a button press.
func (m MouseAdapter) MouseDown(ev MouseEvent) {
	m.Target.Down(m.pos(ev))
}

// MouseMove handles pointer motion.
func (m MouseAdapter) MouseMove(ev MouseEvent) {
	m.Target.Move(m.pos(ev))
}

// MouseUp handles a button release.
func (m MouseAdapter) MouseUp(MouseEvent) {
	m.Target.Up()
}

// MouseLeave handles the pointer leaving the surface.
func (m MouseAdapter) MouseLeave(MouseEvent) {
	m.Target.Cancel()
}

// MouseWheel forwards the wheel to the target and reports whether the
// platform's default scrolling should be suppressed.
func (m MouseAdapter) MouseWheel(ev WheelEvent) (preventDefault bool) {
	w, ok := m.Target.(Wheeler)
	if !ok {
		return false
	}
	w.Wheel(ev.DeltaY)
	return true
}

// Touch is one touch point in client coordinates.
type Touch struct {
	ClientX, ClientY float64
}

// TouchEvent carries the touches currently on the surface.
type TouchEvent struct {
	Touches []Touch
}

// TouchAdapter feeds single-point touch events into a Pointer. Only the
// first touch is used. Each handler reports whether the platform's default
// scroll/pan should be suppressed, which is the case for the whole
// duration of a stroke.
type TouchAdapter struct {
	Target Pointer
	Origin Point

	active bool
}

func (t *TouchAdapter) pos(ev TouchEvent) (Point, bool) {
	if len(ev.Touches) == 0 {
		return Point{}, false
	}
	tc := ev.Touches[0]
	return Pt(tc.ClientX-t.Origin.X, tc.ClientY-t.Origin.Y), true
}

// TouchStart begins a stroke at the first touch. When the target is a
// Stroker that did not start drawing, the touch is left to the platform.
func (t *TouchAdapter) TouchStart(ev TouchEvent) (preventDefault bool) {
	p, ok := t.pos(ev)
	if !ok {
		return false
	}
	t.Target.Down(p)
	if s, ok := t.Target.(Stroker); ok && !s.Drawing() {
		t.active = false
		return false
	}
	t.active = true
	return true
}

// TouchMove extends the stroke. Moves outside a stroke are left to the
// platform so the page can still scroll.
func (t *TouchAdapter) TouchMove(ev TouchEvent) (preventDefault bool) {
	if !t.active {
		return false
	}
	p, ok := t.pos(ev)
	if !ok {
		return true
	}
	t.Target.Move(p)
	return true
}

// TouchEnd ends the stroke.
func (t *TouchAdapter) TouchEnd(TouchEvent) (preventDefault bool) {
	preventDefault, t.active = t.active, false
	t.Target.Up()
	return preventDefault
}

// TouchCancel aborts the stroke.
func (t *TouchAdapter) TouchCancel(TouchEvent) (preventDefault bool) {
	preventDefault, t.active = t.active, false
	t.Target.Cancel()
	return preventDefault
}
