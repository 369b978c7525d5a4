package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/inpaint"
)

// Script is a recorded editing session.
type Script struct {
	Container Size    `yaml:"container"`
	Source    Size    `yaml:"source"` // used when no image is given
	Brush     float64 `yaml:"brush"`
	Events    []Event `yaml:"events"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Event is one input event in client coordinates.
type Event struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	DY   float64 `yaml:"dy"`
	Size float64 `yaml:"size"`
}

func parseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.Brush == 0 {
		s.Brush = inpaint.DefaultBrushSize
	}
	return &s, nil
}

// replay feeds the script's events through the mouse and touch adapters.
func replay(c *inpaint.Canvas, events []Event) error {
	mouse := inpaint.MouseAdapter{Target: c}
	touch := &inpaint.TouchAdapter{Target: c}

	for i, ev := range events {
		m := inpaint.MouseEvent{ClientX: ev.X, ClientY: ev.Y}
		t := inpaint.TouchEvent{Touches: []inpaint.Touch{{ClientX: ev.X, ClientY: ev.Y}}}
		switch ev.Type {
		case "mousedown":
			mouse.MouseDown(m)
		case "mousemove":
			mouse.MouseMove(m)
		case "mouseup":
			mouse.MouseUp(m)
		case "mouseleave":
			mouse.MouseLeave(m)
		case "wheel":
			mouse.MouseWheel(inpaint.WheelEvent{DeltaY: ev.DY})
		case "touchstart":
			touch.TouchStart(t)
		case "touchmove":
			touch.TouchMove(t)
		case "touchend":
			touch.TouchEnd(inpaint.TouchEvent{})
		case "touchcancel":
			touch.TouchCancel(inpaint.TouchEvent{})
		case "brush":
			c.Brush().SetSize(ev.Size)
		case "clear":
			c.Clear()
		default:
			return fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
	}
	return nil
}
