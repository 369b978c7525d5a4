package inpaint

import (
	"fmt"
	"image/color"
)

// Channel selects the RGBA component a mask pixel is classified on.
type Channel int

// Channels of a paint raster pixel.
const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// PaintConfig couples the color strokes are painted with and the rule that
// turns painted pixels into mask foreground. Color and Threshold are one
// unit: a pixel is foreground when its Channel intensity (premultiplied,
// so it scales with stroke coverage) exceeds Threshold. Changing Color
// means re-deriving Threshold.
type PaintConfig struct {
	Color     color.RGBA
	Channel   Channel
	Threshold uint8
}

// DefaultPaint returns the default configuration: opaque #3b82f6
// classified on the blue channel above 100. A pixel becomes foreground
// once it is roughly 41% covered, which keeps anti-aliased stroke edges
// from growing the mask.
func DefaultPaint() PaintConfig {
	return PaintConfig{
		Color:     color.RGBA{R: 59, G: 130, B: 246, A: 255},
		Channel:   ChannelBlue,
		Threshold: 100,
	}
}

// Validate reports ErrInvalidPaint if a fully covered pixel would not be
// classified as foreground.
func (p PaintConfig) Validate() error {
	if p.Channel < ChannelRed || p.Channel > ChannelBlue {
		return fmt.Errorf("%w: unknown channel %v", ErrInvalidPaint, p.Channel)
	}
	if p.Color.A != 255 {
		return fmt.Errorf("%w: paint color must be opaque", ErrInvalidPaint)
	}
	if p.intensity(p.Color) <= p.Threshold {
		return fmt.Errorf("%w: %s %d <= %d", ErrInvalidPaint, p.Channel, p.intensity(p.Color), p.Threshold)
	}
	return nil
}

// Foreground classifies one premultiplied RGBA pixel.
func (p PaintConfig) Foreground(pix []uint8) bool {
	return pix[p.Channel] > p.Threshold
}

func (p PaintConfig) intensity(c color.RGBA) uint8 {
	switch p.Channel {
	case ChannelRed:
		return c.R
	case ChannelGreen:
		return c.G
	}
	return c.B
}
