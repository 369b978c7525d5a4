package inpaint

import (
	"errors"
	"image/color"
	"testing"
)

func TestDefaultPaintValid(t *testing.T) {
	if err := DefaultPaint().Validate(); err != nil {
		t.Errorf("DefaultPaint().Validate() = %v, want nil", err)
	}
}

func TestPaintValidate(t *testing.T) {
	tests := []struct {
		name  string
		paint PaintConfig
	}{
		{"below threshold", PaintConfig{Color: color.RGBA{R: 255, B: 80, A: 255}, Channel: ChannelBlue, Threshold: 100}},
		{"equal threshold", PaintConfig{Color: color.RGBA{B: 100, A: 255}, Channel: ChannelBlue, Threshold: 100}},
		{"translucent", PaintConfig{Color: color.RGBA{B: 200, A: 200}, Channel: ChannelBlue, Threshold: 100}},
		{"unknown channel", PaintConfig{Color: color.RGBA{B: 255, A: 255}, Channel: Channel(7), Threshold: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.paint.Validate(); !errors.Is(err, ErrInvalidPaint) {
				t.Errorf("Validate() = %v, want ErrInvalidPaint", err)
			}
		})
	}
}

func TestPaintForeground(t *testing.T) {
	p := DefaultPaint()
	tests := []struct {
		name string
		pix  []uint8
		want bool
	}{
		{"transparent", []uint8{0, 0, 0, 0}, false},
		{"full paint", []uint8{59, 130, 246, 255}, true},
		{"at threshold", []uint8{24, 53, 100, 104}, false},
		{"just above", []uint8{24, 53, 101, 105}, true},
		{"red only", []uint8{255, 0, 0, 255}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Foreground(tt.pix); got != tt.want {
				t.Errorf("Foreground(%v) = %v, want %v", tt.pix, got, tt.want)
			}
		})
	}
}

func TestChannelString(t *testing.T) {
	if ChannelGreen.String() != "green" {
		t.Errorf("ChannelGreen.String() = %q", ChannelGreen.String())
	}
	if Channel(9).String() != "Channel(9)" {
		t.Errorf("Channel(9).String() = %q", Channel(9).String())
	}
}
