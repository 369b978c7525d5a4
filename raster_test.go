package inpaint

import (
	"image/color"
	"math"
	"testing"
)

var testPaint = color.RGBA{R: 59, G: 130, B: 246, A: 255}

func TestNewRaster(t *testing.T) {
	r := NewRaster(40, 30)
	if r.Width() != 40 || r.Height() != 30 {
		t.Errorf("expected 40x30, got %dx%d", r.Width(), r.Height())
	}
	if len(r.Data()) != 40*30*4 {
		t.Errorf("data length = %d, want %d", len(r.Data()), 40*30*4)
	}
	if !r.Empty() {
		t.Error("new raster should be empty")
	}
	if c := r.At(5, 5).(color.RGBA); c != (color.RGBA{}) {
		t.Errorf("new raster pixel = %v, want transparent", c)
	}
}

func TestNewRasterNegative(t *testing.T) {
	r := NewRaster(-3, 10)
	if r.Width() != 0 || len(r.Data()) != 0 {
		t.Errorf("negative raster = %dx%d (%d bytes)", r.Width(), r.Height(), len(r.Data()))
	}
	if r.Fill(Disc{Center: Pt(0, 0), Radius: 5}, testPaint) {
		t.Error("fill on empty raster should touch nothing")
	}
}

func TestRasterFillDisc(t *testing.T) {
	r := NewRaster(100, 100)
	if !r.Fill(Disc{Center: Pt(50, 50), Radius: 10}, testPaint) {
		t.Fatal("Fill() reported no coverage")
	}
	if r.Empty() {
		t.Fatal("raster should not be empty after fill")
	}
	if c := r.At(50, 50).(color.RGBA); c != testPaint {
		t.Errorf("center = %v, want %v", c, testPaint)
	}
	if c := r.At(80, 80).(color.RGBA); c.A != 0 {
		t.Errorf("outside = %v, want transparent", c)
	}

	// Covered area tracks the disc area.
	var sum float64
	for i := 3; i < len(r.Data()); i += 4 {
		sum += float64(r.Data()[i]) / 255
	}
	want := math.Pi * 10 * 10
	if math.Abs(sum-want) > want*0.05 {
		t.Errorf("covered area = %.1f, want ~%.1f", sum, want)
	}
}

func TestRasterFillClipped(t *testing.T) {
	r := NewRaster(20, 20)
	if !r.Fill(Disc{Center: Pt(0, 0), Radius: 6}, testPaint) {
		t.Error("disc overlapping the corner should touch pixels")
	}
	if r.Fill(Disc{Center: Pt(-50, -50), Radius: 6}, testPaint) {
		t.Error("disc outside the raster should touch nothing")
	}
}

func TestRasterFillCapsule(t *testing.T) {
	r := NewRaster(100, 40)
	r.Fill(Capsule{A: Pt(10, 20), B: Pt(90, 20), Width: 10}, testPaint)

	for _, x := range []int{10, 30, 50, 70, 89} {
		if c := r.At(x, 20).(color.RGBA); c != testPaint {
			t.Errorf("pixel (%d,20) = %v, want paint", x, c)
		}
	}
	if c := r.At(50, 30).(color.RGBA); c.A != 0 {
		t.Errorf("pixel (50,30) = %v, want transparent", c)
	}
}

func TestRasterRepeatedFillSaturates(t *testing.T) {
	r := NewRaster(30, 30)
	d := Disc{Center: Pt(15, 15), Radius: 8}
	for i := 0; i < 5; i++ {
		r.Fill(d, testPaint)
	}
	if c := r.At(15, 15).(color.RGBA); c != testPaint {
		t.Errorf("center after repeated fill = %v, want %v", c, testPaint)
	}
	// Premultiplied invariant: no channel exceeds alpha.
	data := r.Data()
	for i := 0; i < len(data); i += 4 {
		if data[i] > data[i+3] || data[i+1] > data[i+3] || data[i+2] > data[i+3] {
			t.Fatalf("pixel %d not premultiplied: %v", i/4, data[i:i+4])
		}
	}
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(20, 20)
	r.Fill(Disc{Center: Pt(10, 10), Radius: 5}, testPaint)
	r.Clear()
	if !r.Empty() {
		t.Error("raster should be empty after Clear")
	}
	for i, v := range r.Data() {
		if v != 0 {
			t.Fatalf("byte %d = %d after Clear", i, v)
		}
	}
}

func TestRasterToImage(t *testing.T) {
	r := NewRaster(10, 10)
	r.Fill(Disc{Center: Pt(5, 5), Radius: 3}, testPaint)
	img := r.ToImage()
	if img.Bounds() != r.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), r.Bounds())
	}
	if img.RGBAAt(5, 5) != testPaint {
		t.Errorf("image center = %v, want %v", img.RGBAAt(5, 5), testPaint)
	}
	img.Pix[0] = 99
	if r.Data()[0] == 99 {
		t.Error("ToImage must copy the pixel data")
	}
}
