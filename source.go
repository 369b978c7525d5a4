package inpaint

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/inpaint/internal/dataurl"
)

// supportedImageTypes lists the MIME types DecodeSource accepts.
var supportedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// SourceImage is the image a mask is painted over. Only its native
// dimensions matter to masking; the pixels are kept for preview rendering.
type SourceImage struct {
	img    image.Image
	width  int
	height int
	mime   string
}

// NewSourceImage wraps a decoded image.
func NewSourceImage(img image.Image) (*SourceImage, error) {
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}
	return &SourceImage{img: img, width: size.X, height: size.Y}, nil
}

// NewSourceSize returns a pixel-less source of the given native size.
// It is enough for masking and export; Render draws it as black.
func NewSourceSize(width, height int) *SourceImage {
	return &SourceImage{width: width, height: height}
}

// DecodeSource decodes an image from raw bytes or from a base64 data URL.
// The payload is sniffed first and anything other than PNG, JPEG, GIF,
// WebP or BMP is rejected with ErrUnsupportedImage.
func DecodeSource(data []byte) (*SourceImage, error) {
	if dataurl.Is(string(data[:min(len(data), 5)])) {
		_, payload, err := dataurl.Decode(string(data))
		if err != nil {
			return nil, fmt.Errorf("inpaint: decode source: %w", err)
		}
		data = payload
	}

	kind, err := filetype.Match(data)
	if err != nil || !supportedImageTypes[kind.MIME.Value] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, kind.MIME.Value)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("inpaint: decode source: %w", err)
	}
	src, err := NewSourceImage(img)
	if err != nil {
		return nil, err
	}
	src.mime = kind.MIME.Value
	return src, nil
}

// LoadSource reads and decodes an image file.
func LoadSource(path string) (*SourceImage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return DecodeSource(data)
}

// Width returns the native width.
func (s *SourceImage) Width() int { return s.width }

// Height returns the native height.
func (s *SourceImage) Height() int { return s.height }

// Image returns the decoded pixels, or nil for a size-only source.
func (s *SourceImage) Image() image.Image { return s.img }

// MIME returns the sniffed media type, empty when not decoded from bytes.
func (s *SourceImage) MIME() string { return s.mime }
