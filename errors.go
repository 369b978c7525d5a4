package inpaint

import "errors"

var (
	// ErrNoRegion is returned when a mask is requested before any stroke
	// has touched the paint raster, or when no painted pixel counts as
	// foreground. Callers must block submission instead
	// of sending an all-black mask.
	ErrNoRegion = errors.New("inpaint: no region selected")

	// ErrNoFrame is returned when an operation needs a display frame but
	// the container has not been laid out yet.
	ErrNoFrame = errors.New("inpaint: display frame not laid out")

	// ErrInvalidSize is returned for non-positive image dimensions.
	ErrInvalidSize = errors.New("inpaint: invalid image size")

	// ErrUnsupportedImage is returned when source bytes are not an image
	// format inpaint can decode.
	ErrUnsupportedImage = errors.New("inpaint: unsupported image type")

	// ErrInvalidPaint is returned by PaintConfig.Validate when the paint
	// color would never be classified as foreground.
	ErrInvalidPaint = errors.New("inpaint: paint color does not exceed threshold")

	// ErrEmptyInstructions is returned when an inpaint request carries no
	// edit instructions.
	ErrEmptyInstructions = errors.New("inpaint: empty edit instructions")
)
