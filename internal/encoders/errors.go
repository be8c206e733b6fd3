package encoders

import (
	"errors"
	"fmt"

	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

// ErrInvalidBuffer is matched by every EncodingError
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// EncodingError reports a pixel buffer whose geometry is inconsistent with
// its byte length
type EncodingError struct {
	Width  int
	Height int
	Length int
	Reason string
}

func newEncodingError(buf rdisplay.PixelBuffer, reason string) *EncodingError {
	return &EncodingError{
		Width:  buf.Width,
		Height: buf.Height,
		Length: len(buf.Pix),
		Reason: reason,
	}
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %dx%d buffer of %d bytes: %s", e.Width, e.Height, e.Length, e.Reason)
}

// Is lets errors.Is match ErrInvalidBuffer
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidBuffer
}
