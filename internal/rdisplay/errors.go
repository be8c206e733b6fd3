package rdisplay

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPlatform is matched by every UnsupportedPlatformError
	ErrUnsupportedPlatform = errors.New("platform not supported")
	// ErrNoDisplays is returned when a backend finds nothing to capture
	ErrNoDisplays = errors.New("no active displays found")
)

// UnsupportedPlatformError is returned by NewService when no backend is
// registered under the requested platform name
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("system %q not implemented", e.Platform)
}

// Is lets errors.Is match ErrUnsupportedPlatform
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// CaptureError reports a failed enumeration or pixel grab. Monitor is the
// 1-based monitor number, or 0 when the failure is not tied to one monitor
type CaptureError struct {
	Monitor int
	Err     error
}

func (e *CaptureError) Error() string {
	if e.Monitor == 0 {
		return fmt.Sprintf("capture: %v", e.Err)
	}
	return fmt.Sprintf("capture monitor %d: %v", e.Monitor, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}
