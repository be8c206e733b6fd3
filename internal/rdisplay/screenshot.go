//go:build linux || darwin || windows || freebsd || openbsd || netbsd

package rdisplay

import (
	"fmt"
	"image"
	"runtime"

	"github.com/kbinani/screenshot"
)

// XService implements rdisplay.Service on top of the native screen APIs
// wrapped by kbinani/screenshot (X11, CoreGraphics, GDI)
type XService struct {
	numDisplays  func() int
	displayBound func(int) image.Rectangle
	captureRect  func(image.Rectangle) (*image.RGBA, error)
}

func newXService() (Service, error) {
	return &XService{
		numDisplays:  screenshot.NumActiveDisplays,
		displayBound: screenshot.GetDisplayBounds,
		captureRect:  screenshot.CaptureRect,
	}, nil
}

// Enumerate returns the bounds of the active displays in the order the
// platform reports them
func (x *XService) Enumerate(scope int) ([]Geometry, error) {
	n := x.numDisplays()
	if n <= 0 {
		return nil, &CaptureError{Err: ErrNoDisplays}
	}
	monitors := make([]Geometry, n)
	for i := 0; i < n; i++ {
		monitors[i] = GeometryFromRect(x.displayBound(i))
	}
	if scope == ScopeCombined {
		return []Geometry{Union(monitors)}, nil
	}
	return monitors, nil
}

// Capture grabs the rectangle described by g and packs it as RGB
func (x *XService) Capture(g Geometry) (PixelBuffer, error) {
	if !g.Valid() {
		return PixelBuffer{}, &CaptureError{Err: fmt.Errorf("invalid geometry %v", g)}
	}
	img, err := x.captureRect(g.Rect())
	if err != nil {
		return PixelBuffer{}, &CaptureError{Err: err}
	}
	return FromRGBA(img), nil
}

func init() {
	register(newXService, runtime.GOOS)
}
