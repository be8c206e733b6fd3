package rdisplay

import (
	"fmt"
	"image"
)

// BytesPerPixel is the number of bytes per packed RGB pixel in a PixelBuffer
const BytesPerPixel = 3

// Scope values accepted by Service.Enumerate
const (
	// ScopeCombined asks for one geometry spanning every monitor
	ScopeCombined = -1
	// ScopeEach asks for one geometry per physical monitor
	ScopeEach = 0
)

// Geometry describes the rectangle of a capture target
type Geometry struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GeometryFromRect converts an image.Rectangle into a Geometry
func GeometryFromRect(r image.Rectangle) Geometry {
	return Geometry{
		Left:   r.Min.X,
		Top:    r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// Rect returns the geometry as an image.Rectangle
func (g Geometry) Rect() image.Rectangle {
	return image.Rect(g.Left, g.Top, g.Left+g.Width, g.Top+g.Height)
}

// Valid reports whether the geometry has a positive area
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.Left, g.Top)
}

// Union returns the smallest geometry containing all of the given ones
func Union(geometries []Geometry) Geometry {
	var r image.Rectangle
	for _, g := range geometries {
		r = r.Union(g.Rect())
	}
	return GeometryFromRect(r)
}

// PixelBuffer holds packed RGB bytes, top-to-bottom and left-to-right with no
// row padding, for an image of Width x Height pixels
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPixelBuffer allocates a zeroed buffer for the given size
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// RowLen returns the number of bytes in one row of pixels
func (b PixelBuffer) RowLen() int {
	return b.Width * BytesPerPixel
}

// FromRGBA packs the pixels of an RGBA image into a PixelBuffer, dropping alpha
func FromRGBA(img *image.RGBA) PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	dst := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := img.PixOffset(bounds.Min.X, y)
		for x := 0; x < buf.Width; x++ {
			buf.Pix[dst] = img.Pix[src]
			buf.Pix[dst+1] = img.Pix[src+1]
			buf.Pix[dst+2] = img.Pix[src+2]
			dst += BytesPerPixel
			src += 4
		}
	}
	return buf
}

// RGBA expands the buffer into an opaque RGBA image
func (b PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	src := 0
	for i := 0; i < len(img.Pix) && src+2 < len(b.Pix); i += 4 {
		img.Pix[i] = b.Pix[src]
		img.Pix[i+1] = b.Pix[src+1]
		img.Pix[i+2] = b.Pix[src+2]
		img.Pix[i+3] = 0xff
		src += BytesPerPixel
	}
	return img
}

// Service enumerates monitors and captures their pixels. Implementations are
// not required to be safe for concurrent use
type Service interface {
	// Enumerate returns the geometries for the given scope in the backend's
	// natural, deterministic order. ScopeCombined yields a single geometry
	// bounding all monitors, any other scope yields one geometry per monitor.
	Enumerate(scope int) ([]Geometry, error)
	// Capture grabs the pixels currently shown inside the geometry
	Capture(g Geometry) (PixelBuffer, error)
}
