package rdisplay

import "fmt"

// SyntheticPlatform is the registry name of the synthetic backend
const SyntheticPlatform = "synthetic"

var defaultSyntheticMonitors = []Geometry{
	{Left: 0, Top: 0, Width: 640, Height: 400},
	{Left: 640, Top: 0, Width: 640, Height: 400},
	{Left: 1280, Top: 0, Width: 320, Height: 200},
}

// SyntheticService paints a deterministic gradient for a fixed monitor
// layout. It needs no display server
type SyntheticService struct {
	monitors []Geometry
}

// NewSyntheticService returns a backend reporting the given monitors, or a
// three monitor layout when none are given
func NewSyntheticService(monitors ...Geometry) *SyntheticService {
	if len(monitors) == 0 {
		monitors = defaultSyntheticMonitors
	}
	layout := make([]Geometry, len(monitors))
	copy(layout, monitors)
	return &SyntheticService{monitors: layout}
}

// Enumerate implements Service
func (s *SyntheticService) Enumerate(scope int) ([]Geometry, error) {
	if len(s.monitors) == 0 {
		return nil, &CaptureError{Err: ErrNoDisplays}
	}
	if scope == ScopeCombined {
		return []Geometry{Union(s.monitors)}, nil
	}
	out := make([]Geometry, len(s.monitors))
	copy(out, s.monitors)
	return out, nil
}

// Capture implements Service. The color of a pixel depends only on its
// absolute desktop position
func (s *SyntheticService) Capture(g Geometry) (PixelBuffer, error) {
	if !g.Valid() {
		return PixelBuffer{}, &CaptureError{Err: fmt.Errorf("invalid geometry %v", g)}
	}
	buf := NewPixelBuffer(g.Width, g.Height)
	i := 0
	for y := 0; y < g.Height; y++ {
		ay := g.Top + y
		for x := 0; x < g.Width; x++ {
			ax := g.Left + x
			buf.Pix[i] = uint8(ax)
			buf.Pix[i+1] = uint8(ay)
			buf.Pix[i+2] = uint8(ax + ay)
			i += BytesPerPixel
		}
	}
	return buf, nil
}

func init() {
	register(func() (Service, error) {
		return NewSyntheticService(), nil
	}, SyntheticPlatform)
}
