package rdisplay

import (
	"errors"
	"testing"
)

func TestSyntheticEnumerateScopes(t *testing.T) {
	svc := NewSyntheticService()

	each, err := svc.Enumerate(ScopeEach)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(each) != 3 {
		t.Fatalf("got %d monitors, want 3", len(each))
	}

	combined, err := svc.Enumerate(ScopeCombined)
	if err != nil {
		t.Fatalf("enumerate combined: %v", err)
	}
	if len(combined) != 1 {
		t.Fatalf("got %d combined geometries, want 1", len(combined))
	}
	for _, m := range each {
		if !m.Rect().In(combined[0].Rect()) {
			t.Fatalf("monitor %v not inside combined %v", m, combined[0])
		}
	}

	second, err := svc.Enumerate(2)
	if err != nil {
		t.Fatalf("enumerate 2: %v", err)
	}
	if len(second) != len(each) || second[1] != each[1] {
		t.Fatalf("scope 2 should list monitors in natural order, got %v", second)
	}
}

func TestSyntheticCaptureIsDeterministic(t *testing.T) {
	svc := NewSyntheticService(Geometry{Left: 10, Top: 20, Width: 3, Height: 2})
	g := Geometry{Left: 10, Top: 20, Width: 3, Height: 2}
	a, err := svc.Capture(g)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	b, _ := svc.Capture(g)
	if string(a.Pix) != string(b.Pix) {
		t.Fatalf("captures differ")
	}
	if len(a.Pix) != 3*2*BytesPerPixel {
		t.Fatalf("len = %d", len(a.Pix))
	}
	if a.Pix[0] != 10 || a.Pix[1] != 20 || a.Pix[2] != 30 {
		t.Fatalf("first pixel = %v", a.Pix[:3])
	}
}

func TestSyntheticCaptureRejectsEmptyGeometry(t *testing.T) {
	_, err := NewSyntheticService().Capture(Geometry{Width: 0, Height: 10})
	var ce *CaptureError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CaptureError, got %v", err)
	}
}
