package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rviscarra/multi-screenshot/internal/capture"
	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

func newTestHandler(t *testing.T, dir string) http.Handler {
	t.Helper()
	display := rdisplay.NewSyntheticService(
		rdisplay.Geometry{Width: 8, Height: 6},
		rdisplay.Geometry{Left: 8, Width: 4, Height: 6},
	)
	orch, err := capture.New(capture.Options{Display: display})
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	return MakeHandler(display, orch, dir, nil)
}

func TestScreens(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/screens", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp screensResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Screens) != 2 || resp.Screens[1].Index != 2 || resp.Screens[1].Left != 8 {
		t.Fatalf("unexpected screens %+v", resp.Screens)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/screens?screen=-1", nil))
	resp = screensResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Screens) != 1 || resp.Screens[0].Width != 12 {
		t.Fatalf("unexpected combined screens %+v", resp.Screens)
	}
}

func TestScreensRejectsBadRequests(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/screens", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/screens?screen=two", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCaptureWritesIntoDir(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)

	body := strings.NewReader(`{"output": "../../etc/mon-%d.png", "screen": 2}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/capture", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp captureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := filepath.Join(dir, "mon-2.png")
	if len(resp.Files) != 1 || resp.Files[0] != want {
		t.Fatalf("files = %v, want [%s]", resp.Files, want)
	}
	if resp.RunID == "" {
		t.Fatalf("missing run id")
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("capture not written: %v", err)
	}
}

func TestCaptureWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "screenshot-1.png"), []byte("old"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := newTestHandler(t, dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/capture", strings.NewReader(`{"overwrite": false}`)))
	var resp captureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Files) != 1 || resp.Files[0] != filepath.Join(dir, "screenshot-2.png") {
		t.Fatalf("files = %v", resp.Files)
	}
}

func TestCaptureReportsErrors(t *testing.T) {
	h := newTestHandler(t, t.TempDir())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/capture", strings.NewReader(`{"screen": 5}`)))
	var resp captureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Files) != 0 || len(resp.Errors) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/capture", strings.NewReader(`not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
