package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/rviscarra/multi-screenshot/internal/capture"
	"github.com/rviscarra/multi-screenshot/internal/logging"
	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

func handleError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("request failed", "status", status, "error", err)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		handleError(w, logger, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// MakeHandler returns an HTTP handler listing screens and writing captures
// into dir. Output patterns sent by clients are reduced to their base name.
// Requests reaching the display backend are served one at a time
func MakeHandler(display rdisplay.Service, orch *capture.Orchestrator, dir string, logger *slog.Logger) http.Handler {
	logger = logging.OrDiscard(logger)
	var mu sync.Mutex
	serialized := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
	mux := http.NewServeMux()

	mux.HandleFunc("/screens", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		scope := rdisplay.ScopeEach
		if s := r.URL.Query().Get("screen"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				handleError(w, logger, http.StatusBadRequest, err)
				return
			}
			scope = n
		}

		var screens []rdisplay.Geometry
		var err error
		serialized(func() {
			screens, err = display.Enumerate(scope)
		})
		if err != nil {
			handleError(w, logger, http.StatusInternalServerError, err)
			return
		}

		screensPayload := make([]screenPayload, len(screens))
		for i, s := range screens {
			screensPayload[i] = screenPayload{
				Index:  i + 1,
				Left:   s.Left,
				Top:    s.Top,
				Width:  s.Width,
				Height: s.Height,
			}
		}
		writeJSON(w, logger, screensResponse{Screens: screensPayload})
	})

	mux.HandleFunc("/capture", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		req := captureRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, logger, http.StatusBadRequest, err)
			return
		}

		output := capture.DefaultPattern
		if req.Output != "" {
			output = filepath.Base(req.Output)
		}
		var policy capture.OverwritePolicy = capture.AcceptAll
		if req.Overwrite != nil && !*req.Overwrite {
			policy = capture.SkipExisting
		}

		it := orch.Capture(filepath.Join(dir, output), req.Screen, policy)
		resp := captureResponse{RunID: it.RunID(), Files: []string{}}
		serialized(func() {
			for path, err := range it.Seq() {
				if err != nil {
					resp.Errors = append(resp.Errors, captureFailure{Path: path, Error: err.Error()})
					continue
				}
				resp.Files = append(resp.Files, path)
			}
		})
		writeJSON(w, logger, resp)
	})
	return mux
}
