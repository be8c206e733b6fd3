package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rviscarra/multi-screenshot/internal/encoders"
	"github.com/rviscarra/multi-screenshot/internal/logging"
	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

const (
	// Placeholder is replaced by the 1-based monitor number in output patterns
	Placeholder = "%d"
	// DefaultPattern is used when Capture receives an empty pattern
	DefaultPattern = "screenshot-" + Placeholder + ".png"
)

// Options configure an Orchestrator
type Options struct {
	Display rdisplay.Service
	Logger  *slog.Logger
	// Scale is a downscale factor in (0, 1] applied to every capture before
	// encoding. Zero and one keep the native size
	Scale float64
}

// Orchestrator turns monitor captures into PNG files on disk
type Orchestrator struct {
	display rdisplay.Service
	logger  *slog.Logger
	scale   float64
}

// New validates options and returns an orchestrator
func New(opts Options) (*Orchestrator, error) {
	if opts.Display == nil {
		return nil, errors.New("display service is required")
	}
	if opts.Scale < 0 || opts.Scale > 1 {
		return nil, fmt.Errorf("scale must be within [0, 1], got %v", opts.Scale)
	}
	return &Orchestrator{
		display: opts.Display,
		logger:  logging.OrDiscard(opts.Logger),
		scale:   opts.Scale,
	}, nil
}

// Capture returns a lazy iterator producing one PNG file per selected
// monitor. Nothing is enumerated, captured or written until Next is called.
//
// scope is rdisplay.ScopeCombined for a single capture of the whole desktop,
// rdisplay.ScopeEach for one file per monitor, or N > 0 for monitor N only.
// policy is consulted with every candidate path before anything is captured;
// a nil policy accepts all paths.
//
// Asking for monitor N when fewer than N monitors exist yields a single
// *rdisplay.CaptureError for monitor N instead of an empty sequence
func (o *Orchestrator) Capture(pattern string, scope int, policy OverwritePolicy) *Iterator {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if policy == nil {
		policy = AcceptAll
	}
	runID := uuid.NewString()
	return &Iterator{
		o:       o,
		pattern: pattern,
		scope:   scope,
		policy:  policy,
		runID:   runID,
		log:     o.logger.With("run_id", runID, "scope", scope),
	}
}

// OutputPath substitutes the monitor number into pattern. Patterns without
// a placeholder map every monitor to the same path
func OutputPath(pattern string, monitor int) string {
	return strings.ReplaceAll(pattern, Placeholder, strconv.Itoa(monitor))
}

func selected(scope, index int) bool {
	return scope <= 0 || index+1 == scope
}

func (o *Orchestrator) shoot(log *slog.Logger, monitor int, g rdisplay.Geometry, path string) error {
	buf, err := o.display.Capture(g)
	if err != nil {
		return captureError(monitor, err)
	}
	if o.scale > 0 && o.scale < 1 && len(buf.Pix) == buf.RowLen()*buf.Height {
		buf = downscale(buf, o.scale)
	}
	data, err := encoders.Encode(buf)
	if err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	log.Info("screenshot written",
		"monitor", monitor,
		"path", path,
		"width", buf.Width,
		"height", buf.Height,
		"bytes", len(data))
	return nil
}

func captureError(monitor int, err error) error {
	var ce *rdisplay.CaptureError
	if errors.As(err, &ce) {
		if ce.Monitor != 0 {
			return ce
		}
		return &rdisplay.CaptureError{Monitor: monitor, Err: ce.Err}
	}
	return &rdisplay.CaptureError{Monitor: monitor, Err: err}
}
