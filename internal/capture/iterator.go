package capture

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

// Iterator is a single-pass sequence of written files. Each call to Next
// performs the work for at most one monitor; abandoning the iterator stops
// all further captures. An Iterator is not safe for concurrent use
type Iterator struct {
	o       *Orchestrator
	pattern string
	scope   int
	policy  OverwritePolicy
	runID   string
	log     *slog.Logger

	started  bool
	done     bool
	monitors []rdisplay.Geometry
	next     int

	path string
	err  error
}

// Next advances to the next selected monitor that the overwrite policy
// accepts, capturing and writing it. It returns false once every monitor
// has been handled. Failures do not end the sequence; they are reported by
// Err for the item that failed
func (it *Iterator) Next() bool {
	it.path, it.err = "", nil
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if !it.enumerate() {
			it.done = true
			return true
		}
	}
	for it.next < len(it.monitors) {
		i := it.next
		it.next++
		if !selected(it.scope, i) {
			continue
		}
		monitor := i + 1
		path := OutputPath(it.pattern, monitor)
		if !it.policy(path) {
			it.log.Info("overwrite declined, skipping monitor", "monitor", monitor, "path", path)
			continue
		}
		it.path = path
		it.err = it.o.shoot(it.log, monitor, it.monitors[i], path)
		if it.err != nil {
			it.log.Warn("screenshot failed", "monitor", monitor, "path", path, "error", it.err)
		}
		return true
	}
	it.done = true
	it.monitors = nil
	return false
}

func (it *Iterator) enumerate() bool {
	monitors, err := it.o.display.Enumerate(it.scope)
	if err != nil {
		it.err = captureError(0, err)
		it.log.Warn("enumerate monitors failed", "error", it.err)
		return false
	}
	if it.scope > len(monitors) {
		it.err = &rdisplay.CaptureError{
			Monitor: it.scope,
			Err:     fmt.Errorf("monitor not found, %d available", len(monitors)),
		}
		it.log.Warn("enumerate monitors failed", "error", it.err)
		return false
	}
	it.log.Debug("monitors enumerated", "count", len(monitors))
	it.monitors = monitors
	return true
}

// Path returns the file produced by the last call to Next. It is set even
// when Err is non-nil, naming the file that could not be produced
func (it *Iterator) Path() string {
	return it.path
}

// Err returns the failure for the item produced by the last call to Next
func (it *Iterator) Err() error {
	return it.err
}

// RunID identifies this capture run in logs
func (it *Iterator) RunID() string {
	return it.runID
}

// Seq adapts the iterator for range-over-func loops. Breaking out of the
// loop stops the capture
func (it *Iterator) Seq() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for it.Next() {
			if !yield(it.path, it.err) {
				return
			}
		}
	}
}
