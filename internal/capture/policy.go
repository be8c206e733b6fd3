package capture

import "os"

// OverwritePolicy decides whether a candidate output path may be produced.
// Returning false skips the monitor without capturing it
type OverwritePolicy func(path string) bool

// AcceptAll is the default policy
func AcceptAll(string) bool {
	return true
}

// SkipExisting declines paths that already exist. Any other stat failure
// accepts the path so that the write reports it
func SkipExisting(path string) bool {
	_, err := os.Stat(path)
	return err != nil
}
