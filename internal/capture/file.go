package capture

import "os"

// writeFile writes data to path, closing the file on every exit; a partial
// file is removed on failure
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
