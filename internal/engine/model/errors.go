package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// LoadError is returned when the geometry file cannot be read or parsed.
// Loading is all-or-nothing: no partial model accompanies it.
type LoadError struct {
	Path   string
	Reason string // "read" or "parse"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(path string, err error) *LoadError {
	reason := "parse"
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		reason = "read"
	}
	return &LoadError{Path: path, Reason: reason, Err: err}
}
