// Package model defines the data structures for lint selection.
package model

import (
	"fmt"
	"os"
	"path/filepath"
)

// AbsPath is a filesystem path that is guaranteed to be absolute and to
// exist at construction time. Every file reference crossing the selection
// core uses this type, so callers never have to guess which working
// directory a relative path was meant against.
type AbsPath string

// NewAbsPath resolves raw against the process working directory and
// verifies that the result exists on disk.
func NewAbsPath(raw string) (AbsPath, error) {
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q to an absolute path: %w", raw, err)
	}

	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("path %q does not exist: %w", abs, err)
	}

	return AbsPath(abs), nil
}

// Join appends rel to the path and re-validates the result, so joined
// paths keep the existence guarantee.
func (p AbsPath) Join(rel string) (AbsPath, error) {
	return NewAbsPath(filepath.Join(string(p), rel))
}

func (p AbsPath) String() string {
	return string(p)
}
