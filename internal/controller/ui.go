// Package controller provides output adapters for displaying lint
// selection results.
package controller

import (
	m "relint.dev/pkg/relint/internal/model"
)

// UI defines the interface for displaying selection results.
// Implementations write through the owning cobra command's output stream
// so tests can capture what users see.
type UI interface {
	// DisplaySelection renders the post-filter linter selection.
	DisplaySelection(linters []m.Linter)

	// DisplayPlan renders the selection together with the number of
	// in-scope changed files per linter.
	DisplayPlan(linters []m.Linter, files []m.AbsPath)

	// DisplayFiles prints resolved changed files, one per line.
	DisplayFiles(files []m.AbsPath)
}
