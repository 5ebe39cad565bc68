package domain

import (
	"context"
	"fmt"
	"log/slog"

	"relint.dev/pkg/relint/internal/adapter"
	m "relint.dev/pkg/relint/internal/model"
)

// ResolveChangedFiles computes the set of files in scope for
// change-relative linting. When mergeBaseWith is non-empty the status
// query is scoped to the nearest common ancestor with that reference;
// otherwise it covers the working copy. The result is recomputed on every
// call and never cached across invocations.
func ResolveChangedFiles(ctx context.Context, vcs adapter.VersionControl, mergeBaseWith string) ([]m.AbsPath, error) {
	relativeTo := ""

	if mergeBaseWith != "" {
		base, err := vcs.MergeBase(ctx, mergeBaseWith)
		if err != nil {
			return nil, fmt.Errorf("failed to get most recent common ancestor with %s: %w", mergeBaseWith, err)
		}

		relativeTo = base
	}

	files, err := vcs.ChangedFiles(ctx, relativeTo)
	if err != nil {
		return nil, err
	}

	slog.Debug("resolved change set", "count", len(files), "relativeTo", relativeTo)

	return files, nil
}
