package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	m "relint.dev/pkg/relint/internal/model"
)

const saplingBinary = "sl"

// SaplingVCS answers version-control queries by shelling out to the `sl`
// binary. Status output has the shape `<status-code><whitespace><path>`,
// one entry per line:
//
//	D    src/lib.rs
//	M    foo/bar.baz
type SaplingVCS struct {
	runner CommandRunner
	root   m.AbsPath
}

// NewSaplingVCS discovers the repository root from the current working
// directory and returns a handle scoped to it.
func NewSaplingVCS(ctx context.Context, runner CommandRunner) (*SaplingVCS, error) {
	out, err := runner.Run(ctx, "", saplingBinary, "root")
	if err != nil {
		return nil, &NotARepositoryError{Backend: "sapling", Err: err}
	}

	rootStr, err := decodeOutput(saplingBinary+" root", out)
	if err != nil {
		return nil, &NotARepositoryError{Backend: "sapling", Err: err}
	}

	root, err := m.NewAbsPath(strings.TrimSpace(rootStr))
	if err != nil {
		return nil, &NotARepositoryError{Backend: "sapling", Err: err}
	}

	return &SaplingVCS{runner: runner, root: root}, nil
}

// Root returns the absolute repository root.
func (s *SaplingVCS) Root() m.AbsPath {
	return s.root
}

// CurrentPosition returns the identifier of the checked-out revision.
func (s *SaplingVCS) CurrentPosition(ctx context.Context) (string, error) {
	return s.runRevisionQuery(ctx, "whereami")
}

// MergeBase returns the nearest common ancestor between the current
// position and ref.
func (s *SaplingVCS) MergeBase(ctx context.Context, ref string) (string, error) {
	return s.runRevisionQuery(ctx, "log", fmt.Sprintf("--rev=ancestor(., %s)", ref), "--template={node}")
}

// ChangedFiles lists added or modified files, optionally relative to a
// baseline revision.
func (s *SaplingVCS) ChangedFiles(ctx context.Context, relativeTo string) ([]m.AbsPath, error) {
	args := []string{"status"}
	if relativeTo != "" {
		args = append(args, "--rev="+relativeTo)
	}

	out, err := s.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	files := parseStatusOutput(out)
	slog.Debug("sapling reported changed files", "count", len(files), "relativeTo", relativeTo)

	return resolveStatusPaths(s.root, files)
}

// runRevisionQuery runs a query whose trimmed stdout must be a non-empty
// revision identifier.
func (s *SaplingVCS) runRevisionQuery(ctx context.Context, args ...string) (string, error) {
	out, err := s.run(ctx, args...)
	if err != nil {
		return "", err
	}

	revision := strings.TrimSpace(out)
	if revision == "" {
		return "", &VCSCommandError{
			Command: renderCommand(saplingBinary, args),
			Err:     fmt.Errorf("expected a revision identifier, got empty output"),
		}
	}

	return revision, nil
}

func (s *SaplingVCS) run(ctx context.Context, args ...string) (string, error) {
	command := renderCommand(saplingBinary, args)

	out, err := s.runner.Run(ctx, string(s.root), saplingBinary, args...)
	if err != nil {
		return "", asVCSCommandError(command, err)
	}

	return decodeOutput(command, out)
}
