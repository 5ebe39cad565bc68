package adapter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	m "relint.dev/pkg/relint/internal/model"
)

// VersionControl is the capability interface the selection core uses to
// query a VCS backend. Implementations keep no mutable state beyond the
// repository root discovered at construction, so a single instance may
// serve concurrent callers; every query is one independent subprocess
// invocation followed by a strict parse of its captured output.
type VersionControl interface {
	// Root returns the absolute repository root.
	Root() m.AbsPath

	// CurrentPosition returns an opaque identifier for the currently
	// checked-out revision.
	CurrentPosition(ctx context.Context) (string, error)

	// MergeBase returns the nearest common ancestor revision between the
	// current position and ref. An empty result is an error, never an
	// empty-string success.
	MergeBase(ctx context.Context, ref string) (string, error)

	// ChangedFiles lists files reported as added or modified relative to
	// relativeTo (the working copy when relativeTo is empty). Deleted
	// files are never reported.
	ChangedFiles(ctx context.Context, relativeTo string) ([]m.AbsPath, error)
}

// NotARepositoryError reports a failed repository root discovery.
type NotARepositoryError struct {
	Backend string
	Err     error
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("failed to determine %s repository root: %v", e.Backend, e.Err)
}

func (e *NotARepositoryError) Unwrap() error {
	return e.Err
}

// VCSCommandError reports a VCS subprocess that exited non-zero or
// produced output that could not be decoded.
type VCSCommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *VCSCommandError) Error() string {
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return fmt.Sprintf("vcs command %q failed: %v: %s", e.Command, e.Err, stderr)
	}

	return fmt.Sprintf("vcs command %q failed: %v", e.Command, e.Err)
}

func (e *VCSCommandError) Unwrap() error {
	return e.Err
}

// PathResolutionError reports a status line whose path could not be
// confirmed to exist under the repository root.
type PathResolutionError struct {
	RawLine string
	Err     error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("failed to find file while gathering files to lint: %q: %v", e.RawLine, e.Err)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}

// DetectVersionControl selects the backend once per process by trying
// Sapling root discovery first and falling back to Git.
func DetectVersionControl(ctx context.Context, runner CommandRunner) (VersionControl, error) {
	sapling, saplingErr := NewSaplingVCS(ctx, runner)
	if saplingErr == nil {
		return sapling, nil
	}

	git, gitErr := NewGitVCS(ctx, runner)
	if gitErr == nil {
		return git, nil
	}

	return nil, fmt.Errorf("no supported repository found: %w", errors.Join(saplingErr, gitErr))
}

// statusLinePrefix matches the `<status-code><whitespace>` prefix of a
// line-oriented VCS status entry.
var statusLinePrefix = regexp.MustCompile(`^[A-Z?]+\s+`)

// parseStatusOutput turns raw status output into deduplicated
// repository-relative paths, dropping deletions. Unrecognized status codes
// are kept: over-including a possibly-changed file beats silently dropping
// one. Rename entries of the form `old -> new` keep only the destination.
func parseStatusOutput(raw string) []string {
	seen := make(map[string]struct{})
	files := make([]string, 0)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "D") {
			continue
		}

		rel := statusLinePrefix.ReplaceAllString(line, "")
		if _, destination, found := strings.Cut(rel, " -> "); found {
			rel = destination
		}

		if rel == "" {
			continue
		}

		if _, duplicate := seen[rel]; duplicate {
			continue
		}

		seen[rel] = struct{}{}
		files = append(files, rel)
	}

	sort.Strings(files)

	return files
}

// resolveStatusPaths joins relative status paths with the repository root
// and fails the whole batch on the first path that cannot be confirmed to
// exist.
func resolveStatusPaths(root m.AbsPath, rels []string) ([]m.AbsPath, error) {
	paths := make([]m.AbsPath, 0, len(rels))

	for _, rel := range rels {
		abs, err := root.Join(rel)
		if err != nil {
			return nil, &PathResolutionError{RawLine: rel, Err: err}
		}

		paths = append(paths, abs)
	}

	return paths, nil
}

// decodeOutput enforces the strict UTF-8 contract on captured stdout.
func decodeOutput(command string, out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", &VCSCommandError{Command: command, Err: errors.New("output is not valid UTF-8")}
	}

	return string(out), nil
}

// asVCSCommandError normalizes a runner failure into a VCSCommandError,
// preserving the command line and captured stderr.
func asVCSCommandError(command string, err error) *VCSCommandError {
	var failed *CommandFailedError
	if errors.As(err, &failed) {
		return &VCSCommandError{Command: failed.Command, Stderr: failed.Stderr, Err: failed.Err}
	}

	return &VCSCommandError{Command: command, Err: err}
}
