package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	m "relint.dev/pkg/relint/internal/model"
)

const gitBinary = "git"

// GitVCS answers version-control queries by shelling out to the `git`
// binary, mirroring the Sapling adapter command for command.
type GitVCS struct {
	runner CommandRunner
	root   m.AbsPath
}

// NewGitVCS discovers the repository root from the current working
// directory and returns a handle scoped to it.
func NewGitVCS(ctx context.Context, runner CommandRunner) (*GitVCS, error) {
	out, err := runner.Run(ctx, "", gitBinary, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, &NotARepositoryError{Backend: "git", Err: err}
	}

	rootStr, err := decodeOutput(gitBinary+" rev-parse --show-toplevel", out)
	if err != nil {
		return nil, &NotARepositoryError{Backend: "git", Err: err}
	}

	root, err := m.NewAbsPath(strings.TrimSpace(rootStr))
	if err != nil {
		return nil, &NotARepositoryError{Backend: "git", Err: err}
	}

	return &GitVCS{runner: runner, root: root}, nil
}

// Root returns the absolute repository root.
func (g *GitVCS) Root() m.AbsPath {
	return g.root
}

// CurrentPosition returns the identifier of the checked-out revision.
func (g *GitVCS) CurrentPosition(ctx context.Context) (string, error) {
	return g.runRevisionQuery(ctx, "rev-parse", "HEAD")
}

// MergeBase returns the nearest common ancestor between HEAD and ref.
func (g *GitVCS) MergeBase(ctx context.Context, ref string) (string, error) {
	return g.runRevisionQuery(ctx, "merge-base", "HEAD", ref)
}

// ChangedFiles lists added or modified files. Without a baseline it reads
// `git status --porcelain` (which includes untracked files); with one it
// diffs against the given revision. Renames are disabled on the diff so
// every entry is a plain one-letter status.
func (g *GitVCS) ChangedFiles(ctx context.Context, relativeTo string) ([]m.AbsPath, error) {
	args := []string{"status", "--porcelain"}
	if relativeTo != "" {
		args = []string{"diff", "--name-status", "--no-renames", relativeTo}
	}

	out, err := g.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	files := parseStatusOutput(out)
	slog.Debug("git reported changed files", "count", len(files), "relativeTo", relativeTo)

	return resolveStatusPaths(g.root, files)
}

func (g *GitVCS) runRevisionQuery(ctx context.Context, args ...string) (string, error) {
	out, err := g.run(ctx, args...)
	if err != nil {
		return "", err
	}

	revision := strings.TrimSpace(out)
	if revision == "" {
		return "", &VCSCommandError{
			Command: renderCommand(gitBinary, args),
			Err:     fmt.Errorf("expected a revision identifier, got empty output"),
		}
	}

	return revision, nil
}

func (g *GitVCS) run(ctx context.Context, args ...string) (string, error) {
	command := renderCommand(gitBinary, args)

	out, err := g.runner.Run(ctx, string(g.root), gitBinary, args...)
	if err != nil {
		return "", asVCSCommandError(command, err)
	}

	return decodeOutput(command, out)
}
