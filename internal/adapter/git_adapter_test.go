package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGit(t *testing.T, root string) (*GitVCS, *fakeRunner) {
	t.Helper()

	runner := newFakeRunner()
	runner.respond("git rev-parse --show-toplevel", root+"\n")

	vcs, err := NewGitVCS(context.Background(), runner)
	require.NoError(t, err)

	return vcs, runner
}

func TestNewGitVCS(t *testing.T) {
	t.Run("discovers the repository root", func(t *testing.T) {
		root := newTestRepo(t)
		vcs, _ := newTestGit(t, root)
		assert.Equal(t, root, vcs.Root().String())
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		runner := newFakeRunner()
		runner.fail("git rev-parse --show-toplevel", "fatal: not a git repository")

		_, err := NewGitVCS(context.Background(), runner)

		var notRepo *NotARepositoryError
		require.True(t, errors.As(err, &notRepo))
		assert.Equal(t, "git", notRepo.Backend)
	})
}

func TestGitRevisionQueries(t *testing.T) {
	root := newTestRepo(t)
	vcs, runner := newTestGit(t, root)

	t.Run("current position is HEAD", func(t *testing.T) {
		runner.respond("git rev-parse HEAD", "feedface\n")

		position, err := vcs.CurrentPosition(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "feedface", position)
	})

	t.Run("merge base against a reference", func(t *testing.T) {
		runner.respond("git merge-base HEAD origin/main", "c0ffee00\n")

		base, err := vcs.MergeBase(context.Background(), "origin/main")
		require.NoError(t, err)
		assert.Equal(t, "c0ffee00", base)
	})

	t.Run("empty merge base output is an error", func(t *testing.T) {
		runner.respond("git merge-base HEAD origin/main", "")

		_, err := vcs.MergeBase(context.Background(), "origin/main")

		var cmdErr *VCSCommandError
		assert.True(t, errors.As(err, &cmdErr))
	})
}

func TestGitChangedFiles(t *testing.T) {
	root := newTestRepo(t)

	t.Run("porcelain status without a baseline", func(t *testing.T) {
		vcs, runner := newTestGit(t, root)
		runner.respond("git status --porcelain", " M src/a.rs\nD  src/old.rs\n?? src/new.rs\n")

		files, err := vcs.ChangedFiles(context.Background(), "")
		require.NoError(t, err)

		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, f.String())
		}

		assert.ElementsMatch(t, []string{
			filepath.Join(root, "src", "a.rs"),
			filepath.Join(root, "src", "new.rs"),
		}, paths)
	})

	t.Run("name-status diff against a baseline", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "src", "b.rs"), []byte("x"), 0o600))

		vcs, runner := newTestGit(t, root)
		runner.respond("git diff --name-status --no-renames c0ffee00", "M\tsrc/a.rs\nA\tsrc/b.rs\nD\tsrc/old.rs\n")

		files, err := vcs.ChangedFiles(context.Background(), "c0ffee00")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})
}
