package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "relint.dev/pkg/relint/internal/model"
)

func namedLinters(names ...string) []m.Linter {
	linters := make([]m.Linter, 0, len(names))
	for _, name := range names {
		linters = append(linters, m.Linter{Name: name})
	}

	return linters
}

func nameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

func TestSelectLinters(t *testing.T) {
	all := namedLinters("FLAKE8", "RUSTFMT", "CLANGFORMAT")

	t.Run("no filters keeps everything in order", func(t *testing.T) {
		selected := SelectLinters(all, nil, nil)
		assert.Equal(t, []string{"FLAKE8", "RUSTFMT", "CLANGFORMAT"}, LinterNames(selected))
	})

	t.Run("skip removes exactly the named linter", func(t *testing.T) {
		selected := SelectLinters(all, nameSet("RUSTFMT"), nil)
		assert.Equal(t, []string{"FLAKE8", "CLANGFORMAT"}, LinterNames(selected))
	})

	t.Run("take keeps exactly the named linters in config order", func(t *testing.T) {
		selected := SelectLinters(all, nil, nameSet("CLANGFORMAT", "FLAKE8"))
		assert.Equal(t, []string{"FLAKE8", "CLANGFORMAT"}, LinterNames(selected))
	})

	t.Run("take of an absent name yields an empty selection", func(t *testing.T) {
		selected := SelectLinters(all, nil, nameSet("NOSUCH"))
		assert.Empty(t, selected)
	})

	t.Run("take then skip: a name in both sets is excluded", func(t *testing.T) {
		selected := SelectLinters(all, nameSet("RUSTFMT"), nameSet("RUSTFMT"))
		assert.Empty(t, selected)
	})

	t.Run("unknown skip names are silently ignored", func(t *testing.T) {
		selected := SelectLinters(all, nameSet("NOSUCH"), nil)
		assert.Equal(t, []string{"FLAKE8", "RUSTFMT", "CLANGFORMAT"}, LinterNames(selected))
	})

	t.Run("empty non-nil take set selects nothing", func(t *testing.T) {
		selected := SelectLinters(all, nil, nameSet())
		assert.Empty(t, selected)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		_ = SelectLinters(all, nameSet("FLAKE8"), nil)
		assert.Equal(t, []string{"FLAKE8", "RUSTFMT", "CLANGFORMAT"}, LinterNames(all))
	})
}

func TestMatchedFiles(t *testing.T) {
	include, err := m.CompilePatterns([]string{"*.py"})
	require.NoError(t, err)

	linter := m.Linter{Name: "FLAKE8", IncludePatterns: include}

	files := []m.AbsPath{"/repo/a.py", "/repo/b.txt", "/repo/sub/c.py"}

	t.Run("filters by the linter predicate", func(t *testing.T) {
		matched := MatchedFiles(linter, files)
		assert.Equal(t, []m.AbsPath{"/repo/a.py", "/repo/sub/c.py"}, matched)
	})

	t.Run("bypass keeps every file", func(t *testing.T) {
		bypass := m.Linter{Name: "HEADER", BypassMatchedFileFilter: true}
		assert.Equal(t, files, MatchedFiles(bypass, files))
	})
}
