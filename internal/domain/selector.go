package domain

import (
	"log/slog"

	m "relint.dev/pkg/relint/internal/model"
)

// SelectLinters applies the user's take and skip name filters to the
// configured linters. Take runs first, then skip, so a name present in
// both sets ends up excluded. Configuration order is preserved. A nil set
// means the corresponding filter was not supplied.
//
// Unknown names are ignored on purpose: scripts often reference linters
// that only exist in some configuration variants, and those invocations
// should not hard-fail.
func SelectLinters(all []m.Linter, skip, take map[string]struct{}) []m.Linter {
	selected := all

	if take != nil {
		slog.Debug("taking linters", "names", setNames(take))

		kept := make([]m.Linter, 0, len(selected))
		for _, linter := range selected {
			if _, ok := take[linter.Name]; ok {
				kept = append(kept, linter)
			}
		}

		selected = kept
	}

	if skip != nil {
		slog.Debug("skipping linters", "names", setNames(skip))

		kept := make([]m.Linter, 0, len(selected))
		for _, linter := range selected {
			if _, ok := skip[linter.Name]; !ok {
				kept = append(kept, linter)
			}
		}

		selected = kept
	}

	return selected
}

// MatchedFiles returns the subset of files in scope for the linter,
// preserving input order.
func MatchedFiles(linter m.Linter, files []m.AbsPath) []m.AbsPath {
	matched := make([]m.AbsPath, 0, len(files))

	for _, file := range files {
		if linter.IsMatch(file.String()) {
			matched = append(matched, file)
		}
	}

	return matched
}

func setNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	return names
}
