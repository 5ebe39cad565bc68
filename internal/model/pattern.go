package model

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Pattern is a compiled path glob used for per-linter file filtering.
//
// Dialect: patterns are matched against the whole path with shell-style
// wildcards where `*` and `**` match any sequence of characters including
// path separators, `?` matches a single character, and `[...]` character
// classes are supported. `*.py` therefore matches `a/b/c.py`.
type Pattern struct {
	raw string
	g   glob.Glob
}

// PatternError reports a glob string that failed to compile.
type PatternError struct {
	Raw string
	Err error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("could not parse pattern %q from linter configuration: %v", e.Raw, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// CompilePatterns compiles each pattern string independently. A failure on
// any one string aborts the whole batch with a *PatternError, so a
// linter's filter is either fully usable or entirely rejected before any
// file is evaluated against it.
func CompilePatterns(raws []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(raws))

	for _, raw := range raws {
		g, err := glob.Compile(raw)
		if err != nil {
			return nil, &PatternError{Raw: raw, Err: err}
		}

		patterns = append(patterns, Pattern{raw: raw, g: g})
	}

	return patterns, nil
}

// Match reports whether path satisfies the pattern.
func (p Pattern) Match(path string) bool {
	return p.g.Match(path)
}

func (p Pattern) String() string {
	return p.raw
}
