package model

// Linter describes one configured lint check. Values are built once from
// the definition file at startup and are read-only afterwards.
type Linter struct {
	Name            string
	IncludePatterns []Pattern
	ExcludePatterns []Pattern

	// Commands is the argv used to invoke the check itself; opaque to the
	// selection core.
	Commands []string

	// InitCommands is the optional argv for one-time setup. When present
	// it carries a {{DRYRUN}} placeholder, enforced at load time.
	InitCommands []string

	ConfigPath AbsPath

	// BypassMatchedFileFilter makes the linter run regardless of which
	// files matched its patterns.
	BypassMatchedFileFilter bool
}

// IsMatch reports whether path is in scope for the linter: bypass, or at
// least one include pattern matches and no exclude pattern does.
func (l Linter) IsMatch(path string) bool {
	if l.BypassMatchedFileFilter {
		return true
	}

	included := false

	for _, pattern := range l.IncludePatterns {
		if pattern.Match(path) {
			included = true
			break
		}
	}

	if !included {
		return false
	}

	for _, pattern := range l.ExcludePatterns {
		if pattern.Match(path) {
			return false
		}
	}

	return true
}
