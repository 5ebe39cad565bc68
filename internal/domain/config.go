// Package domain implements the lint selection pipeline: loading and
// validating linter definitions, applying name filters, and resolving the
// change set the linters should consider.
package domain

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	m "relint.dev/pkg/relint/internal/model"
)

// DryRunPlaceholder is the literal token an init command must carry so
// the init runner can substitute a dry-run value before execution.
const DryRunPlaceholder = "{{DRYRUN}}"

// ConfigNotFoundError reports a definition file that is missing or
// unreadable.
type ConfigNotFoundError struct {
	Path string
	Err  error
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("failed to read config file %q: %v", e.Path, e.Err)
}

func (e *ConfigNotFoundError) Unwrap() error {
	return e.Err
}

// SchemaError reports structurally invalid definition file content.
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config file %q had invalid schema: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// MissingDryRunPlaceholderError reports a linter that declares init
// commands without a {{DRYRUN}} token. A linter that cannot be dry-run
// cannot be safely previewed during init, so this is a load-time error.
type MissingDryRunPlaceholderError struct {
	LinterName string
}

func (e *MissingDryRunPlaceholderError) Error() string {
	return fmt.Sprintf(
		"config for linter %s defines init args but does not take a %s argument",
		e.LinterName, DryRunPlaceholder,
	)
}

// linterConfigFile mirrors the on-disk schema: an ordered list of linter
// records under the top-level `linter` key.
type linterConfigFile struct {
	Linters []linterRecord `toml:"linter"`
}

type linterRecord struct {
	Name                    string   `toml:"name"`
	IncludePatterns         []string `toml:"include_patterns"`
	ExcludePatterns         []string `toml:"exclude_patterns"`
	Args                    []string `toml:"args"`
	InitArgs                []string `toml:"init_args"`
	BypassMatchedFileFilter bool     `toml:"bypass_matched_file_filter"`
}

// LoadConfig parses the linter definition file at path into validated
// Linter values, preserving file order. It is a pure function of the file
// contents; parsing, validation, and pattern compilation all happen here
// so a broken configuration never reaches execution.
func LoadConfig(path m.AbsPath) ([]m.Linter, error) {
	raw, err := os.ReadFile(path.String())
	if err != nil {
		return nil, &ConfigNotFoundError{Path: path.String(), Err: err}
	}

	var file linterConfigFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, &SchemaError{Path: path.String(), Err: err}
	}

	linters := make([]m.Linter, 0, len(file.Linters))

	for _, record := range file.Linters {
		if err := validateRecord(path, record); err != nil {
			return nil, err
		}

		includePatterns, err := m.CompilePatterns(record.IncludePatterns)
		if err != nil {
			return nil, err
		}

		excludePatterns, err := m.CompilePatterns(record.ExcludePatterns)
		if err != nil {
			return nil, err
		}

		linters = append(linters, m.Linter{
			Name:                    record.Name,
			IncludePatterns:         includePatterns,
			ExcludePatterns:         excludePatterns,
			Commands:                record.Args,
			InitCommands:            record.InitArgs,
			ConfigPath:              path,
			BypassMatchedFileFilter: record.BypassMatchedFileFilter,
		})
	}

	slog.Debug("loaded linter definitions", "path", path, "linters", LinterNames(linters))

	return linters, nil
}

func validateRecord(path m.AbsPath, record linterRecord) error {
	switch {
	case record.Name == "":
		return &SchemaError{Path: path.String(), Err: fmt.Errorf("linter record is missing a name")}
	case len(record.IncludePatterns) == 0:
		return &SchemaError{Path: path.String(), Err: fmt.Errorf("linter %s has no include_patterns", record.Name)}
	case len(record.Args) == 0:
		return &SchemaError{Path: path.String(), Err: fmt.Errorf("linter %s has no args", record.Name)}
	}

	if record.InitArgs == nil {
		return nil
	}

	for _, arg := range record.InitArgs {
		if strings.Contains(arg, DryRunPlaceholder) {
			return nil
		}
	}

	return &MissingDryRunPlaceholderError{LinterName: record.Name}
}

// LinterNames returns the names of linters in order.
func LinterNames(linters []m.Linter) []string {
	names := make([]string, 0, len(linters))
	for _, linter := range linters {
		names = append(names, linter.Name)
	}

	return names
}
