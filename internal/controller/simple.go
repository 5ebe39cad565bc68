package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "relint.dev/pkg/relint/internal/model"
)

// SimpleUI implements UI using the cobra command's Printf.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewUI creates a plain-text UI bound to cmd.
func NewUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySelection prints the linter selection as a table.
func (s *SimpleUI) DisplaySelection(linters []m.Linter) {
	s.printf("%s", renderSelectionTable(linters, nil))
}

// DisplayPlan prints the selection with per-linter in-scope file counts.
func (s *SimpleUI) DisplayPlan(linters []m.Linter, files []m.AbsPath) {
	counts := make(map[string]int, len(linters))

	for _, linter := range linters {
		for _, file := range files {
			if linter.IsMatch(file.String()) {
				counts[linter.Name]++
			}
		}
	}

	s.printf("%s", renderSelectionTable(linters, counts))
	s.printf("Changed files in scope: %d\n", len(files))
}

// DisplayFiles prints one path per line.
func (s *SimpleUI) DisplayFiles(files []m.AbsPath) {
	for _, file := range files {
		s.printf("%s\n", file)
	}
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}

func renderSelectionTable(linters []m.Linter, counts map[string]int) string {
	var tableBuffer bytes.Buffer

	header := []string{"Linter", "Includes", "Excludes", "Bypass"}
	if counts != nil {
		header = append(header, "Files")
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, linter := range linters {
		row := []string{
			linter.Name,
			joinPatterns(linter.IncludePatterns),
			joinPatterns(linter.ExcludePatterns),
			fmt.Sprintf("%t", linter.BypassMatchedFileFilter),
		}
		if counts != nil {
			row = append(row, fmt.Sprintf("%d", counts[linter.Name]))
		}

		table.Append(row)
	}

	table.Render()

	return tableBuffer.String()
}

func joinPatterns(patterns []m.Pattern) string {
	raws := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		raws = append(raws, pattern.String())
	}

	return strings.Join(raws, ", ")
}
