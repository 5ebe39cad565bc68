package cmd

import (
	"github.com/spf13/cobra"

	"relint.dev/pkg/relint/internal/adapter"
	"relint.dev/pkg/relint/internal/controller"
	"relint.dev/pkg/relint/internal/domain"
)

var listChangedOnlyFlag bool
var listMergeBaseWithFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show which linters would run",
		Long: `Show the linter selection after applying --take and --skip.

With --changed-only the table also shows how many files changed relative to
the version-control baseline fall in each linter's scope.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewUI(cmd)

			linters, err := loadSelection()
			if err != nil {
				return err
			}

			if !listChangedOnlyFlag && listMergeBaseWithFlag == "" {
				ui.DisplaySelection(linters)
				return nil
			}

			vcs, err := adapter.DetectVersionControl(cmd.Context(), commandRunner)
			if err != nil {
				return err
			}

			files, err := domain.ResolveChangedFiles(cmd.Context(), vcs, listMergeBaseWithFlag)
			if err != nil {
				return err
			}

			ui.DisplayPlan(linters, files)

			return nil
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&listChangedOnlyFlag, changedOnlyFlagName, false, "intersect the selection with the changed-file set")
	cmd.Flags().StringVar(&listMergeBaseWithFlag, mergeBaseWithFlagName, "", "scope changed files to the merge base with this revision (implies --changed-only)")
}
