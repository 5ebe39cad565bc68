package cmd

import (
	"github.com/spf13/cobra"

	"relint.dev/pkg/relint/internal/adapter"
	"relint.dev/pkg/relint/internal/controller"
	"relint.dev/pkg/relint/internal/domain"
)

var filesMergeBaseWithFlag string

// filesCmd represents the files command.
var filesCmd = newFilesCmd()

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List files changed relative to the version-control baseline",
		Long: `Resolve the set of changed files the linters would consider and print
them one per line. Deleted files are never included. With --merge-base-with
the set is computed against the nearest common ancestor with the given
revision instead of the working copy.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewUI(cmd)

			vcs, err := adapter.DetectVersionControl(cmd.Context(), commandRunner)
			if err != nil {
				return err
			}

			files, err := domain.ResolveChangedFiles(cmd.Context(), vcs, filesMergeBaseWithFlag)
			if err != nil {
				return err
			}

			ui.DisplayFiles(files)

			return nil
		},
	}

	cmd.Flags().StringVar(&filesMergeBaseWithFlag, mergeBaseWithFlagName, "", "compute changed files against the merge base with this revision")

	return cmd
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
