package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"relint.dev/pkg/relint/internal/domain"
)

var initDryRunFlag bool
var initParallelFlag int

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Perform first-time setup for the selected linters",
		Long: `Run the init command of every selected linter that declares one. With
--dry-run the {{DRYRUN}} placeholder in each command is substituted so the
linter previews its setup instead of performing it.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			linters, err := loadSelection()
			if err != nil {
				return err
			}

			return domain.RunInit(cmd.Context(), commandRunner, linters, domain.InitArgs{
				DryRun:   initDryRunFlag,
				Parallel: viper.GetInt(initParallelConfigKey),
			})
		},
	}

	configureInitFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func configureInitFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&initDryRunFlag, initDryRunFlagName, "d", false, "do not actually execute initialization, just preview it")
	cmd.Flags().IntVarP(&initParallelFlag, initParallelFlagName, "p", viper.GetInt(initParallelConfigKey), "number of linters to initialize in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(initParallelFlagName), initParallelConfigKey)
}
