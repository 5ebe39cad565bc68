// Package cmd provides the root command and CLI setup for relint.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"relint.dev/pkg/relint/internal/adapter"
	"relint.dev/pkg/relint/internal/domain"
	m "relint.dev/pkg/relint/internal/model"
)

// commandRunner backs every subprocess invocation (VCS queries and linter
// init commands); tests swap it for a fake.
var commandRunner adapter.CommandRunner

var linterConfigFlag string
var skipFlag string
var takeFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	commandRunner = adapter.NewLocalCommandRunner()
}

const rootLongDescription = `Relint decides which lint checks apply to which files.

Linters are declared in a TOML definition file (default .relint.toml); each
record names the linter, its include/exclude path patterns, and the command
used to invoke it. The selection can be narrowed by name with --take and
--skip, and scoped to the files changed relative to a Sapling or Git
baseline.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relint",
		Short: "Configuration-driven lint selection",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&linterConfigFlag, linterConfigFlagName, "c",
			viper.GetString(linterConfigFlagName),
			"path to the linter definition file",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(linterConfigFlagName), linterConfigFlagName)

	cmd.PersistentFlags().StringVar(&skipFlag, skipFlagName, viper.GetString(skipFlagName), "comma-separated list of linters to skip (e.g. FLAKE8,RUSTFMT)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(skipFlagName), skipFlagName)

	cmd.PersistentFlags().StringVar(&takeFlag, takeFlagName, viper.GetString(takeFlagName), "comma-separated list of linters to run (opposite of --skip)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(takeFlagName), takeFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadSelection loads the definition file and applies the take and skip
// name filters from the CLI.
func loadSelection() ([]m.Linter, error) {
	rawPath := viper.GetString(linterConfigFlagName)

	configPath, err := m.NewAbsPath(rawPath)
	if err != nil {
		return nil, fmt.Errorf("could not read linter config at %q: %w", rawPath, err)
	}

	linters, err := domain.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	skip := parseNameSet(viper.GetString(skipFlagName))
	take := parseNameSet(viper.GetString(takeFlagName))

	return domain.SelectLinters(linters, skip, take), nil
}

// parseNameSet splits a comma-separated linter name list. A nil result
// means the flag was not supplied, which disables that filter.
func parseNameSet(raw string) map[string]struct{} {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	set := make(map[string]struct{})

	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = struct{}{}
		}
	}

	return set
}
