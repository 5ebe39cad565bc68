package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"relint.dev/pkg/relint/internal/adapter"
	m "relint.dev/pkg/relint/internal/model"
)

// InitArgs bundles the options for RunInit.
type InitArgs struct {
	// DryRun substitutes "1" for the {{DRYRUN}} placeholder so init
	// commands preview their side effects instead of performing them.
	DryRun bool

	// Parallel bounds how many linters initialize concurrently. Values
	// below one run sequentially.
	Parallel int
}

// RunInit executes the one-time setup command of every linter that
// declares one. Linters without init commands are skipped. Failures carry
// the linter name; the first failure cancels the remaining work.
func RunInit(ctx context.Context, runner adapter.CommandRunner, linters []m.Linter, args InitArgs) error {
	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for _, linter := range linters {
		if len(linter.InitCommands) == 0 {
			continue
		}

		linter := linter
		argv := renderInitCommand(linter.InitCommands, args.DryRun)

		group.Go(func() error {
			slog.Info("running init command", "linter", linter.Name, "command", argv)

			if _, err := runner.Run(groupCtx, "", argv[0], argv[1:]...); err != nil {
				return fmt.Errorf("init for linter %s failed: %w", linter.Name, err)
			}

			return nil
		})
	}

	return group.Wait()
}

// renderInitCommand substitutes every occurrence of the dry-run
// placeholder: "1" when previewing, "0" when executing for real. The
// placeholder is guaranteed present by load-time validation.
func renderInitCommand(tokens []string, dryRun bool) []string {
	value := "0"
	if dryRun {
		value = "1"
	}

	argv := make([]string, 0, len(tokens))
	for _, token := range tokens {
		argv = append(argv, strings.ReplaceAll(token, DryRunPlaceholder, value))
	}

	return argv
}
