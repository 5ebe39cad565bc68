// Package adapter contains the subprocess and version-control adapters
// backing the lint selection core.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts subprocess invocation so VCS queries and linter
// init commands can be tested without spawning real processes. Run blocks
// until the child exits and all process resources are released.
type CommandRunner interface {
	// Run executes name with args in dir (the process working directory
	// when dir is empty) and returns the captured standard output.
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// CommandFailedError reports a subprocess that could not be started or
// exited non-zero, carrying its command line and captured stderr.
type CommandFailedError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandFailedError) Error() string {
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return fmt.Sprintf("command %q failed: %v: %s", e.Command, e.Err, stderr)
	}

	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandFailedError) Unwrap() error {
	return e.Err
}

// LocalCommandRunner is the concrete CommandRunner backed by os/exec.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner ready to be wired
// into the VCS adapters and the init runner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run executes the command and captures its complete standard output.
func (r *LocalCommandRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &CommandFailedError{
			Command: renderCommand(name, args),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	return stdout.Bytes(), nil
}

func renderCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
